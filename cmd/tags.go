package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mediary/cloudctl/admin"
)

var tagPrefix string

// tagsCmd groups the tag commands
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Browse resource tags",
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.AddCommand(tagsListCmd)

	tagsListCmd.Flags().StringVar(&resourceType, "resource-type", "", "resource type (default image)")
	tagsListCmd.Flags().StringVar(&tagPrefix, "prefix", "", "only list tags starting with the prefix")
	tagsListCmd.Flags().IntVar(&maxResults, "max-results", 0, "maximum number of results per page")
	tagsListCmd.Flags().StringVar(&nextCursor, "next-cursor", "", "pagination cursor from a previous listing")
}

// tagsListCmd represents the tags list command
var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tags used in the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ListTags(cmd.Context(), &admin.ListTagsOptions{
			ResourceType: resourceType,
			Prefix:       tagPrefix,
			MaxResults:   maxResults,
			NextCursor:   nextCursor,
		})
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}
