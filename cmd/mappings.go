package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediary/cloudctl/admin"
)

var mappingTemplate string

// mappingsCmd groups the upload mapping commands
var mappingsCmd = &cobra.Command{
	Use:     "mappings",
	Aliases: []string{"mapping"},
	Short:   "Manage upload mappings",
}

func init() {
	rootCmd.AddCommand(mappingsCmd)

	mappingsCmd.AddCommand(mappingsListCmd)
	mappingsCmd.AddCommand(mappingsGetCmd)
	mappingsCmd.AddCommand(mappingsCreateCmd)
	mappingsCmd.AddCommand(mappingsUpdateCmd)
	mappingsCmd.AddCommand(mappingsDeleteCmd)

	mappingsListCmd.Flags().IntVar(&maxResults, "max-results", 0, "maximum number of results per page")
	mappingsListCmd.Flags().StringVar(&nextCursor, "next-cursor", "", "pagination cursor from a previous listing")

	mappingsCreateCmd.Flags().StringVar(&mappingTemplate, "template", "", "remote URL template the folder maps to")
	mappingsCreateCmd.MarkFlagRequired("template")
	mappingsUpdateCmd.Flags().StringVar(&mappingTemplate, "template", "", "remote URL template the folder maps to")
	mappingsUpdateCmd.MarkFlagRequired("template")

	mappingsDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

// mappingsListCmd represents the mappings list command
var mappingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the upload mappings defined in the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ListUploadMappings(cmd.Context(), &admin.ListOptions{
			MaxResults: maxResults,
			NextCursor: nextCursor,
		})
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}

// mappingsGetCmd represents the mappings get command
var mappingsGetCmd = &cobra.Command{
	Use:   "get <folder>",
	Short: "Show the upload mapping of a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetUploadMapping(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}

// mappingsCreateCmd represents the mappings create command
var mappingsCreateCmd = &cobra.Command{
	Use:   "create <folder>",
	Short: "Map a folder to a remote URL template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would map folder %q to %q\n", args[0], mappingTemplate)
			return nil
		}

		resp, err := client.CreateUploadMapping(cmd.Context(), args[0], mappingTemplate, nil)
		if err != nil {
			return err
		}

		logger.Info().Str("folder", args[0]).Msg("Upload mapping created")
		return printJSON(resp.Body)
	},
}

// mappingsUpdateCmd represents the mappings update command
var mappingsUpdateCmd = &cobra.Command{
	Use:   "update <folder>",
	Short: "Change the remote URL template of a folder mapping",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would remap folder %q to %q\n", args[0], mappingTemplate)
			return nil
		}

		resp, err := client.UpdateUploadMapping(cmd.Context(), args[0], mappingTemplate, nil)
		if err != nil {
			return err
		}

		logger.Info().Str("folder", args[0]).Msg("Upload mapping updated")
		return printJSON(resp.Body)
	},
}

// mappingsDeleteCmd represents the mappings delete command
var mappingsDeleteCmd = &cobra.Command{
	Use:   "delete <folder>",
	Short: "Delete the upload mapping of a folder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would delete upload mapping for %q\n", args[0])
			return nil
		}

		if cfg.Safety.ConfirmDelete && !noConfirm {
			if !confirm(fmt.Sprintf("Delete upload mapping for %q?", args[0])) {
				logger.Info().Msg("Deletion cancelled")
				return nil
			}
		}

		resp, err := client.DeleteUploadMapping(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}

		logger.Info().Str("folder", args[0]).Msg("Upload mapping deleted")
		return printJSON(resp.Body)
	},
}
