package cmd

import (
	"github.com/spf13/cobra"
)

// foldersCmd groups the folder commands
var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Browse the account folder tree",
}

func init() {
	rootCmd.AddCommand(foldersCmd)
	foldersCmd.AddCommand(foldersListCmd)
}

// foldersListCmd represents the folders list command
var foldersListCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List root folders, or the subfolders of a path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			resp, err := client.RootFolders(cmd.Context(), nil)
			if err != nil {
				return err
			}
			return printJSON(resp.Body)
		}

		resp, err := client.Subfolders(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}
