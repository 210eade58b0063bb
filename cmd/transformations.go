package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediary/cloudctl/admin"
)

var (
	transformationDef string
	allowedForStrict  bool
	unsafeUpdate      string
)

// transformationsCmd groups the transformation management commands
var transformationsCmd = &cobra.Command{
	Use:     "transformations",
	Aliases: []string{"transformation"},
	Short:   "Manage transformations",
}

func init() {
	rootCmd.AddCommand(transformationsCmd)

	transformationsCmd.AddCommand(transformationsListCmd)
	transformationsCmd.AddCommand(transformationsGetCmd)
	transformationsCmd.AddCommand(transformationsCreateCmd)
	transformationsCmd.AddCommand(transformationsUpdateCmd)
	transformationsCmd.AddCommand(transformationsDeleteCmd)

	transformationsListCmd.Flags().IntVar(&maxResults, "max-results", 0, "maximum number of results per page")
	transformationsListCmd.Flags().StringVar(&nextCursor, "next-cursor", "", "pagination cursor from a previous listing")

	transformationsCreateCmd.Flags().StringVar(&transformationDef, "transformation", "", "transformation definition (e.g. c_fill,h_100,w_150)")
	transformationsCreateCmd.MarkFlagRequired("transformation")

	transformationsUpdateCmd.Flags().BoolVar(&allowedForStrict, "allowed-for-strict", false, "allow the transformation in strict mode")
	transformationsUpdateCmd.Flags().StringVar(&unsafeUpdate, "unsafe-update", "", "replace the transformation definition in place")

	transformationsDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

// transformationsListCmd represents the transformations list command
var transformationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the transformations defined in the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ListTransformations(cmd.Context(), &admin.ListOptions{
			MaxResults: maxResults,
			NextCursor: nextCursor,
		})
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}

// transformationsGetCmd represents the transformations get command
var transformationsGetCmd = &cobra.Command{
	Use:   "get <name-or-definition>",
	Short: "Show a transformation and its derived resources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetTransformation(cmd.Context(), admin.RawTransformation(args[0]), nil)
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}

// transformationsCreateCmd represents the transformations create command
var transformationsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a named transformation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would create transformation %s as %s\n", args[0], transformationDef)
			return nil
		}

		resp, err := client.CreateTransformation(cmd.Context(), args[0], admin.RawTransformation(transformationDef), nil)
		if err != nil {
			return err
		}

		logger.Info().Str("name", args[0]).Msg("Transformation created")
		return printJSON(resp.Body)
	},
}

// transformationsUpdateCmd represents the transformations update command
var transformationsUpdateCmd = &cobra.Command{
	Use:   "update <name-or-definition>",
	Short: "Update a transformation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := &admin.UpdateTransformationOptions{}
		if cmd.Flags().Changed("allowed-for-strict") {
			opts.AllowedForStrict = &allowedForStrict
		}
		if unsafeUpdate != "" {
			t := admin.RawTransformation(unsafeUpdate)
			opts.UnsafeUpdate = &t
		}

		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would update transformation %s\n", args[0])
			return nil
		}

		resp, err := client.UpdateTransformation(cmd.Context(), admin.RawTransformation(args[0]), opts)
		if err != nil {
			return err
		}

		logger.Info().Str("transformation", args[0]).Msg("Transformation updated")
		return printJSON(resp.Body)
	},
}

// transformationsDeleteCmd represents the transformations delete command
var transformationsDeleteCmd = &cobra.Command{
	Use:   "delete <name-or-definition>",
	Short: "Delete a transformation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would delete transformation %s\n", args[0])
			return nil
		}

		if cfg.Safety.ConfirmDelete && !noConfirm {
			if !confirm(fmt.Sprintf("Delete transformation %q?", args[0])) {
				logger.Info().Msg("Deletion cancelled")
				return nil
			}
		}

		resp, err := client.DeleteTransformation(cmd.Context(), admin.RawTransformation(args[0]), nil)
		if err != nil {
			return err
		}

		logger.Info().Str("transformation", args[0]).Msg("Transformation deleted")
		return printJSON(resp.Body)
	},
}
