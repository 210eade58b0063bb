package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediary/cloudctl/admin"
)

var (
	profileDisplayName     string
	profileRepresentations []string
)

// profilesCmd groups the streaming profile commands
var profilesCmd = &cobra.Command{
	Use:     "profiles",
	Aliases: []string{"profile"},
	Short:   "Manage streaming profiles",
}

func init() {
	rootCmd.AddCommand(profilesCmd)

	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesGetCmd)
	profilesCmd.AddCommand(profilesCreateCmd)
	profilesCmd.AddCommand(profilesUpdateCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)

	for _, c := range []*cobra.Command{profilesCreateCmd, profilesUpdateCmd} {
		c.Flags().StringVar(&profileDisplayName, "display-name", "", "human-readable profile name")
		c.Flags().StringArrayVar(&profileRepresentations, "representation", nil,
			"representation transformation (repeatable, e.g. c_limit,h_360,w_640,br_800k)")
	}

	profilesDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func profileOptions() *admin.StreamingProfileOptions {
	opts := &admin.StreamingProfileOptions{
		DisplayName: profileDisplayName,
	}
	for _, raw := range profileRepresentations {
		opts.Representations = append(opts.Representations, admin.RawTransformation(raw))
	}
	return opts
}

// profilesListCmd represents the profiles list command
var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the streaming profiles defined in the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ListStreamingProfiles(cmd.Context(), nil)
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}

// profilesGetCmd represents the profiles get command
var profilesGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a streaming profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetStreamingProfile(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}

// profilesCreateCmd represents the profiles create command
var profilesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a streaming profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would create streaming profile %q\n", args[0])
			return nil
		}

		resp, err := client.CreateStreamingProfile(cmd.Context(), args[0], profileOptions())
		if err != nil {
			return err
		}

		logger.Info().Str("name", args[0]).Msg("Streaming profile created")
		return printJSON(resp.Body)
	},
}

// profilesUpdateCmd represents the profiles update command
var profilesUpdateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update a streaming profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would update streaming profile %q\n", args[0])
			return nil
		}

		resp, err := client.UpdateStreamingProfile(cmd.Context(), args[0], profileOptions())
		if err != nil {
			return err
		}

		logger.Info().Str("name", args[0]).Msg("Streaming profile updated")
		return printJSON(resp.Body)
	},
}

// profilesDeleteCmd represents the profiles delete command
var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a streaming profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would delete streaming profile %q\n", args[0])
			return nil
		}

		if cfg.Safety.ConfirmDelete && !noConfirm {
			if !confirm(fmt.Sprintf("Delete streaming profile %q?", args[0])) {
				logger.Info().Msg("Deletion cancelled")
				return nil
			}
		}

		resp, err := client.DeleteStreamingProfile(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}

		logger.Info().Str("name", args[0]).Msg("Streaming profile deleted")
		return printJSON(resp.Body)
	},
}
