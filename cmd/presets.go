package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mediary/cloudctl/admin"
)

var (
	presetUnsigned       bool
	presetDisallowPublic bool
	presetFolder         string
	presetTags           []string
	presetTransformation string
)

// presetsCmd groups the upload preset management commands
var presetsCmd = &cobra.Command{
	Use:     "presets",
	Aliases: []string{"preset"},
	Short:   "Manage upload presets",
}

func init() {
	rootCmd.AddCommand(presetsCmd)

	presetsCmd.AddCommand(presetsListCmd)
	presetsCmd.AddCommand(presetsGetCmd)
	presetsCmd.AddCommand(presetsCreateCmd)
	presetsCmd.AddCommand(presetsUpdateCmd)
	presetsCmd.AddCommand(presetsDeleteCmd)

	presetsListCmd.Flags().IntVar(&maxResults, "max-results", 0, "maximum number of results per page")
	presetsListCmd.Flags().StringVar(&nextCursor, "next-cursor", "", "pagination cursor from a previous listing")

	for _, c := range []*cobra.Command{presetsCreateCmd, presetsUpdateCmd} {
		c.Flags().BoolVar(&presetUnsigned, "unsigned", false, "allow unsigned uploads with this preset")
		c.Flags().BoolVar(&presetDisallowPublic, "disallow-public-id", false, "reject caller-supplied public IDs")
		c.Flags().StringVar(&presetFolder, "folder", "", "upload target folder")
		c.Flags().StringSliceVar(&presetTags, "tags", nil, "tags assigned to uploaded resources")
		c.Flags().StringVar(&presetTransformation, "transformation", "", "incoming transformation applied on upload")
	}

	presetsDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

func presetOptions() *admin.UploadPresetOptions {
	opts := &admin.UploadPresetOptions{
		Unsigned:         presetUnsigned,
		DisallowPublicID: presetDisallowPublic,
		Folder:           presetFolder,
		Tags:             presetTags,
	}
	if presetTransformation != "" {
		t := admin.RawTransformation(presetTransformation)
		opts.Transformation = &t
	}
	return opts
}

// presetsListCmd represents the presets list command
var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the upload presets defined in the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ListUploadPresets(cmd.Context(), &admin.ListOptions{
			MaxResults: maxResults,
			NextCursor: nextCursor,
		})
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}

// presetsGetCmd represents the presets get command
var presetsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show an upload preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetUploadPreset(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		return printJSON(resp.Body)
	},
}

// presetsCreateCmd represents the presets create command
var presetsCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an upload preset",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would create upload preset %q\n", name)
			return nil
		}

		resp, err := client.CreateUploadPreset(cmd.Context(), name, presetOptions())
		if err != nil {
			return err
		}

		logger.Info().Str("name", name).Msg("Upload preset created")
		return printJSON(resp.Body)
	},
}

// presetsUpdateCmd represents the presets update command
var presetsUpdateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Update an upload preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would update upload preset %q\n", args[0])
			return nil
		}

		resp, err := client.UpdateUploadPreset(cmd.Context(), args[0], presetOptions())
		if err != nil {
			return err
		}

		logger.Info().Str("name", args[0]).Msg("Upload preset updated")
		return printJSON(resp.Body)
	},
}

// presetsDeleteCmd represents the presets delete command
var presetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an upload preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Safety.DryRun {
			fmt.Printf("[DRY RUN] Would delete upload preset %q\n", args[0])
			return nil
		}

		if cfg.Safety.ConfirmDelete && !noConfirm {
			if !confirm(fmt.Sprintf("Delete upload preset %q?", args[0])) {
				logger.Info().Msg("Deletion cancelled")
				return nil
			}
		}

		resp, err := client.DeleteUploadPreset(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}

		logger.Info().Str("name", args[0]).Msg("Upload preset deleted")
		return printJSON(resp.Body)
	},
}
