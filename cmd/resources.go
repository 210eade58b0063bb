package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mediary/cloudctl/admin"
	"github.com/mediary/cloudctl/filter"
)

var (
	resourceType string
	deliveryType string
	listPrefix   string
	maxResults   int
	nextCursor   string
	filterExpr   string

	updateTags       []string
	updateContext    []string
	moderationStatus string

	deleteByPrefix string
	deleteByTag    string
	deleteAll      bool
	keepOriginal   bool
	invalidate     bool
	noConfirm      bool
)

// resourcesCmd groups the resource management commands
var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Manage stored resources",
}

func init() {
	rootCmd.AddCommand(resourcesCmd)

	resourcesCmd.AddCommand(resourcesListCmd)
	resourcesCmd.AddCommand(resourcesGetCmd)
	resourcesCmd.AddCommand(resourcesInspectCmd)
	resourcesCmd.AddCommand(resourcesUpdateCmd)
	resourcesCmd.AddCommand(resourcesDeleteCmd)
	resourcesCmd.AddCommand(resourcesRestoreCmd)

	resourcesCmd.PersistentFlags().StringVar(&resourceType, "resource-type", "", "resource type (default image)")
	resourcesCmd.PersistentFlags().StringVar(&deliveryType, "type", "", "delivery type (default upload)")

	resourcesListCmd.Flags().StringVar(&listPrefix, "prefix", "", "only list resources whose public ID starts with the prefix")
	resourcesListCmd.Flags().IntVar(&maxResults, "max-results", 0, "maximum number of results per page")
	resourcesListCmd.Flags().StringVar(&nextCursor, "next-cursor", "", "pagination cursor from a previous listing")
	resourcesListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")

	resourcesUpdateCmd.Flags().StringSliceVar(&updateTags, "tags", nil, "replace the resource tags")
	resourcesUpdateCmd.Flags().StringSliceVar(&updateContext, "context", nil, "contextual metadata as key=value pairs")
	resourcesUpdateCmd.Flags().StringVar(&moderationStatus, "moderation-status", "", "set the moderation status")

	resourcesDeleteCmd.Flags().StringVar(&deleteByPrefix, "prefix", "", "delete resources whose public ID starts with the prefix")
	resourcesDeleteCmd.Flags().StringVar(&deleteByTag, "tag", "", "delete resources carrying the tag")
	resourcesDeleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete all resources of the selected type")
	resourcesDeleteCmd.Flags().BoolVar(&keepOriginal, "keep-original", false, "keep original assets, delete derived only")
	resourcesDeleteCmd.Flags().BoolVar(&invalidate, "invalidate", false, "also invalidate cached CDN copies")
	resourcesDeleteCmd.Flags().BoolVar(&noConfirm, "no-confirm", false, "skip confirmation prompt")
}

// resourcesListCmd represents the resources list command
var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources, optionally filtered client-side",
	RunE:  runResourcesList,
}

func runResourcesList(cmd *cobra.Command, args []string) error {
	opts := &admin.ListResourcesOptions{
		ResourceType: resourceType,
		DeliveryType: deliveryType,
		Prefix:       listPrefix,
		MaxResults:   maxResults,
		NextCursor:   nextCursor,
		// Tag and context data is needed for filtering and details
		Tags:    true,
		Context: true,
	}

	resp, err := client.ListResources(cmd.Context(), opts)
	if err != nil {
		return err
	}

	resources, err := resp.Resources()
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		resources = f.Resources(resources)
	}

	if len(resources) == 0 {
		fmt.Println("No resources found matching the criteria.")
		return nil
	}

	fmt.Printf("\nFound %d resources:\n", len(resources))
	fmt.Println(strings.Repeat("-", 80))

	for _, resource := range resources {
		fmt.Printf("• %s (%s, %dx%d, %d bytes)\n",
			resource.PublicID, resource.Format, resource.Width, resource.Height, resource.Bytes)
		if cfg.Safety.ShowDetails {
			if len(resource.Tags) > 0 {
				fmt.Printf("  Tags: %s\n", strings.Join(resource.Tags, ", "))
			}
			if !resource.CreatedAt.IsZero() {
				fmt.Printf("  Created: %s\n", resource.CreatedAt.Format("2006-01-02"))
			}
		}
	}

	if cursor := resp.NextCursor(); cursor != "" {
		fmt.Printf("\nMore results available, continue with --next-cursor %s\n", cursor)
	}

	return nil
}

// resourcesGetCmd represents the resources get command
var resourcesGetCmd = &cobra.Command{
	Use:   "get <public-id>",
	Short: "Show the details of a resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesGet,
}

func runResourcesGet(cmd *cobra.Command, args []string) error {
	opts := &admin.ResourceDetailsOptions{
		ResourceType: resourceType,
		DeliveryType: deliveryType,
	}

	resp, err := client.GetResource(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	return printJSON(resp.Body)
}

// resourcesInspectCmd represents the resources inspect command
var resourcesInspectCmd = &cobra.Command{
	Use:   "inspect <public-id>...",
	Short: "Fetch details for several resources concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResourcesInspect,
}

func runResourcesInspect(cmd *cobra.Command, args []string) error {
	opts := &admin.ResourceDetailsOptions{
		ResourceType: resourceType,
		DeliveryType: deliveryType,
	}

	result, err := client.BatchResourceDetails(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	for _, publicID := range args {
		resp, ok := result.Details[publicID]
		if !ok {
			continue
		}
		fmt.Printf("── %s ──\n", publicID)
		if err := printJSON(resp.Body); err != nil {
			return err
		}
	}

	for _, failure := range result.Failed {
		fmt.Printf("✗ %s: %v\n", failure.PublicID, failure.Err)
	}

	return nil
}

// resourcesUpdateCmd represents the resources update command
var resourcesUpdateCmd = &cobra.Command{
	Use:   "update <public-id>",
	Short: "Update the metadata of a resource",
	Args:  cobra.ExactArgs(1),
	RunE:  runResourcesUpdate,
}

func runResourcesUpdate(cmd *cobra.Command, args []string) error {
	opts := &admin.UpdateResourceOptions{
		ResourceType:     resourceType,
		DeliveryType:     deliveryType,
		ModerationStatus: moderationStatus,
		Tags:             updateTags,
	}

	if len(updateContext) > 0 {
		context := make(map[string]string, len(updateContext))
		for _, pair := range updateContext {
			key, value, found := strings.Cut(pair, "=")
			if !found {
				return fmt.Errorf("invalid context pair %q, want key=value", pair)
			}
			context[key] = value
		}
		opts.Context = context
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would update %s\n", args[0])
		return nil
	}

	resp, err := client.UpdateResource(cmd.Context(), args[0], opts)
	if err != nil {
		return err
	}

	logger.Info().Str("public_id", args[0]).Msg("Resource updated")
	return printJSON(resp.Body)
}

// resourcesDeleteCmd represents the resources delete command
var resourcesDeleteCmd = &cobra.Command{
	Use:   "delete [public-id]...",
	Short: "Delete resources by ID, prefix, tag, or all",
	RunE:  runResourcesDelete,
}

func runResourcesDelete(cmd *cobra.Command, args []string) error {
	selectors := 0
	if len(args) > 0 {
		selectors++
	}
	if deleteByPrefix != "" {
		selectors++
	}
	if deleteByTag != "" {
		selectors++
	}
	if deleteAll {
		selectors++
	}
	if selectors != 1 {
		return fmt.Errorf("specify exactly one of: public IDs, --prefix, --tag, --all")
	}

	var target string
	switch {
	case len(args) > 0:
		target = fmt.Sprintf("%d resources", len(args))
	case deleteByPrefix != "":
		target = fmt.Sprintf("resources with prefix %q", deleteByPrefix)
	case deleteByTag != "":
		target = fmt.Sprintf("resources tagged %q", deleteByTag)
	case deleteAll:
		target = "ALL resources of the selected type"
	}

	if cfg.Safety.DryRun {
		fmt.Printf("[DRY RUN] Would delete %s\n", target)
		return nil
	}

	if cfg.Safety.ConfirmDelete && !noConfirm {
		if !confirm(fmt.Sprintf("Delete %s?", target)) {
			logger.Info().Msg("Deletion cancelled")
			return nil
		}
	}

	opts := &admin.DeleteResourcesOptions{
		ResourceType: resourceType,
		DeliveryType: deliveryType,
		KeepOriginal: keepOriginal,
		Invalidate:   invalidate,
	}

	var (
		resp *admin.Response
		err  error
	)
	switch {
	case len(args) > 0:
		resp, err = client.DeleteResources(cmd.Context(), args, opts)
	case deleteByPrefix != "":
		resp, err = client.DeleteResourcesByPrefix(cmd.Context(), deleteByPrefix, opts)
	case deleteByTag != "":
		resp, err = client.DeleteResourcesByTag(cmd.Context(), deleteByTag, opts)
	default:
		resp, err = client.DeleteAllResources(cmd.Context(), opts)
	}
	if err != nil {
		return err
	}

	logger.Info().Str("target", target).Msg("Resources deleted")
	return printJSON(resp.Body)
}

// resourcesRestoreCmd represents the resources restore command
var resourcesRestoreCmd = &cobra.Command{
	Use:   "restore <public-id>...",
	Short: "Restore deleted resources from backup",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResourcesRestore,
}

func runResourcesRestore(cmd *cobra.Command, args []string) error {
	opts := &admin.RestoreOptions{
		ResourceType: resourceType,
		DeliveryType: deliveryType,
	}

	resp, err := client.RestoreResources(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	logger.Info().Int("count", len(args)).Msg("Resources restored")
	return printJSON(resp.Body)
}
