package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mediary/cloudctl/admin"
	"github.com/mediary/cloudctl/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *admin.Client

	// Command flags
	dryRun bool
)

var (
	appVersion   = "dev"
	appBuildTime = "unknown"
)

// SetVersion records the build metadata reported by the version command.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cloudctl",
	Short: "A tool to manage media assets through the Cloudinary admin API",
	Long: `cloudctl is a CLI tool for administering a Cloudinary account:
listing and filtering stored resources, managing tags, transformations,
upload presets, folders, upload mappings and streaming profiles.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(usageCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	var opts []admin.Option
	if cfg.Cloudinary.TimeoutSecs > 0 {
		opts = append(opts, admin.WithTimeout(time.Duration(cfg.Cloudinary.TimeoutSecs)*time.Second))
	}

	client = admin.New(admin.Config{
		CloudName:    cfg.Cloudinary.CloudName,
		APIKey:       cfg.Cloudinary.APIKey,
		APISecret:    cfg.Cloudinary.APISecret,
		UploadPrefix: cfg.Cloudinary.UploadPrefix,
	}, logger, opts...)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when writing to a terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test connection and credentials",
	Long:  `Ping the admin API to verify the configured cloud name and credentials.`,
	RunE:  runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	resp, err := client.Ping(cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	fmt.Printf("✓ Connection to cloud %q successful!\n", cfg.Cloudinary.CloudName)
	printRateLimit(resp)
	return nil
}

// usageCmd represents the usage command
var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show account usage statistics",
	RunE:  runUsage,
}

func runUsage(cmd *cobra.Command, args []string) error {
	resp, err := client.Usage(cmd.Context(), nil)
	if err != nil {
		return fmt.Errorf("failed to get usage: %w", err)
	}

	return printJSON(resp.Body)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	// Version output needs no config or client
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cloudctl %s (built %s)\n", appVersion, appBuildTime)
	},
}

// printJSON pretty-prints a decoded response body
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printRateLimit(resp *admin.Response) {
	fmt.Printf("Rate limit: %d/%d remaining (resets %s)\n",
		resp.RateLimit.Remaining,
		resp.RateLimit.Allowed,
		resp.RateLimit.ResetAt.Format(time.RFC1123))
}

// confirm prompts the user before a destructive operation
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var response string
	fmt.Scanln(&response)
	return strings.ToLower(strings.TrimSpace(response)) == "y"
}
