package config

// Config represents the complete configuration structure
type Config struct {
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
	Safety     SafetyConfig     `mapstructure:"safety"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// CloudinaryConfig holds the account credentials and endpoint
type CloudinaryConfig struct {
	CloudName    string `mapstructure:"cloud_name"`
	APIKey       string `mapstructure:"api_key"`
	APISecret    string `mapstructure:"api_secret"`
	UploadPrefix string `mapstructure:"upload_prefix"`
	TimeoutSecs  int    `mapstructure:"timeout"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun        bool `mapstructure:"dry_run"`
	ConfirmDelete bool `mapstructure:"confirm_delete"`
	ShowDetails   bool `mapstructure:"show_details"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
