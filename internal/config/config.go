package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g.
// VIOLENT_CLEANUP_CLEANUP_DIRECTORY.
const EnvPrefix = "VIOLENT_CLEANUP"

// LogLevelEnv overrides logging.level on top of the default
const LogLevelEnv = "LOG_LEVEL"

// DefaultFilterExtensions are used when no extensions are given
var DefaultFilterExtensions = []string{"mp4", "jpg"}

// Config represents the entire application configuration
type Config struct {
	Cleanup CleanupConfig `mapstructure:"cleanup"`
	Logging LoggingConfig `mapstructure:"logging"`
	Journal JournalConfig `mapstructure:"journal"`
}

// CleanupConfig contains the cleanup run settings
type CleanupConfig struct {
	Directory           string   `mapstructure:"directory"`
	FilterExtensions    []string `mapstructure:"filter_extensions"`
	TargetUsePercentage int      `mapstructure:"target_use_percentage"`
	ActuallyRm          bool     `mapstructure:"actually_rm"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// JournalConfig contains run journal settings. An empty path disables it.
type JournalConfig struct {
	Path string `mapstructure:"path"`
}

// Enabled returns true if a journal path is configured
func (c *JournalConfig) Enabled() bool {
	return c.Path != ""
}

// FlagBindings maps config keys to command line flag names
var FlagBindings = map[string]string{
	"cleanup.directory":             "directory",
	"cleanup.filter_extensions":     "filter-extensions",
	"cleanup.target_use_percentage": "target-use-percentage",
	"cleanup.actually_rm":           "actually-rm",
	"logging.format":                "log-format",
	"journal.path":                  "journal",
}

// Load builds the configuration from, in order of precedence, the given
// flags, the environment, the optional YAML file at configPath, and defaults.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v, err := newViper(configPath, flags)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !v.IsSet("cleanup.target_use_percentage") {
		return nil, fmt.Errorf("config validation failed: cleanup.target_use_percentage is required")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadJournal reads the configuration without requiring cleanup settings,
// for commands that only need logging and the journal.
func LoadJournal(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v, err := newViper(configPath, flags)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Logging.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

func newViper(configPath string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	// target_use_percentage has no default: it is required
	v.SetDefault("cleanup.directory", "")
	v.SetDefault("cleanup.filter_extensions", DefaultFilterExtensions)
	v.SetDefault("cleanup.actually_rm", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("journal.path", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Unmarshal only sees explicitly bound env keys
	for key := range FlagBindings {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	if err := v.BindEnv("logging.level", LogLevelEnv, EnvPrefix+"_LOGGING_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", LogLevelEnv, err)
	}

	if flags != nil {
		for key, name := range FlagBindings {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return v, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Cleanup.Directory == "" {
		return fmt.Errorf("cleanup.directory is required")
	}
	// The parser accepts 0-255; only 0-100 is meaningful but larger values
	// are allowed and simply mean "always above target".
	if c.Cleanup.TargetUsePercentage < 0 || c.Cleanup.TargetUsePercentage > 255 {
		return fmt.Errorf("cleanup.target_use_percentage must be between 0 and 255")
	}

	return c.Logging.Validate()
}

// Validate validates the logging configuration
func (c *LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Level)
	}

	switch c.Format {
	case "json", "text":
		// Valid formats
	default:
		return fmt.Errorf("invalid logging.format: %s", c.Format)
	}

	return nil
}
