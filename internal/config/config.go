package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for the autocomplete command
type Config struct {
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	Complete   CompleteConfig   `mapstructure:"complete"`
	Prompt     PromptConfig     `mapstructure:"prompt"`
	Log        LogConfig        `mapstructure:"log"`
}

// DictionaryConfig selects where the entries are loaded from. Exactly one of
// Path and Keyset must be set.
type DictionaryConfig struct {
	Path   string `mapstructure:"path"`
	Keyset string `mapstructure:"keyset"`
}

type CompleteConfig struct {
	// Limit caps the number of completions printed, 0 means no limit
	Limit int `mapstructure:"limit"`
}

type PromptConfig struct {
	Indent int `mapstructure:"indent"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const envPrefix = "AUTOCOMPLETE"

// flagBindings maps config keys to command-line flag names
var flagBindings = map[string]string{
	"dictionary.path":   "dict",
	"dictionary.keyset": "keyset",
	"complete.limit":    "limit",
	"prompt.indent":     "indent",
	"log.level":         "log-level",
}

// LoadConfig loads configuration from file, environment variables and the
// flags that were set on the command line. configPath and flags may be empty.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagBindings {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.keyset", "")
	v.SetDefault("complete.limit", 20)
	v.SetDefault("prompt.indent", 0)
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" && c.Dictionary.Keyset == "" {
		return fmt.Errorf("dictionary path or keyset is required")
	}
	if c.Dictionary.Path != "" && c.Dictionary.Keyset != "" {
		return fmt.Errorf("dictionary path and keyset are mutually exclusive")
	}
	if c.Complete.Limit < 0 {
		return fmt.Errorf("invalid completion limit: %d", c.Complete.Limit)
	}
	if c.Prompt.Indent < 0 {
		return fmt.Errorf("invalid prompt indent: %d", c.Prompt.Indent)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel returns the zerolog level named by the configuration
func (c *LogConfig) ParseLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return level, nil
}
