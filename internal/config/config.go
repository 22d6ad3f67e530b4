package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	DataFile       string `mapstructure:"data_file"`
	NewestFirst    bool   `mapstructure:"newest_first"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	SummaryHeader  string `mapstructure:"summary_header"`
	LogLevel       string `mapstructure:"log_level"`
	LogPretty      bool   `mapstructure:"log_pretty"`
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"data-file": "data_file",
	"log-level": "log_level",
}

// LoadConfig loads configuration from an optional TOML file. An empty
// configPath means defaults only. Flags that were set on the command line
// override file values.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	// Set defaults
	v.SetDefault("data_file", "finance_data.txt")
	v.SetDefault("newest_first", true)
	v.SetDefault("currency_symbol", "$")
	v.SetDefault("summary_header", "Monthly Summary:")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_pretty", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.DataFile == "" {
		return nil, fmt.Errorf("data_file must not be empty")
	}

	return &config, nil
}
