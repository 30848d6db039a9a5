package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the grapher
type Config struct {
	Output   OutputConfig
	Standard string
	Locale   string
	Env      string
}

// OutputConfig holds figure output configuration
type OutputConfig struct {
	Dir    string
	Format string
	Style  string
}

// Load loads configuration from environment variables and .env files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("OUTPUT_DIR", "./figures")
	viper.SetDefault("FIG_FORMAT", ".svg")
	viper.SetDefault("FILENAME_STYLE", "improved")
	viper.SetDefault("STANDARD", "ISO 23870-10")
	viper.SetDefault("LOCALE", "de")
	viper.SetDefault("ENVIRONMENT", "dev")

	// Read from .env files based on environment
	env := viper.GetString("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	viper.SetConfigName(".env." + env)
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file (ignore error if file doesn't exist)
	_ = viper.ReadInConfig()

	// Environment variables override .env file values
	viper.AutomaticEnv()

	viper.BindEnv("OUTPUT_DIR")
	viper.BindEnv("FIG_FORMAT")
	viper.BindEnv("FILENAME_STYLE")
	viper.BindEnv("STANDARD")
	viper.BindEnv("LOCALE")
	viper.BindEnv("ENVIRONMENT")

	var config Config
	config.Output.Dir = viper.GetString("OUTPUT_DIR")
	config.Output.Format = viper.GetString("FIG_FORMAT")
	config.Output.Style = strings.ToLower(viper.GetString("FILENAME_STYLE"))
	config.Standard = viper.GetString("STANDARD")
	config.Locale = viper.GetString("LOCALE")
	config.Env = viper.GetString("ENVIRONMENT")

	log.Info().
		Str("standard", config.Standard).
		Str("output_dir", config.Output.Dir).
		Str("format", config.Output.Format).
		Msg("Configuration loaded")

	return &config, nil
}
