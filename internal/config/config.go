// Package config loads application configuration from environment variables,
// .env files, and an optional ~/.trophycase.yaml, in that order of
// precedence below command-line flags.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	Output  string

	// Config file actually used, if any
	ConfigFile string

	// AccountRoot is the active session's storage root.
	AccountRoot string

	// Remote endpoints
	SchemaURL   string
	FallbackURL string
	SearchURL   string

	// Emulator store scanning
	AppBase        string
	StoreRootsFile string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// Load reads configuration from all sources in order of precedence:
// command-line flags (handled by cobra), environment variables, .env files,
// config file, defaults.
func Load() (*Config, error) {
	loadEnvFiles()

	viper.SetEnvPrefix("TROPHYCASE")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".trophycase")
		}
	}

	// Missing config file is fine; env and defaults still apply.
	_ = viper.ReadInConfig()

	cfg := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		Output:  viper.GetString("output"),

		ConfigFile: viper.ConfigFileUsed(),

		AccountRoot: viper.GetString("account_root"),

		SchemaURL:   viper.GetString("schema_url"),
		FallbackURL: viper.GetString("fallback_url"),
		SearchURL:   viper.GetString("search_url"),

		AppBase:        viper.GetString("app_base"),
		StoreRootsFile: viper.GetString("store_roots_file"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	if cfg.AccountRoot == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.AccountRoot = home
		}
	}

	return cfg, nil
}

// loadEnvFiles loads environment variables from .env files; .env.local
// overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment value or a fallback.
func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
