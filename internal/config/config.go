package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Catalog CatalogConfig
	Profile ProfileConfig
	UI      UIConfig
}

// CatalogConfig holds package catalog settings.
type CatalogConfig struct {
	Path           string
	MigrationsPath string
}

// ProfileConfig holds install profile output settings.
type ProfileConfig struct {
	OutputPath string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme        string
	ShowDisabled bool
}

// Load reads configuration from file and env. Env var overrides use prefix SLATE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("catalog.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "slate", "catalog.db"))
	v.SetDefault("catalog.migrations_path", "internal/catalog/migrations")
	v.SetDefault("profile.output_path", filepath.Join(os.Getenv("HOME"), ".local", "share", "slate", "install-profile.toml"))
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.show_disabled", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SLATE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "slate"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SLATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Catalog: CatalogConfig{
			Path:           v.GetString("catalog.path"),
			MigrationsPath: v.GetString("catalog.migrations_path"),
		},
		Profile: ProfileConfig{
			OutputPath: v.GetString("profile.output_path"),
		},
		UI: UIConfig{
			Theme:        v.GetString("ui.theme"),
			ShowDisabled: v.GetBool("ui.show_disabled"),
		},
	}
	return cfg, nil
}
