package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		Database
	}

	Database struct {
		Path string
	}
)

// NewConfig reads configuration from the environment, falling back to the
// defaults in constants.go.
func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
	}
}
