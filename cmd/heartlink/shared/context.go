// Package shared holds state set by root flags and read by subcommands.
package shared

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ivankudzin/heartlink/internal/config"
)

const (
	defaultConfigPath = "configs/config.yaml"
	defaultEnvFile    = ".env"
)

type Context struct {
	// ConfigPath overrides $APP_CONFIG.
	ConfigPath string
	// EnvFile is loaded before env overrides are applied. Variables already
	// set in the environment win.
	EnvFile string
}

func (c *Context) LoadConfig() (config.Config, error) {
	envFile := c.EnvFile
	if envFile == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return config.Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	path := c.ConfigPath
	if path == "" {
		path = os.Getenv("APP_CONFIG")
	}
	if path == "" {
		path = defaultConfigPath
	}
	return config.Load(path)
}
