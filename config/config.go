// Package config resolves client configuration from the environment and
// from shared TOML profile files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/Tim020/botocore/botoerr"
)

// Environment variables consulted by Load and ResolveRegion.
const (
	RegionEnvVar  = "BOTO_DEFAULT_REGION"
	ProfileEnvVar = "BOTO_PROFILE"
	ConfigEnvVar  = "BOTO_CONFIG_FILE"
)

// Config holds client configuration values.
type Config struct {
	Env        string `validate:"required,oneof=dev prod"`
	Region     string
	Profile    string `validate:"required"`
	ConfigFile string `validate:"required"`
	Log        struct {
		ConsoleLevel string `validate:"required,oneof=debug info warn error"`
		FileLevel    string `validate:"required,oneof=debug info warn error"`
		File         string
	}
}

var validate = validator.New()

// Load reads configuration from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	var c Config
	c.Env = getenv("BOTO_ENV", "prod")
	c.Region = os.Getenv(RegionEnvVar)
	c.Profile = getenv(ProfileEnvVar, "default")
	c.ConfigFile = getenv(ConfigEnvVar, defaultConfigFile())
	c.Log.ConsoleLevel = strings.ToLower(getenv("BOTO_LOG_CONSOLE_LEVEL", "info"))
	c.Log.FileLevel = strings.ToLower(getenv("BOTO_LOG_FILE_LEVEL", "debug"))
	c.Log.File = os.Getenv("BOTO_LOG_FILE")

	if err := validate.Struct(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ResolveRegion picks the effective region: an explicit argument wins, then
// the loaded configuration, then the process environment. With none of them
// set the caller cannot proceed and gets a NoRegionError naming the env var
// that would have supplied a default.
func (c Config) ResolveRegion(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.Region != "" {
		return c.Region, nil
	}
	if v := os.Getenv(RegionEnvVar); v != "" {
		return v, nil
	}
	return "", botoerr.NewNoRegionError(RegionEnvVar)
}

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".botocore", "config.toml")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
