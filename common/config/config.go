package config

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pixelfort/pixelfort-cli/common/logger"
)

const (
	// DefaultEnvFile is the production env file the deploy pipeline reads.
	DefaultEnvFile = ".env.production"

	// DefaultAPIPort is used when the env file does not declare API_PORT.
	DefaultAPIPort = 8000

	EnvProduction = "production"

	flagForEnvFile = "env-file"

	keyEnvironment = "ENVIRONMENT"
	keyAPIPort     = "API_PORT"
	keyAppName     = "APP_NAME"
)

// ErrMissingEnvFile is returned when the env file does not exist on disk.
var ErrMissingEnvFile = eris.New("env file not found")

// Config holds the deployment configuration. It is loaded once at startup
// and passed by reference to each pipeline stage, never mutated afterwards.
type Config struct {
	File        string
	AppName     string
	Environment string
	APIPort     int
}

func AddEnvFileFlag(cmd ...*cobra.Command) {
	for _, c := range cmd {
		c.Flags().String(flagForEnvFile, DefaultEnvFile, "environment file with KEY=value pairs")
	}
}

// GetConfig loads the env file named by the --env-file flag, falling back to
// the default production env file.
func GetConfig(cmd *cobra.Command) (*Config, error) {
	filename, err := cmd.Flags().GetString(flagForEnvFile)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		filename = DefaultEnvFile
	}
	return Load(filename)
}

// Load reads a line-oriented KEY=value file into an immutable Config.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return nil, eris.Wrapf(ErrMissingEnvFile, "%s", filename)
		}
		return nil, eris.Wrapf(err, "failed to stat env file %s", filename)
	}

	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("env")
	v.SetDefault(keyAPIPort, DefaultAPIPort)
	v.SetDefault(keyAppName, "pixelfort")

	if err := v.ReadInConfig(); err != nil {
		return nil, eris.Wrapf(err, "failed to read env file %s", filename)
	}

	cfg := &Config{
		File:        filename,
		AppName:     v.GetString(keyAppName),
		Environment: v.GetString(keyEnvironment),
		APIPort:     v.GetInt(keyAPIPort),
	}

	if cfg.APIPort < 1 || cfg.APIPort > 65535 {
		return nil, eris.Errorf("API_PORT %d is out of range (1-65535)", cfg.APIPort)
	}

	logger.Debugf("successfully loaded config from %q", filename)

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// ServiceURL is the base URL the deployed service listens on.
func (c *Config) ServiceURL() string {
	return fmt.Sprintf("http://localhost:%d", c.APIPort)
}

// HealthURL is the readiness probe target.
func (c *Config) HealthURL() string {
	return c.ServiceURL() + "/health"
}
