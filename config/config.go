package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults match the local anvil devnet the contracts are deployed to.
const (
	DefaultProvider       = "http://localhost:8545"
	DefaultDeploymentFile = "contracts/deployments/hello-world/31337.json"
	DefaultTaskInterval   = 15 * time.Second
)

var ErrMissingPrivateKey = errors.New("private key is not set")

type Config struct {
	Provider       string        `mapstructure:"provider"`
	PrivateKey     string        `mapstructure:"private_key"`
	DeploymentFile string        `mapstructure:"deployment_file"`
	TaskInterval   time.Duration `mapstructure:"task_interval"`
}

// Load reads config.toml from the working directory if present and merges
// the environment over it. The file is optional; the environment alone is
// enough to run.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.SetDefault("provider", DefaultProvider)
	v.SetDefault("deployment_file", DefaultDeploymentFile)
	v.SetDefault("task_interval", DefaultTaskInterval)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("private_key", "PRIVATE_KEY"); err != nil {
		return Config{}, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the config is sufficient to sign transactions.
// A missing key is fatal for the whole process, not for a single tick.
func (c Config) Validate() error {
	if c.PrivateKey == "" {
		return ErrMissingPrivateKey
	}
	return nil
}
