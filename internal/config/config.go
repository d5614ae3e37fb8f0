package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"pokerhands/internal/util"
)

const defaultConfigFile = "config.yaml"

// Config provides configuration for the poker hand service
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
	Evaluator struct {
		// Workers is the number of hands evaluated concurrently per request
		Workers int `yaml:"workers" envconfig:"workers"`
		// MaxHands is the most hands a single request may compare
		MaxHands int `yaml:"maxHands" envconfig:"max_hands"`
	} `yaml:"evaluator"`
}

var config Config

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	var cfg Config
	cfg.Addr = ":5000"
	cfg.Log.Level = "info"
	cfg.CORS.AllowedOrigins = []string{"*"}
	cfg.Evaluator.Workers = 1
	cfg.Evaluator.MaxHands = 100

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The file named by PH_CONFIG_FILE is required. Without it, config.yaml is read if it exists.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("PH_CONFIG_FILE", "")
	required := configFile != ""
	if !required {
		configFile = defaultConfigFile
	}

	if err := decodeFile(configFile, &cfg); err != nil {
		if required || !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := envconfig.Process("ph", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func decodeFile(name string, cfg *Config) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	return yaml.NewDecoder(file).Decode(cfg)
}
