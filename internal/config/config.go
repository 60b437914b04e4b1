package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-server/internal/util"
)

// Config provides configuration for the hold'em server
type Config struct {
	loaded   bool
	Database struct {
		// Driver is either postgres or sqlite
		Driver         string `yaml:"driver" envconfig:"driver"`
		DSN            string `yaml:"dsn" envconfig:"dsn"`
		// MigrationsPath overrides the migrations embedded in the binary
		MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	} `yaml:"database"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Server struct {
		Addr string `yaml:"addr" envconfig:"addr"`
	} `yaml:"server"`
	JWT struct {
		// PublicKey and PrivateKey are paths to PEM encoded RSA keys
		// If they are not set, the server signs with a key generated at startup.
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	} `yaml:"jwt"`
	Game struct {
		Variant       string `yaml:"variant" envconfig:"variant"`
		StartingChips int    `yaml:"startingChips" envconfig:"starting_chips"`
		Seats         int    `yaml:"seats" envconfig:"seats"`
		Hands         int    `yaml:"hands" envconfig:"hands"`
		Tables        int    `yaml:"tables" envconfig:"tables"`
	} `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	c := Config{}
	c.Database.Driver = "sqlite"
	c.Database.DSN = "holdem.db"
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Server.Addr = ":5000"
	c.Game.Variant = "texas_holdem"
	c.Game.StartingChips = 1000
	c.Game.Seats = 4
	c.Game.Hands = 10
	c.Game.Tables = 4

	return c
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
// The file is optional; values from the environment take precedence over the file.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return err
	default:
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	}

	if err := envconfig.Process("holdem", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}
