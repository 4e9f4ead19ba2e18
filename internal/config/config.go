// Package config resolves the converter settings from command-line flags,
// AUCTION_* environment variables (optionally from a .env file), an optional
// YAML file and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"auction-loader/internal/repository"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "AUCTION"

// Config holds all converter settings
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Users  UsersConfig  `mapstructure:"users"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig selects where the tables go
type OutputConfig struct {
	Folder string `mapstructure:"folder"` // directory for the four .dat files, "" is the working directory
	SQLite string `mapstructure:"sqlite"` // SQLite database path, "" disables the database load
}

// UsersConfig controls user deduplication
type UsersConfig struct {
	ConflictPolicy string `mapstructure:"conflict_policy"` // first-wins or prefer-seller
}

// LogConfig controls logging
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or text
}

// flag name -> config key
var flagKeys = map[string]string{
	"output-folder":   "output.folder",
	"sqlite":          "output.sqlite",
	"conflict-policy": "users.conflict_policy",
	"log-level":       "log.level",
	"log-format":      "log.format",
}

var defaults = map[string]any{
	"output.folder":         "",
	"output.sqlite":         "",
	"users.conflict_policy": "first-wins",
	"log.level":             "info",
	"log.format":            "json",
}

// NewFlagSet defines the command-line flags understood by Load
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("output-folder", "o", "", "directory the .dat files are written to")
	fs.String("sqlite", "", "also load the tables into this SQLite database")
	fs.String("conflict-policy", "first-wins", "user conflict policy: first-wins or prefer-seller")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "json", "log format: json or text")
	fs.StringP("config", "c", "", "optional YAML config file")
	return fs
}

// Load resolves the configuration for an already parsed flag set
func Load(fs *pflag.FlagSet) (*Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// Validate rejects unknown enumerated values
func (c *Config) Validate() error {
	var errs []error
	if _, ok := repository.PolicyByName(c.Users.ConflictPolicy); !ok {
		errs = append(errs, fmt.Errorf("unknown conflict policy %q", c.Users.ConflictPolicy))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// Policy returns the configured user conflict policy
func (c *Config) Policy() repository.ConflictPolicy {
	p, _ := repository.PolicyByName(c.Users.ConflictPolicy)
	return p
}
