// Package config handles resolving configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/msomdec/course-api/internal/logging"
	"github.com/msomdec/course-api/internal/repository/sqldb"
)

// EnvPrefix namespaces environment overrides, e.g. COURSES_DATABASE_DSN.
const EnvPrefix = "COURSES"

// MaxBcryptCost bounds password hashing so a login stays well under a second.
const MaxBcryptCost = 14

// Config is the resolved runtime configuration.
type Config struct {
	Addr       string         `mapstructure:"addr"`
	Database   DatabaseConfig `mapstructure:"database"`
	BcryptCost int            `mapstructure:"bcrypt_cost"`
	Log        LogConfig      `mapstructure:"log"`
	CORS       CORSConfig     `mapstructure:"cors"`
}

// DatabaseConfig selects the storage driver and its connection string.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FlagKeys maps command-line flag names to configuration keys. Flags that
// are present on the flag set passed to Load override every other source.
var FlagKeys = map[string]string{
	"addr":       "addr",
	"db-driver":  "database.driver",
	"db-dsn":     "database.dsn",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// Defaults returns every key with its default value.
func Defaults() map[string]any {
	return map[string]any{
		"addr":                 ":5000",
		"database.driver":      sqldb.DriverSQLite,
		"database.dsn":         "courses.db",
		"bcrypt_cost":          bcrypt.DefaultCost,
		"log.level":            "info",
		"log.format":           logging.FormatAuto,
		"cors.allowed_origins": []string{"*"},
	}
}

// Load resolves configuration from, lowest precedence first: defaults, the
// YAML file at configFile (if set), the environment (after loading envFile
// when it exists) and the flags in flags (if non-nil). The result is
// validated.
func Load(flags *pflag.FlagSet, configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must be set"))
	}
	if !sqldb.SupportedDriver(c.Database.Driver) {
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, errors.New("database.dsn must be set"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > MaxBcryptCost {
		errs = append(errs, fmt.Errorf("bcrypt_cost must be between %d and %d, got %d", bcrypt.MinCost, MaxBcryptCost, c.BcryptCost))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("cors.allowed_origins must not be empty"))
	}
	return errors.Join(errs...)
}
