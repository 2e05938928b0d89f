package config

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Token store drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

var logLevels = []interface{}{"debug", "info", "warn", "warning", "error"}

// Config holds runtime settings for the session client.
type Config struct {
	APIBaseURL    string
	StoreDriver   string
	StorePath     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:4000"
	c.StoreDriver = DriverSQLite
	c.StorePath = "session.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisDB = 0
	c.RedisPrefix = "gophsession:"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg, envFile)
	parseFlags(cfg)
	return cfg
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	storePath := []validation.Rule{}
	if c.StoreDriver == DriverSQLite {
		storePath = append(storePath, validation.Required)
	}
	redisAddr := []validation.Rule{}
	if c.StoreDriver == DriverRedis {
		redisAddr = append(redisAddr, validation.Required)
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.APIBaseURL, validation.Required, is.URL),
		validation.Field(&c.StoreDriver, validation.Required, validation.In(DriverSQLite, DriverRedis, DriverMemory)),
		validation.Field(&c.StorePath, storePath...),
		validation.Field(&c.RedisAddr, redisAddr...),
		validation.Field(&c.RedisDB, validation.Min(0)),
		validation.Field(&c.LogLevel, validation.In(logLevels...)),
	)
}
