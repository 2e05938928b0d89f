package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// envFile is the dotenv file read from the working directory.
const envFile = ".env"

const (
	EnvAPIURL        = "SESSION_API_URL"
	EnvStoreDriver   = "SESSION_STORE_DRIVER"
	EnvStorePath     = "SESSION_STORE_PATH"
	EnvRedisAddr     = "SESSION_REDIS_ADDR"
	EnvRedisPassword = "SESSION_REDIS_PASSWORD"
	EnvRedisDB       = "SESSION_REDIS_DB"
	EnvRedisPrefix   = "SESSION_REDIS_PREFIX"
	EnvLogLevel      = "SESSION_LOG_LEVEL"
)

// parseEnv overlays Config with SESSION_* variables from the dotenv file at
// path and from the process environment, the latter taking precedence. A
// missing dotenv file is ignored; a malformed one panics. Empty values and
// an unparsable SESSION_REDIS_DB are ignored.
func parseEnv(cfg *Config, path string) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		vars = map[string]string{}
	}

	get := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return vars[key]
	}

	setEnvString(&cfg.APIBaseURL, get(EnvAPIURL))
	setEnvString(&cfg.StoreDriver, get(EnvStoreDriver))
	setEnvString(&cfg.StorePath, get(EnvStorePath))
	setEnvString(&cfg.RedisAddr, get(EnvRedisAddr))
	setEnvString(&cfg.RedisPassword, get(EnvRedisPassword))
	setEnvString(&cfg.RedisPrefix, get(EnvRedisPrefix))
	setEnvString(&cfg.LogLevel, get(EnvLogLevel))
	if v := get(EnvRedisDB); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.RedisDB = db
		}
	}
}

func setEnvString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
