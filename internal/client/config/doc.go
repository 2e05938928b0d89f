// Package config loads runtime configuration for the session client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. A .env file in the working directory, then the process environment
//     (see parseEnv). Process variables win over the .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the API
//	-s string   token store driver: sqlite, redis or memory
//	-p string   sqlite database path
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	SESSION_API_URL, SESSION_STORE_DRIVER, SESSION_STORE_PATH,
//	SESSION_REDIS_ADDR, SESSION_REDIS_PASSWORD, SESSION_REDIS_DB,
//	SESSION_REDIS_PREFIX, SESSION_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "api_url": "http://127.0.0.1:4000",
//	  "store_driver": "sqlite",
//	  "store_path": "session.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_password": "",
//	  "redis_db": 0,
//	  "redis_prefix": "gophsession:",
//	  "log_level": "info"
//	}
//
// LoadConfig does not validate; call (*Config).Validate before use.
package config
