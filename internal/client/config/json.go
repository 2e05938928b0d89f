package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophsession/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values so a partial file only
// overrides what it names.
type JsonConfig struct {
	APIBaseURL    *string `json:"api_url"`
	StoreDriver   *string `json:"store_driver"`
	StorePath     *string `json:"store_path"`
	RedisAddr     *string `json:"redis_addr"`
	RedisPassword *string `json:"redis_password"`
	RedisDB       *int    `json:"redis_db"`
	RedisPrefix   *string `json:"redis_prefix"`
	LogLevel      *string `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPathFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.StoreDriver, jc.StoreDriver)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPassword, jc.RedisPassword)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RedisDB != nil {
		cfg.RedisDB = *jc.RedisDB
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
