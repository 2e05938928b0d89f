package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/gophsession/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the API
//	-s string   token store driver
//	-p string   sqlite database path
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the API")
	fs.StringVar(&cfg.StoreDriver, "s", cfg.StoreDriver, "token store driver (sqlite, redis, memory)")
	fs.StringVar(&cfg.StorePath, "p", cfg.StorePath, "sqlite database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
