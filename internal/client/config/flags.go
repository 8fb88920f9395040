package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/foorum/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-b string   storage backend
//	-d string   data directory
//	-r string   redis address
//	-l string   log level
//	-o string   feed order
//
// Only these flags are looked at (see flagx.FilterArgs), so -c/-config and
// anything else on the command line does not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-r", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "b", cfg.StorageBackend, "storage backend (sqlite, memory, redis)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.FeedOrder, "o", cfg.FeedOrder, "feed order (legacy, chronological)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
