// Package config loads runtime configuration for the foorum CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. FOORUM_* environment variables (see the env tags on Config).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-b string   storage backend: sqlite, memory, redis
//	-d string   data directory for the SQLite file
//	-r string   redis address host:port
//	-l string   log level: trace, debug, info, warn, error
//	-o string   feed order: legacy, chronological
//
// # File schema
//
//	{
//	  "storage_backend": "sqlite",
//	  "data_dir": "data",
//	  "database_file": "foorum.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_timeout": "5s",
//	  "log_level": "info",
//	  "log_format": "console",
//	  "feed_order": "legacy",
//	  "seed_posts": true
//	}
//
// Keys missing from the file keep their previous value.
package config
