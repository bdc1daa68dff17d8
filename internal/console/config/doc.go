// Package config loads runtime configuration for the placementdesk console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   directory holding the local database
//	-f string   database file name inside the data directory
//	-demo       seed demo data into collections that are not stored yet
//	-m          keep collections in memory only
//	-t int      per-write save timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations use timex.Duration, so "3s" and integer nanoseconds both work:
//
//	{
//	  "data_dir": ".placementdesk",
//	  "database_file": "console.db",
//	  "demo": true,
//	  "in_memory": false,
//	  "save_timeout": "3s",
//	  "log_level": "info"
//	}
//
// Fields absent from the JSON keep their default.
package config
