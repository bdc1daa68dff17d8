package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/placementdesk/internal/flagx"
)

var (
	knownFlags = []string{"-d", "-f", "-demo", "-m", "-t", "-l"}
	boolFlags  = []string{"-demo", "-m"}
)

// parseFlags populates cfg from the flags this package owns; everything
// else in args is ignored.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, knownFlags, boolFlags...)

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory holding the local database")
	fs.StringVar(&cfg.DatabaseFile, "f", cfg.DatabaseFile, "database file name")
	fs.BoolVar(&cfg.Demo, "demo", cfg.Demo, "seed demo data")
	fs.BoolVar(&cfg.InMemory, "m", cfg.InMemory, "keep collections in memory only")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	saveTimeout := fs.Int("t", int(cfg.SaveTimeout.Seconds()), "save timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t is whole seconds; leave a finer JSON value alone unless it was given
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SaveTimeout = time.Duration(*saveTimeout) * time.Second
		}
	})
}
