package config

import (
	"path/filepath"
	"time"
)

type Config struct {
	DataDir      string
	DatabaseFile string
	Demo         bool
	InMemory     bool
	SaveTimeout  time.Duration
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".placementdesk"
	c.DatabaseFile = "console.db"
	c.Demo = false
	c.InMemory = false
	c.SaveTimeout = 3 * time.Second
	c.LogLevel = "info"
}

// DatabasePath joins DataDir and DatabaseFile.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// LoadConfig applies defaults, then the JSON file named in args (if any),
// then the flags in args. Later sources take precedence. It panics on an
// unreadable config file or malformed flags.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
