package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/placementdesk/internal/flagx"
	"github.com/dmitrijs2005/placementdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "false" apart from "not set".
type JsonConfig struct {
	DataDir      string         `json:"data_dir"`
	DatabaseFile string         `json:"database_file"`
	Demo         *bool          `json:"demo"`
	InMemory     *bool          `json:"in_memory"`
	SaveTimeout  timex.Duration `json:"save_timeout"`
	LogLevel     string         `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config in args.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.Demo != nil {
		cfg.Demo = *jc.Demo
	}
	if jc.InMemory != nil {
		cfg.InMemory = *jc.InMemory
	}
	if jc.SaveTimeout.Duration > 0 {
		cfg.SaveTimeout = jc.SaveTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
