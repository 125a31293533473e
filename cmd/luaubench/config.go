package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// BenchConfig is the optional TOML configuration for a bench run, loaded
// with --config. Absent a config file, a run uses zero values (no repeat,
// no warmup). Warmup is decoded but not read by the bench command, which
// runs no warmup passes.
type BenchConfig struct {
	Repeat int      `toml:"repeat"`
	Warmup int      `toml:"warmup"`
	Files  []string `toml:"files"`
}

func loadBenchConfig(path string) (BenchConfig, error) {
	var cfg BenchConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fail("parsing config %s: %w", path, err)
	}
	if cfg.Repeat <= 0 {
		cfg.Repeat = 1
	}
	return cfg, nil
}
