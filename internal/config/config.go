package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Engine    EngineConfig    `toml:"engine"`
	Logging   LoggingConfig   `toml:"logging"`
	Scripts   ScriptsConfig   `toml:"scripts"`
	Data      DataConfig      `toml:"data"`
	Profiling ProfilingConfig `toml:"profiling"`
}

type EngineConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	MaxTicks int           `toml:"max_ticks"` // 0 = run until signal
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ScriptsConfig struct {
	Dir string `toml:"dir"` // empty disables the Lua engine
}

type DataConfig struct {
	SpawnFile string `toml:"spawn_file"`
}

type ProfilingConfig struct {
	Mode string `toml:"mode"` // "", "cpu", "mem"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			TickRate: 16 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Scripts: ScriptsConfig{
			Dir: "scripts",
		},
		Data: DataConfig{
			SpawnFile: "data/spawns.yaml",
		},
	}
}
