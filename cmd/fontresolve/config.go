package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/gogpu/fontreg/manifest"
	"github.com/gogpu/fontreg/text"
)

// config is read from the environment; flags override it.
type config struct {
	Assets   string `env:"FONTREG_ASSETS" envDefault:"."`
	Manifest string `env:"FONTREG_MANIFEST"`
	Parser   string `env:"FONTREG_PARSER"`
	Discrete bool   `env:"FONTREG_DISCRETE"`
	Debug    bool   `env:"FONTREG_DEBUG"`
}

// loadConfig parses the environment.
func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Manifest == "" {
		cfg.Manifest = manifest.DefaultName
	}
	if cfg.Parser == "" {
		cfg.Parser = text.ParserGoText
	}
	return cfg, nil
}
