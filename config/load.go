package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads a TOML level file over the defaults and validates it
// Unknown keys are rejected
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML bytes over the defaults and validates the result
func Parse(data []byte) (*Level, error) {
	cfg := Default()
	defaultPath := cfg.Path
	cfg.Path = nil

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if cfg.Path == nil {
		cfg.Path = defaultPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode renders the level as TOML, suitable as a starting file for Load
func Encode(cfg *Level) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode level: %w", err)
	}
	return data, nil
}
