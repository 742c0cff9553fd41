package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SourceDir      string // upstream recipe directory
	OutputDir      string // regenerated on every run
	PatchPath      string
	DescriptorName string

	// Overrides is HCL source for the override set. Nil selects the set
	// compiled into the binary.
	Overrides []byte

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	required := []struct {
		name, value string
	}{
		{"SourceDir", cfg.SourceDir},
		{"OutputDir", cfg.OutputDir},
		{"PatchPath", cfg.PatchPath},
		{"DescriptorName", cfg.DescriptorName},
	}
	for _, field := range required {
		if field.value == "" {
			return nil, fmt.Errorf("%s is a required configuration field and cannot be empty", field.name)
		}
	}
	if cfg.SourceDir == cfg.OutputDir {
		return nil, errors.New("SourceDir and OutputDir must differ")
	}

	return &cfg, nil
}
