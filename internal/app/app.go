package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/hyprcustom/internal/assembler"
	"github.com/vk/hyprcustom/internal/ctxlog"
	"github.com/vk/hyprcustom/internal/override"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	overrides *override.Set
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. A broken override
// set is a programmer error and panics.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	var (
		set *override.Set
		err error
	)
	if cfg.Overrides != nil {
		set, err = override.Load(cfg.Overrides, "overrides.hcl")
	} else {
		set, err = override.Builtin()
	}
	if err != nil {
		panic(fmt.Errorf("failed to load override set: %w", err))
	}
	logger.Debug("Override set loaded.", "rules", set.Len())

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		overrides: set,
	}
}

// Run generates the customised descriptor.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	asm := assembler.New(assembler.Options{
		SourceDir:      a.config.SourceDir,
		OutputDir:      a.config.OutputDir,
		PatchPath:      a.config.PatchPath,
		DescriptorName: a.config.DescriptorName,
	}, a.overrides, a.outW)

	path, err := asm.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate descriptor: %w", err)
	}

	a.logger.Info("Descriptor generated.", "path", path)
	a.logger.Debug("App.Run method finished.")
	return nil
}
