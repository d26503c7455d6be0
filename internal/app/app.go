package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/amps-tools/ampswizard/internal/ctxlog"
	"github.com/amps-tools/ampswizard/internal/paramfile"
	"github.com/amps-tools/ampswizard/internal/species"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	species  *species.Registry
	hydrator *paramfile.Hydrator
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and species
// registry. A broken species manifest is a fatal startup error.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	reg := species.New()
	if cfg.SpeciesPath != "" {
		ctx := ctxlog.WithLogger(context.Background(), logger)
		if err := reg.LoadManifests(ctx, cfg.SpeciesPath); err != nil {
			// Startup configuration errors are not forgiven the way
			// keyword-file fields are.
			panic(fmt.Errorf("failed to load species manifests: %w", err))
		}
	}
	logger.Debug("Species registry ready.", "species", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		species:  reg,
		hydrator: paramfile.NewHydrator(reg),
	}
}

// Species returns the application's species registry. Primarily for testing.
func (a *App) Species() *species.Registry {
	return a.species
}
