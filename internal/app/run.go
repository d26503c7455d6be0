package app

import (
	"context"
	"fmt"
	"os"

	"github.com/amps-tools/ampswizard/internal/ctxlog"
	"github.com/amps-tools/ampswizard/internal/paramfile"
	"github.com/amps-tools/ampswizard/internal/push"
	"github.com/amps-tools/ampswizard/internal/run"
	"github.com/amps-tools/ampswizard/internal/server"
)

// Run executes the selected application mode: serve the wizard, push a file
// into a remote session, or convert one file in place.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	switch {
	case a.config.Listen != "":
		srv := server.New(a.logger, a.species)
		return srv.ListenAndServe(ctx, a.config.Listen)
	case a.config.PushURL != "":
		return a.pushFile(ctx)
	default:
		return a.convertFile(ctx)
	}
}

// convertFile runs the full gate, parse, hydrate, serialize cycle on one
// file. With CheckOnly set, it stops after the gate.
func (a *App) convertFile(ctx context.Context) error {
	text, err := a.readParamFile()
	if err != nil {
		return err
	}

	if err := paramfile.SanityCheck(text); err != nil {
		return err
	}
	a.logger.Debug("Sanity gate passed.", "path", a.config.ParamPath)
	if a.config.CheckOnly {
		fmt.Fprintln(a.outW, "OK")
		return nil
	}

	cfg := run.NewConfig()
	m := a.hydrator.Hydrate(paramfile.Parse(text), cfg)
	a.logger.Info("Param file hydrated.",
		"keywords", m.Len(), "species", cfg.Species, "output_mode", cfg.OutputMode)

	out := paramfile.Serialize(cfg)
	if a.config.OutPath == "" {
		fmt.Fprint(a.outW, out)
		return nil
	}
	if err := os.WriteFile(a.config.OutPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	a.logger.Info("Canonical param file written.", "path", a.config.OutPath)
	return nil
}

// pushFile loads the param file and pushes it into a running wizard session.
func (a *App) pushFile(ctx context.Context) error {
	text, err := a.readParamFile()
	if err != nil {
		return err
	}
	if err := paramfile.SanityCheck(text); err != nil {
		return err
	}

	resp, err := push.Send(ctx, a.config.PushURL, text)
	if err != nil {
		return fmt.Errorf("push failed: %w", err)
	}
	fmt.Fprintf(a.outW, "%v\n", resp)
	return nil
}

func (a *App) readParamFile() (string, error) {
	data, err := os.ReadFile(a.config.ParamPath)
	if err != nil {
		return "", fmt.Errorf("failed to read param file: %w", err)
	}
	return string(data), nil
}
