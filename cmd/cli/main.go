package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/amps-tools/ampswizard/internal/app"
	"github.com/amps-tools/ampswizard/internal/cli"
)

// main is the entrypoint for the ampswizard application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Startup wiring panics (broken species manifests) are recovered
// here and surfaced as plain errors.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup failed: %v", r)
		}
	}()

	wizardApp := app.NewApp(outW, appConfig)
	return wizardApp.Run(context.Background())
}
