package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/amps-tools/ampswizard/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("ampswizard", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
ampswizard - collects AMPS run parameters and converts AMPS_PARAM.in files.

Usage:
  ampswizard [options] [PARAM_PATH]

Arguments:
  PARAM_PATH
    Path to an AMPS_PARAM.in file. Required unless -listen is set.

Options:
`)
		flagSet.PrintDefaults()
	}

	outFlag := flagSet.String("out", "", "Write the canonical param file here instead of stdout.")
	checkFlag := flagSet.Bool("check-only", false, "Stop after the format sanity check.")
	listenFlag := flagSet.String("listen", "", "Run the wizard service on this address, e.g. ':8080'.")
	pushFlag := flagSet.String("push", "", "Push PARAM_PATH into a running wizard at this URL.")
	speciesFlag := flagSet.String("species-path", "", "Directory of HCL species manifests to merge into the registry.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" && *listenFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *pushFlag != "" && path == "" {
		return nil, false, &ExitError{Code: 2, Message: "-push requires a PARAM_PATH argument"}
	}

	config, err := app.NewConfig(app.Config{
		ParamPath:   path,
		OutPath:     *outFlag,
		CheckOnly:   *checkFlag,
		Listen:      *listenFlag,
		PushURL:     *pushFlag,
		SpeciesPath: *speciesFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
