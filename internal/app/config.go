package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ParamPath string // AMPS_PARAM.in file to load (one-shot and push modes)
	OutPath   string // output path for one-shot mode; "" means stdout
	CheckOnly bool   // stop after the sanity gate

	Listen  string // when set, run the wizard service on this address
	PushURL string // when set, push ParamPath into a remote wizard session

	SpeciesPath string // directory of HCL species manifests, optional

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config. Serving needs no input file; the other two
// modes do.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Listen == "" && cfg.ParamPath == "" {
		return nil, errors.New("a param file path is required unless -listen is set")
	}
	return &cfg, nil
}
