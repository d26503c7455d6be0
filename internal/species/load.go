package species

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/amps-tools/ampswizard/internal/ctxlog"
	"github.com/amps-tools/ampswizard/internal/fsutil"
)

// LoadManifests parses every .hcl species manifest under path and merges the
// validated entries into the registry. A manifest that fails to parse or
// validate aborts the load; startup configuration errors are not forgiven
// the way keyword-file fields are.
func (r *Registry) LoadManifests(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)

	filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return fmt.Errorf("failed to scan species manifest path %s: %w", path, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No species manifest files found", "path", path)
		return nil
	}

	parser := hclparse.NewParser()
	loaded := 0
	for _, filePath := range filePaths {
		file, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse species manifest %s: %s", filePath, diags.Error())
		}

		var manifest manifestSchema
		diags = gohcl.DecodeBody(file.Body, nil, &manifest)
		if diags.HasErrors() {
			return fmt.Errorf("failed to decode species manifest %s: %s", filePath, diags.Error())
		}

		for _, block := range manifest.Species {
			s, err := block.toSpecies()
			if err != nil {
				return fmt.Errorf("invalid species %q in %s: %w", block.Tag, filePath, err)
			}
			r.add(s)
			loaded++
		}
		logger.Debug("Loaded species manifest.", "file", filePath)
	}

	logger.Info("Species manifests loaded.", "files", len(filePaths), "species", loaded)
	return nil
}

// toSpecies validates a decoded block and converts it to a Species.
func (b *speciesBlock) toSpecies() (*Species, error) {
	if b.Tag == "" {
		return nil, fmt.Errorf("tag must not be empty")
	}
	if b.Mass <= 0 {
		return nil, fmt.Errorf("mass must be positive, got %v", b.Mass)
	}
	if len(b.Aliases) == 0 {
		return nil, fmt.Errorf("at least one alias is required")
	}
	return &Species{
		Tag:     b.Tag,
		Aliases: b.Aliases,
		Charge:  b.Charge,
		Mass:    b.Mass,
	}, nil
}
