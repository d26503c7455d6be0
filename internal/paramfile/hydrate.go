package paramfile

import (
	"reflect"
	"strings"

	"github.com/amps-tools/ampswizard/internal/run"
	"github.com/amps-tools/ampswizard/internal/species"
)

// Keywords with behavior beyond the uniform field table.
const (
	speciesKeyword    = "SPECIES"
	shellCountKeyword = "NSHELLS"
)

// Hydrator populates a run.Config from a KeywordMap. It never fails: every
// lookup degrades to the configuration's existing value when the key is
// absent or its value cannot be coerced.
type Hydrator struct {
	species *species.Registry
}

// NewHydrator creates a Hydrator resolving species against the given
// registry. A nil registry gets the built-in table.
func NewHydrator(reg *species.Registry) *Hydrator {
	if reg == nil {
		reg = species.New()
	}
	return &Hydrator{species: reg}
}

// Hydrate mutates cfg in place from the keyword map and returns the map for
// secondary callers that need the raw values. Species inference runs before
// the field table so explicit CHARGE and MASS keys override the derived
// values; structural evidence of an output mode (a point list, a shell
// count) overrides the OUTPUT_MODE discriminator last.
func (h *Hydrator) Hydrate(m *KeywordMap, cfg *run.Config) *KeywordMap {
	h.inferSpecies(m, cfg)
	hydrateFields(m, cfg)
	forceOutputMode(m, cfg)
	return m
}

// inferSpecies resolves the free-text species identifier against the
// registry, deriving charge and mass for recognized species. Unrecognized
// non-empty identifiers are tagged custom with no derivation.
func (h *Hydrator) inferSpecies(m *KeywordMap, cfg *run.Config) {
	raw, ok := m.Get(speciesKeyword)
	if !ok {
		return
	}
	s, ok := h.species.Resolve(raw)
	if !ok {
		return
	}
	cfg.Species = s.Tag
	if s.Tag != species.TagCustom {
		cfg.Charge = s.Charge
		cfg.Mass = s.Mass
	}
}

// hydrateFields runs the uniform coercion engine over the field table: every
// tagged Config field is one (keyword, kind, target, fallback) row, with the
// kind taken from the field type and the fallback being the value already in
// place. Keywords absent from the map leave their fields untouched; unknown
// keywords in the map touch nothing.
func hydrateFields(m *KeywordMap, cfg *run.Config) {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("amps")
		if tag == "" || tag == "-" {
			continue
		}
		name, opts := parseTag(tag)
		if name == speciesKeyword {
			// Owned by inferSpecies: the field stores the canonical tag,
			// not the raw identifier.
			continue
		}
		raw, present := m.Get(name)
		if !present {
			continue
		}
		coerceInto(raw, v.Field(i), opts)
	}
}

// forceOutputMode applies structural evidence over the discriminator label.
// Generated files keep label and data in sync; hand-edited ones may not, and
// the data wins. A non-empty point block outranks a shell count.
func forceOutputMode(m *KeywordMap, cfg *run.Config) {
	if pts := m.Points(); len(pts) > 0 {
		cfg.Points = strings.Join(pts, "\n")
		cfg.OutputMode = run.OutputPoints
		return
	}
	if m.Has(shellCountKeyword) {
		cfg.OutputMode = run.OutputShells
	}
}
