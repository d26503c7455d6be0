package species

import "strings"

// TagCustom marks an identifier the registry does not recognize. No charge
// or mass is derived for it; the caller keeps whatever values it already has.
const TagCustom = "custom"

// Species is one resolvable particle kind.
type Species struct {
	Tag     string   // canonical tag, e.g. "proton"
	Aliases []string // accepted spellings, matched case-insensitively
	Charge  float64  // elementary charges
	Mass    float64  // atomic mass units
}

// Registry maps normalized identifiers to species definitions.
type Registry struct {
	byAlias map[string]*Species
}

// builtins is the fixed table of species the wizard always knows about.
var builtins = []Species{
	{Tag: "proton", Aliases: []string{"proton", "p", "h", "h+", "hydrogen"}, Charge: 1, Mass: 1.0073},
	{Tag: "electron", Aliases: []string{"electron", "e", "e-", "e1"}, Charge: -1, Mass: 5.4858e-4},
	{Tag: "alpha", Aliases: []string{"alpha", "he2+", "he++", "helium"}, Charge: 2, Mass: 4.0015},
	{Tag: "oxygen", Aliases: []string{"oxygen", "o+", "o1+"}, Charge: 1, Mass: 15.999},
}

// New creates a Registry seeded with the built-in species table.
func New() *Registry {
	r := &Registry{byAlias: make(map[string]*Species)}
	for i := range builtins {
		r.add(&builtins[i])
	}
	return r
}

// add indexes a species under its tag and all aliases. Later additions win,
// so manifest entries shadow built-ins sharing an alias.
func (r *Registry) add(s *Species) {
	r.byAlias[normalize(s.Tag)] = s
	for _, a := range s.Aliases {
		r.byAlias[normalize(a)] = s
	}
}

// Resolve looks up a free-text identifier. An empty identifier resolves to
// nothing (ok=false); an unrecognized one resolves to a custom species with
// no derived charge or mass.
func (r *Registry) Resolve(id string) (Species, bool) {
	norm := normalize(id)
	if norm == "" {
		return Species{}, false
	}
	if s, found := r.byAlias[norm]; found {
		return *s, true
	}
	return Species{Tag: TagCustom}, true
}

// Known reports whether an identifier maps to a table entry (not custom).
func (r *Registry) Known(id string) bool {
	_, found := r.byAlias[normalize(id)]
	return found
}

// Len returns the number of distinct species in the registry.
func (r *Registry) Len() int {
	seen := make(map[*Species]struct{})
	for _, s := range r.byAlias {
		seen[s] = struct{}{}
	}
	return len(seen)
}

func normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
