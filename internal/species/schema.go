package species

import "github.com/hashicorp/hcl/v2"

// manifestSchema is the top-level structure of a species manifest file.
type manifestSchema struct {
	Species []*speciesBlock `hcl:"species,block"`
	Body    hcl.Body        `hcl:",remain"`
}

// speciesBlock is one `species "tag" { ... }` block.
type speciesBlock struct {
	Tag     string   `hcl:"tag,label"`
	Aliases []string `hcl:"aliases"`
	Charge  float64  `hcl:"charge"`
	Mass    float64  `hcl:"mass"`
}
