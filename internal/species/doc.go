// Package species resolves free-text particle identifiers against a table
// of known species, deriving charge (elementary charges) and mass (amu).
//
// A built-in table covers the common magnetospheric species. Deployments can
// extend it with HCL manifest files; manifest entries are validated at load
// time and merged over the built-ins, so the wizard can offer site-specific
// ion populations without a rebuild.
package species
