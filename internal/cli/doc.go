// Package cli translates command-line arguments into an app.Config. It owns
// usage text, flag validation, and the process exit codes.
package cli
