// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the execution lifecycle — one-shot file
// conversion, remote push, or running the wizard service — decoupled from
// any specific entrypoint like the CLI.
package app
