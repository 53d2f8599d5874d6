// Package cli defines the Cobra command tree for the baker CLI. Each file
// in this package registers one top-level command (new, init, structures,
// config, version) with the root command. Commands only handle flag parsing,
// output formatting and wiring; the work happens in the internal packages.
package cli
