// Package xidgen provides public constants for external tools integrating
// with the xidgen catalog generator.
package xidgen

// Exit codes returned by the xidgen CLI.
// These constants allow build scripts to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the catalog was generated successfully.
	ExitSuccess = 0

	// ExitFailure indicates a usage, input, or worksheet schema error.
	// No output file is written when xidgen exits with this code.
	ExitFailure = 1
)
