// Package cmd holds build information shared by the rlexer commands.
package cmd

// These variables are populated via the Go linker.
var (
	// Version of rlexer.
	Version = "1"

	// Commit this code was built at.
	Commit = "unknown"

	// Branch the code was built from.
	Branch = "unknown"

	// Buildtime timestamp.
	Buildtime = "unknown"
)
