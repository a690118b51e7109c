// =============================================================================
// Honeybee 3DM - Main Entry Point
// =============================================================================
//
// Entry point for the honeybee-3dm CLI. It initializes the Cobra CLI
// framework and delegates command execution to the cmd package.
//
// USAGE:
//   honeybee-3dm translate RHINO_FILE  - Translate a Rhino file to HBJSON
//   honeybee-3dm write RHINO_FILE      - Alias of translate
//   honeybee-3dm inspect RHINO_FILE    - Summarize a Rhino file
//   honeybee-3dm version               - Display the application version
//
// =============================================================================

package main

import (
	"github.com/ladybug-tools/honeybee-3dm/cmd"
)

func main() {
	cmd.Execute()
}
