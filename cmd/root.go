// =============================================================================
// Honeybee 3DM - Root Command
// =============================================================================
//
// Defines the root command for the Cobra CLI. All subcommands (translate,
// write, inspect, version) attach to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (honeybee-3dm)
//   ├── translateCmd (honeybee-3dm translate)
//   ├── writeCmd     (honeybee-3dm write)
//   ├── inspectCmd   (honeybee-3dm inspect)
//   └── versionCmd   (honeybee-3dm version)
//
// =============================================================================

package cmd

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "honeybee-3dm",
	Short: "Translate Rhino 3dm files to HBJSON",
	Long: `Honeybee 3DM translates Rhino 3dm files into HBJSON models for the
Honeybee building-performance toolkit.

Geometry is picked up from the Rhino layer table: an optional config file
maps layers to Honeybee face types, apertures, doors, shades and sensor
grids, and a layer named "room" carries closed volumes that become Rooms.

Example Usage:
  honeybee-3dm translate model.3dm                 # write ./unnamed.hbjson
  honeybee-3dm translate model.3dm -n office -f out
  honeybee-3dm translate model.3dm --config config.json
  honeybee-3dm inspect model.3dm                   # summarize the file`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
