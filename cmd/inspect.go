// =============================================================================
// Honeybee 3DM - Inspect Command
// =============================================================================
//
// Prints a per-layer summary of a 3dm file without translating it: units,
// tolerances and object counts by geometry type. With --report the same
// summary is written as an XLSX workbook.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ladybug-tools/honeybee-3dm/internal/report"
	"github.com/ladybug-tools/honeybee-3dm/internal/rhino"
	"github.com/ladybug-tools/honeybee-3dm/pkg/utils"
)

// reportPath is the optional XLSX output path for the inspect command.
var reportPath string

// inspectCmd represents the 'inspect' command.
var inspectCmd = &cobra.Command{
	Use:   "inspect RHINO_FILE",
	Short: "Summarize the layers and objects of a Rhino 3dm file",
	Long: `Summarize the layers and objects of a Rhino 3dm file.

The summary lists the model units, tolerances and, for every layer, the
object counts by geometry type. This is a quick way to check what a
translation would pick up before running it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func runInspect(rhinoFile string) error {
	if !utils.HasExtension(rhinoFile, ".3dm") {
		return fmt.Errorf("%s is not a 3dm file", rhinoFile)
	}
	file, err := rhino.Read(rhinoFile)
	if err != nil {
		return err
	}
	summary := report.Build(file)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	bold.Println(rhinoFile)
	fmt.Printf("  Units:           %s\n", summary.Units)
	fmt.Printf("  Tolerance:       %g\n", summary.Tolerance)
	fmt.Printf("  Angle tolerance: %g degrees\n", summary.AngleTolerance)
	fmt.Printf("  Objects:         %d\n", summary.ObjectCount)
	fmt.Println()

	for _, layer := range summary.Layers {
		if layer.Visible {
			bold.Printf("  %s", layer.Name)
		} else {
			dim.Printf("  %s (hidden)", layer.Name)
		}
		fmt.Printf("  %d object(s)\n", layer.Total)
		for objType, count := range layer.Counts {
			fmt.Printf("    %-10s %d\n", objType.String(), count)
		}
	}

	if reportPath != "" {
		if err := report.WriteXLSX(summary, reportPath); err != nil {
			return err
		}
		color.New(color.FgGreen).Printf("Report written: %s\n", reportPath)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(
		&reportPath,
		"report",
		"",
		"Write the summary as an XLSX workbook to this path",
	)
}
