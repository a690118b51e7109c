// =============================================================================
// Honeybee 3DM - Translate Command
// =============================================================================
//
// Implements 'translate' and its documented alias 'write': read a Rhino 3dm
// file, translate it into a Honeybee model and write the model to
// FOLDER/NAME.hbjson.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ladybug-tools/honeybee-3dm/internal/converter"
	"github.com/ladybug-tools/honeybee-3dm/pkg/utils"
)

// Flags shared by translate and write; only one of the two runs per
// invocation.
var (
	// outputName is the base name of the output HBJSON file.
	outputName string

	// outputFolder is the directory the HBJSON file is written to.
	outputFolder string

	// configPath points at an optional config file.
	configPath string
)

// translateCmd represents the 'translate' command.
var translateCmd = newTranslateCommand(
	"translate RHINO_FILE",
	"Translate a Rhino 3dm file to HBJSON",
)

// writeCmd is the documented alias of translate.
var writeCmd = newTranslateCommand(
	"write RHINO_FILE",
	"Write an HBJSON file from a Rhino 3dm file",
)

// newTranslateCommand builds one of the two translation verbs. Both carry
// the same flags and run the same pipeline.
func newTranslateCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

The output file is FOLDER/NAME.hbjson; the folder is created when missing.
An optional config file (JSON or YAML) maps Rhino layers to Honeybee face
types, face objects, radiance materials and sensor-grid settings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(args[0])
		},
	}

	cmd.Flags().StringVarP(
		&outputName,
		"name",
		"n",
		utils.DefaultOutputName,
		"Name of the output HBJSON file",
	)
	cmd.Flags().StringVarP(
		&outputFolder,
		"folder",
		"f",
		".",
		"Path to folder where HBJSON will be written",
	)
	cmd.Flags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"File path to the config file (JSON or YAML)",
	)
	return cmd
}

// runTranslate is the translation pipeline behind both verbs.
func runTranslate(rhinoFile string) error {
	if !utils.HasExtension(rhinoFile, ".3dm") {
		return fmt.Errorf("HBJSON generation failed: %s is not a 3dm file", rhinoFile)
	}
	if !utils.FileExists(rhinoFile) {
		return fmt.Errorf("HBJSON generation failed: %s is not a valid file path", rhinoFile)
	}
	if err := utils.EnsureDir(outputFolder); err != nil {
		return err
	}

	imp := converter.New(slog.Default())
	model, err := imp.Import3dm(rhinoFile, configPath)
	if err != nil {
		return fmt.Errorf("HBJSON generation failed: %w", err)
	}

	outputFile := utils.OutputPath(outputFolder, outputName, ".hbjson")
	if err := model.Write(outputFile); err != nil {
		return fmt.Errorf("HBJSON generation failed: %w", err)
	}

	color.New(color.FgGreen).Fprintf(os.Stderr, "Success: %s\n", outputFile)
	return nil
}

func init() {
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(writeCmd)
}
