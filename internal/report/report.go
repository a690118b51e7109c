// =============================================================================
// Honeybee 3DM - Inspection Report
// =============================================================================
//
// Builds a per-layer summary of a 3dm file for the inspect command: the file
// settings plus object counts by geometry type for every layer. The summary
// can be printed to the terminal or written as an XLSX workbook.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ladybug-tools/honeybee-3dm/internal/rhino"
)

// LayerSummary is the object census of one layer.
type LayerSummary struct {
	Name     string
	FullPath string
	Visible  bool
	Counts   map[rhino.ObjectType]int
	Total    int
}

// Summary describes a 3dm file.
type Summary struct {
	Units          string
	Tolerance      float64
	AngleTolerance float64
	ObjectCount    int
	Layers         []LayerSummary
}

// Build creates the summary for a parsed file.
func Build(file *rhino.File) Summary {
	s := Summary{
		Units:          file.Settings.UnitSystem.String(),
		Tolerance:      file.Settings.AbsoluteTolerance,
		AngleTolerance: file.Settings.AngleToleranceDegrees,
		ObjectCount:    len(file.Objects),
	}

	for _, layer := range file.Layers {
		s.Layers = append(s.Layers, LayerSummary{
			Name:     layer.Name,
			FullPath: layer.FullPath,
			Visible:  layer.Visible,
			Counts:   map[rhino.ObjectType]int{},
		})
	}
	byIndex := map[int32]*LayerSummary{}
	for i, layer := range file.Layers {
		byIndex[layer.Index] = &s.Layers[i]
	}

	for _, obj := range file.Objects {
		layer, ok := byIndex[obj.Attributes.LayerIndex]
		if !ok {
			continue
		}
		layer.Counts[obj.Geometry.ObjectType()]++
		layer.Total++
	}
	return s
}

// columns is the fixed order of geometry types in the report.
var columns = []rhino.ObjectType{
	rhino.ObjectTypeBrep,
	rhino.ObjectTypeExtrusion,
	rhino.ObjectTypeMesh,
	rhino.ObjectTypeCurve,
	rhino.ObjectTypePoint,
}

// WriteXLSX writes the summary to an XLSX workbook at path. The workbook has
// a Settings sheet and a Layers sheet.
func WriteXLSX(s Summary, path string) error {
	wb := excelize.NewFile()
	defer wb.Close()

	const settingsSheet = "Settings"
	if err := wb.SetSheetName("Sheet1", settingsSheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	settings := [][]any{
		{"Units", s.Units},
		{"Absolute tolerance", s.Tolerance},
		{"Angle tolerance (degrees)", s.AngleTolerance},
		{"Objects", s.ObjectCount},
		{"Layers", len(s.Layers)},
	}
	for i, row := range settings {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := wb.SetSheetRow(settingsSheet, cell, &row); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	const layersSheet = "Layers"
	if _, err := wb.NewSheet(layersSheet); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	header := []any{"Layer", "Full path", "Visible"}
	for _, col := range columns {
		header = append(header, col.String())
	}
	header = append(header, "Total")
	if err := wb.SetSheetRow(layersSheet, "A1", &header); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	for i, layer := range s.Layers {
		row := []any{layer.Name, layer.FullPath, layer.Visible}
		for _, col := range columns {
			row = append(row, layer.Counts[col])
		}
		row = append(row, layer.Total)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := wb.SetSheetRow(layersSheet, cell, &row); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("report: failed to write %s: %w", path, err)
	}
	return nil
}
