// =============================================================================
// Honeybee 3DM - Honeybee Model
// =============================================================================
//
// The Model is the root object the translation produces: rooms plus orphaned
// faces, shades, apertures and doors, with Radiance sensor grids and
// modifiers attached through the model properties. Serialization to HBJSON
// lives in hbjson.go.
//
// =============================================================================

package honeybee

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ladybug-tools/honeybee-3dm/internal/material"
)

// Model is a complete Honeybee model.
type Model struct {
	Identifier     string
	DisplayName    string
	Units          string
	Tolerance      float64
	AngleTolerance float64

	Rooms             []Room
	OrphanedFaces     []Face
	OrphanedShades    []Shade
	OrphanedApertures []Aperture
	OrphanedDoors     []Door
	SensorGrids       []SensorGrid
}

// NewModel creates an empty model with the given metadata. The name is
// cleaned into the identifier; the original text is kept as the display
// name.
func NewModel(name, units string, tolerance, angleTolerance float64) *Model {
	return &Model{
		Identifier:     CleanString(name),
		DisplayName:    name,
		Units:          units,
		Tolerance:      tolerance,
		AngleTolerance: angleTolerance,
	}
}

// Modifiers returns every distinct radiance modifier referenced by the
// model's geometry, in first-use order.
func (m *Model) Modifiers() []*material.Modifier {
	seen := map[string]bool{}
	var out []*material.Modifier
	add := func(mod *material.Modifier) {
		if mod != nil && !seen[mod.Identifier] {
			seen[mod.Identifier] = true
			out = append(out, mod)
		}
	}
	for _, room := range m.Rooms {
		for _, face := range room.Faces {
			add(face.Modifier)
		}
	}
	for _, face := range m.OrphanedFaces {
		add(face.Modifier)
	}
	for _, shade := range m.OrphanedShades {
		add(shade.Modifier)
	}
	for _, ap := range m.OrphanedApertures {
		add(ap.Modifier)
	}
	for _, door := range m.OrphanedDoors {
		add(door.Modifier)
	}
	return out
}

// Write serializes the model and writes it to path. Parent directories are
// created when missing.
func (m *Model) Write(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("honeybee: failed to create folder %s: %w", dir, err)
		}
	}
	data, err := m.HBJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("honeybee: failed to write %s: %w", path, err)
	}
	return nil
}
