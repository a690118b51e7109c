// =============================================================================
// Honeybee 3DM - Rhino File Model
// =============================================================================
//
// In-memory model of the parts of a Rhino 3dm file the translation reads:
// file settings (units and tolerances), the layer table, the render material
// table, and the object table. Geometry is carried as the render meshes and
// edge data stored in the file; the NURBS surfaces themselves are never
// evaluated.
//
// The binary encoding lives in chunk.go, read.go and write.go.
//
// =============================================================================

package rhino

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UnitSystem identifies the model unit of a 3dm file.
type UnitSystem uint8

const (
	UnitNone UnitSystem = iota
	UnitMillimeters
	UnitCentimeters
	UnitMeters
	UnitInches
	UnitFeet
	UnitMiles
	UnitMicrons
)

// String returns the unit name as it appears in Honeybee model metadata.
func (u UnitSystem) String() string {
	switch u {
	case UnitMillimeters:
		return "Millimeters"
	case UnitCentimeters:
		return "Centimeters"
	case UnitMeters:
		return "Meters"
	case UnitInches:
		return "Inches"
	case UnitFeet:
		return "Feet"
	case UnitMiles:
		return "Miles"
	case UnitMicrons:
		return "Microns"
	default:
		return "None"
	}
}

// Settings holds the file-wide model settings.
type Settings struct {
	UnitSystem            UnitSystem
	AbsoluteTolerance     float64
	AngleToleranceDegrees float64
}

// Layer is one entry of the layer table. FullPath uses "::" to separate
// parent and child layer names, the way Rhino reports nested layers.
type Layer struct {
	Name                string
	FullPath            string
	Index               int32
	ParentIndex         int32
	Visible             bool
	RenderMaterialIndex int32
}

// PathNames returns the layer names along the full path, parent first.
func (l Layer) PathNames() []string {
	if l.FullPath == "" {
		return []string{l.Name}
	}
	return strings.Split(l.FullPath, "::")
}

// Material is one entry of the render material table.
type Material struct {
	Name string
	R    uint8
	G    uint8
	B    uint8
}

// Attributes carries the non-geometric properties of an object.
type Attributes struct {
	ID         uuid.UUID
	Name       string
	LayerIndex int32
	Visible    bool
}

// Object pairs geometry with its attributes.
type Object struct {
	Attributes Attributes
	Geometry   Geometry
}

// File is a parsed 3dm file.
type File struct {
	Settings  Settings
	Layers    []Layer
	Materials []Material
	Objects   []Object
}

// LayerByIndex returns the layer with the given table index.
func (f *File) LayerByIndex(index int32) (Layer, bool) {
	for _, layer := range f.Layers {
		if layer.Index == index {
			return layer, true
		}
	}
	return Layer{}, false
}

// LayerNames returns every layer name in table order.
func (f *File) LayerNames() []string {
	names := make([]string, len(f.Layers))
	for i, layer := range f.Layers {
		names[i] = layer.Name
	}
	return names
}

// MaterialByIndex returns the render material with the given table index, or
// false when the index is -1 or out of range.
func (f *File) MaterialByIndex(index int32) (Material, bool) {
	if index < 0 || int(index) >= len(f.Materials) {
		return Material{}, false
	}
	return f.Materials[index], true
}

// SupportedUnits are the model units the translation accepts.
var SupportedUnits = []UnitSystem{
	UnitMeters, UnitMillimeters, UnitFeet, UnitInches, UnitCentimeters,
}

// CheckUnits returns an error when the file's unit system is not supported.
func (f *File) CheckUnits() error {
	for _, u := range SupportedUnits {
		if f.Settings.UnitSystem == u {
			return nil
		}
	}
	names := make([]string, len(SupportedUnits))
	for i, u := range SupportedUnits {
		names[i] = u.String()
	}
	return fmt.Errorf("rhino: unit system %q is not supported, supported units are %s",
		f.Settings.UnitSystem, strings.Join(names, ", "))
}
