package honeybee

import (
	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
	"github.com/ladybug-tools/honeybee-3dm/internal/material"
)

// Face is a Honeybee Face: one planar surface with a thermal face type and a
// boundary condition. Faces created outside a Room are "orphaned" in the
// model.
type Face struct {
	Identifier        string
	DisplayName       string
	Geometry          geometry.Face3D
	Type              FaceType
	BoundaryCondition BoundaryCondition
	Modifier          *material.Modifier
}

// NewFace creates a face, inferring the boundary condition from geometry.
func NewFace(identifier string, geo geometry.Face3D, faceType FaceType, tolerance float64) Face {
	return Face{
		Identifier:        CleanString(identifier),
		DisplayName:       identifier,
		Geometry:          geo,
		Type:              faceType,
		BoundaryCondition: ConditionFromGeometry(geo, tolerance),
	}
}

// Shade is context geometry that blocks sun and light but has no thermal
// properties of its own.
type Shade struct {
	Identifier  string
	DisplayName string
	Geometry    geometry.Face3D
	Modifier    *material.Modifier
}

// NewShade creates a shade.
func NewShade(identifier string, geo geometry.Face3D) Shade {
	return Shade{Identifier: CleanString(identifier), DisplayName: identifier, Geometry: geo}
}

// Aperture is a transparent opening (window or skylight).
type Aperture struct {
	Identifier  string
	DisplayName string
	Geometry    geometry.Face3D
	Modifier    *material.Modifier
}

// NewAperture creates an aperture.
func NewAperture(identifier string, geo geometry.Face3D) Aperture {
	return Aperture{Identifier: CleanString(identifier), DisplayName: identifier, Geometry: geo}
}

// Door is an opaque opening.
type Door struct {
	Identifier  string
	DisplayName string
	Geometry    geometry.Face3D
	Modifier    *material.Modifier
}

// NewDoor creates a door.
func NewDoor(identifier string, geo geometry.Face3D) Door {
	return Door{Identifier: CleanString(identifier), DisplayName: identifier, Geometry: geo}
}
