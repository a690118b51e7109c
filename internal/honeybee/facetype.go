package honeybee

import (
	"math"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
)

// FaceType classifies a Face within its room or as orphaned geometry.
type FaceType string

const (
	FaceTypeWall        FaceType = "Wall"
	FaceTypeRoofCeiling FaceType = "RoofCeiling"
	FaceTypeFloor       FaceType = "Floor"
	FaceTypeAirBoundary FaceType = "AirBoundary"
)

// Angles from the upward vertical, in degrees, that bound the RoofCeiling
// and Floor classifications. Between the two a face is a Wall.
const (
	roofAngle  = 60.0
	floorAngle = 130.0
)

// TypeFromNormal infers a face type from the face normal, matching the way
// Honeybee assigns types when building rooms from closed volumes.
func TypeFromNormal(normal geometry.Vector3D) FaceType {
	up := geometry.Vector3D{Z: 1}
	cos := normal.Normalize().Dot(up)
	angle := math.Acos(math.Max(-1, math.Min(1, cos))) * 180 / math.Pi
	switch {
	case angle <= roofAngle:
		return FaceTypeRoofCeiling
	case angle >= floorAngle:
		return FaceTypeFloor
	default:
		return FaceTypeWall
	}
}

// BoundaryCondition names the outside condition of a face.
type BoundaryCondition string

const (
	BoundaryOutdoors BoundaryCondition = "Outdoors"
	BoundaryGround   BoundaryCondition = "Ground"
)

// ConditionFromGeometry assigns Ground to faces that sit entirely at or
// below the z=0 plane and Outdoors to everything else, which is Honeybee's
// default when no condition is supplied.
func ConditionFromGeometry(face geometry.Face3D, tolerance float64) BoundaryCondition {
	if face.Max().Z > tolerance {
		return BoundaryOutdoors
	}
	return BoundaryGround
}
