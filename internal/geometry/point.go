// =============================================================================
// Honeybee 3DM - Geometry Kernel: Points and Vectors
// =============================================================================
//
// Planar geometry primitives used while translating Rhino geometry into
// Honeybee faces. All coordinates are float64 in the model unit system of the
// source 3dm file; equality is always tolerance-based because the coordinates
// come from meshed CAD data, never from exact arithmetic.
//
// =============================================================================

package geometry

import "math"

// Point3D is a point in model space.
type Point3D struct {
	X, Y, Z float64
}

// Vector3D is a direction or displacement in model space.
type Vector3D struct {
	X, Y, Z float64
}

// IsEquivalent reports whether two points are equal within tolerance.
func (p Point3D) IsEquivalent(other Point3D, tolerance float64) bool {
	return math.Abs(p.X-other.X) <= tolerance &&
		math.Abs(p.Y-other.Y) <= tolerance &&
		math.Abs(p.Z-other.Z) <= tolerance
}

// DistanceTo returns the euclidean distance between two points.
func (p Point3D) DistanceTo(other Point3D) float64 {
	dx, dy, dz := other.X-p.X, other.Y-p.Y, other.Z-p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Add returns the point moved by the vector.
func (p Point3D) Add(v Vector3D) Point3D {
	return Point3D{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from other to p.
func (p Point3D) Sub(other Point3D) Vector3D {
	return Vector3D{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Length returns the vector magnitude.
func (v Vector3D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit-length copy of the vector. The zero vector is
// returned unchanged.
func (v Vector3D) Normalize() Vector3D {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vector3D{v.X / l, v.Y / l, v.Z / l}
}

// Sub returns the vector difference v - other.
func (v Vector3D) Sub(other Vector3D) Vector3D {
	return Vector3D{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns the vector multiplied by f.
func (v Vector3D) Scale(f float64) Vector3D {
	return Vector3D{v.X * f, v.Y * f, v.Z * f}
}

// Dot returns the dot product of two vectors.
func (v Vector3D) Dot(other Vector3D) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vector3D) Cross(other Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// RemoveDupVertices drops consecutive vertices that are equal within
// tolerance, including the wrap-around pair at the start and end of a closed
// loop.
func RemoveDupVertices(vertices []Point3D, tolerance float64) []Point3D {
	if len(vertices) == 0 {
		return nil
	}
	out := make([]Point3D, 0, len(vertices))
	for i, pt := range vertices {
		prev := vertices[(i+len(vertices)-1)%len(vertices)]
		if i == 0 || !pt.IsEquivalent(prev, tolerance) {
			out = append(out, pt)
		}
	}
	// The first vertex may still duplicate the last one.
	if len(out) > 1 && out[0].IsEquivalent(out[len(out)-1], tolerance) {
		out = out[:len(out)-1]
	}
	return out
}
