// =============================================================================
// Honeybee 3DM - Geometry Kernel: Planar Faces
// =============================================================================
//
// Face3D is the unit of translation: every Honeybee Face, Shade, Aperture and
// Door carries exactly one Face3D, and Rooms carry one per polyface face. A
// Face3D is a planar boundary loop with optional hole loops. Normals follow
// the winding of the boundary (Newell's method), which is how face types are
// later inferred for untyped geometry.
//
// =============================================================================

package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateFace is returned when a boundary has fewer than three distinct
// vertices after duplicate removal.
var ErrDegenerateFace = errors.New("geometry: face boundary has fewer than 3 distinct vertices")

// Face3D is a planar face defined by a boundary loop and optional holes.
type Face3D struct {
	Boundary []Point3D
	Holes    [][]Point3D
}

// NewFace3D creates a face from a boundary loop. The boundary is used as
// given; callers remove duplicate vertices first when the loop comes from
// joined segments.
func NewFace3D(boundary []Point3D, holes ...[]Point3D) (Face3D, error) {
	if len(boundary) < 3 {
		return Face3D{}, ErrDegenerateFace
	}
	return Face3D{Boundary: boundary, Holes: holes}, nil
}

// Normal returns the unit normal of the face computed with Newell's method
// over the boundary loop.
func (f Face3D) Normal() Vector3D {
	var n Vector3D
	for i, cur := range f.Boundary {
		next := f.Boundary[(i+1)%len(f.Boundary)]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n.Normalize()
}

// Area returns the face area with hole areas subtracted.
func (f Face3D) Area() float64 {
	area := loopArea(f.Boundary)
	for _, hole := range f.Holes {
		area -= loopArea(hole)
	}
	if area < 0 {
		return 0
	}
	return area
}

// Centroid returns the average of the boundary vertices. For the convex-ish
// faces produced by meshing this is close enough to the true area centroid
// for boundary-condition and gridding decisions.
func (f Face3D) Centroid() Point3D {
	var c Point3D
	for _, pt := range f.Boundary {
		c.X += pt.X
		c.Y += pt.Y
		c.Z += pt.Z
	}
	n := float64(len(f.Boundary))
	return Point3D{c.X / n, c.Y / n, c.Z / n}
}

// Max returns the component-wise maximum of the boundary vertices.
func (f Face3D) Max() Point3D {
	m := f.Boundary[0]
	for _, pt := range f.Boundary[1:] {
		m.X = math.Max(m.X, pt.X)
		m.Y = math.Max(m.Y, pt.Y)
		m.Z = math.Max(m.Z, pt.Z)
	}
	return m
}

// IsPointInside reports whether a point lies inside the boundary and outside
// every hole, after projection onto the face plane.
func (f Face3D) IsPointInside(pt Point3D) bool {
	u, v := f.planeAxes()
	origin := f.Boundary[0]
	px, py := project(pt, origin, u, v)
	if !pointInLoop(px, py, projectLoop(f.Boundary, origin, u, v)) {
		return false
	}
	for _, hole := range f.Holes {
		if pointInLoop(px, py, projectLoop(hole, origin, u, v)) {
			return false
		}
	}
	return true
}

// planeAxes returns two orthonormal in-plane axes for the face.
func (f Face3D) planeAxes() (Vector3D, Vector3D) {
	n := f.Normal()
	// Pick a reference axis that is not parallel to the normal.
	ref := Vector3D{X: 1}
	if math.Abs(n.X) > 0.9 {
		ref = Vector3D{Y: 1}
	}
	u := n.Cross(ref).Normalize()
	v := n.Cross(u).Normalize()
	return u, v
}

func project(pt, origin Point3D, u, v Vector3D) (float64, float64) {
	d := pt.Sub(origin)
	return d.Dot(u), d.Dot(v)
}

func projectLoop(loop []Point3D, origin Point3D, u, v Vector3D) [][2]float64 {
	out := make([][2]float64, len(loop))
	for i, pt := range loop {
		x, y := project(pt, origin, u, v)
		out[i] = [2]float64{x, y}
	}
	return out
}

// pointInLoop is a standard even-odd ray cast in the projected plane.
func pointInLoop(x, y float64, loop [][2]float64) bool {
	inside := false
	j := len(loop) - 1
	for i := 0; i < len(loop); i++ {
		xi, yi := loop[i][0], loop[i][1]
		xj, yj := loop[j][0], loop[j][1]
		if (yi > y) != (yj > y) &&
			x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
		j = i
	}
	return inside
}

// loopArea returns the area of a closed planar loop using the cross-product
// sum, which is valid for non-convex loops.
func loopArea(loop []Point3D) float64 {
	if len(loop) < 3 {
		return 0
	}
	var total Vector3D
	origin := loop[0]
	for i := 1; i < len(loop)-1; i++ {
		a := loop[i].Sub(origin)
		b := loop[i+1].Sub(origin)
		total = Vector3D{
			X: total.X + (a.Y*b.Z - a.Z*b.Y),
			Y: total.Y + (a.Z*b.X - a.X*b.Z),
			Z: total.Z + (a.X*b.Y - a.Y*b.X),
		}
	}
	return total.Length() / 2
}
