// ============================================================================
// togeometry_test.go
// Tests for Rhino object to Face3D conversion.
// ============================================================================

package converter

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
	"github.com/ladybug-tools/honeybee-3dm/internal/rhino"
)

const tol = 0.001

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pt(x, y, z float64) geometry.Point3D {
	return geometry.Point3D{X: x, Y: y, Z: z}
}

// quadMesh is a single-quad mesh over the given corners.
func quadMesh(a, b, c, d geometry.Point3D) rhino.Mesh {
	return rhino.Mesh{
		Vertices: []geometry.Point3D{a, b, c, d},
		Faces:    []geometry.MeshFace{{A: 0, B: 1, C: 2, D: 3}},
	}
}

// planarBrep is a single-face planar brep over the given corners, with its
// four linear edges.
func planarBrep(a, b, c, d geometry.Point3D) rhino.Brep {
	return rhino.Brep{
		Faces: []rhino.BrepFace{{Mesh: quadMesh(a, b, c, d), Planar: true}},
		Edges: []rhino.BrepEdge{
			{Start: a, End: b, Linear: true},
			{Start: b, End: c, Linear: true},
			{Start: c, End: d, Linear: true},
			{Start: d, End: a, Linear: true},
		},
	}
}

func objectWith(geo rhino.Geometry) rhino.Object {
	return rhino.Object{
		Attributes: rhino.Attributes{ID: uuid.New(), Visible: true},
		Geometry:   geo,
	}
}

func TestToFace3DPlanarBrep(t *testing.T) {
	t.Parallel()

	brep := planarBrep(pt(0, 0, 0), pt(2, 0, 0), pt(2, 0, 3), pt(0, 0, 3))

	faces, err := ToFace3D(objectWith(brep), tol, false, quietLog())
	require.NoError(t, err)
	require.Len(t, faces, 1)
	require.Len(t, faces[0].Boundary, 4)
	require.InDelta(t, 6, faces[0].Area(), 1e-9)
}

func TestToFace3DPlanarBrepWithHole(t *testing.T) {
	t.Parallel()

	// A wall with a window opening: the brep carries two edge loops, the
	// mesh has more than four vertices.
	outer := []geometry.Point3D{pt(0, 0, 0), pt(4, 0, 0), pt(4, 0, 4), pt(0, 0, 4)}
	inner := []geometry.Point3D{pt(1, 0, 1), pt(3, 0, 1), pt(3, 0, 3), pt(1, 0, 3)}

	var edges []rhino.BrepEdge
	for i := range outer {
		edges = append(edges,
			rhino.BrepEdge{Start: outer[i], End: outer[(i+1)%4], Linear: true},
			rhino.BrepEdge{Start: inner[i], End: inner[(i+1)%4], Linear: true},
		)
	}
	brep := rhino.Brep{
		Faces: []rhino.BrepFace{{
			Mesh: rhino.Mesh{
				Vertices: append(append([]geometry.Point3D{}, outer...), inner...),
				Faces: []geometry.MeshFace{
					{A: 0, B: 1, C: 5, D: 4},
					{A: 1, B: 2, C: 6, D: 5},
					{A: 2, B: 3, C: 7, D: 6},
					{A: 3, B: 0, C: 4, D: 7},
				},
			},
			Planar: true,
		}},
		Edges: edges,
	}

	faces, err := ToFace3D(objectWith(brep), tol, false, quietLog())
	require.NoError(t, err)
	require.Len(t, faces, 1)
	require.Len(t, faces[0].Boundary, 4)
	require.Len(t, faces[0].Holes, 1)
	require.InDelta(t, 12, faces[0].Area(), 1e-9)
}

func TestToFace3DHoleTouchingBoundary(t *testing.T) {
	t.Parallel()

	// The inner loop shares a corner with the outer loop, so the face
	// cannot carry it as a hole and the mesh faces are used instead.
	outer := []geometry.Point3D{pt(0, 0, 0), pt(4, 0, 0), pt(4, 4, 0), pt(0, 4, 0)}
	inner := []geometry.Point3D{pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 0)}

	var edges []rhino.BrepEdge
	for i := range outer {
		edges = append(edges,
			rhino.BrepEdge{Start: outer[i], End: outer[(i+1)%4], Linear: true},
			rhino.BrepEdge{Start: inner[i], End: inner[(i+1)%4], Linear: true},
		)
	}
	mesh := rhino.Mesh{
		Vertices: []geometry.Point3D{pt(0, 0, 0), pt(4, 0, 0), pt(4, 4, 0), pt(0, 4, 0), pt(1, 1, 0)},
		Faces: []geometry.MeshFace{
			{A: 0, B: 1, C: 4, D: 4},
			{A: 1, B: 2, C: 4, D: 4},
			{A: 2, B: 3, C: 4, D: 4},
		},
	}
	brep := rhino.Brep{
		Faces: []rhino.BrepFace{{Mesh: mesh, Planar: true}},
		Edges: edges,
	}

	faces, err := ToFace3D(objectWith(brep), tol, false, quietLog())
	require.NoError(t, err)
	// The raw mesh triangles come through.
	require.Len(t, faces, 3)
}

func TestToFace3DCurvedEdgeFallsBackToMesh(t *testing.T) {
	t.Parallel()

	brep := planarBrep(pt(0, 0, 0), pt(2, 0, 0), pt(2, 2, 0), pt(0, 2, 0))
	brep.Edges[0].Linear = false
	// Enough vertices that the edge path would otherwise be taken.
	brep.Faces[0].Mesh.Vertices = append(brep.Faces[0].Mesh.Vertices, pt(1, 1, 0))

	faces, err := ToFace3D(objectWith(brep), tol, false, quietLog())
	require.NoError(t, err)
	require.Len(t, faces, 1)
	require.Len(t, faces[0].Boundary, 4)
}

func TestToFace3DSolidBrep(t *testing.T) {
	t.Parallel()

	faces, err := ToFace3D(objectWith(boxBrep(2, 2, 3)), tol, false, quietLog())
	require.NoError(t, err)
	require.Len(t, faces, 6)
}

func TestToFace3DExtrusion(t *testing.T) {
	t.Parallel()

	box := rhino.Extrusion{
		Profile:   []geometry.Point3D{pt(0, 0, 0), pt(2, 0, 0), pt(2, 2, 0), pt(0, 2, 0)},
		Direction: geometry.Vector3D{Z: 3},
		Capped:    true,
	}

	faces, err := ToFace3D(objectWith(box), tol, false, quietLog())
	require.NoError(t, err)
	// Four walls plus the two merged caps.
	require.Len(t, faces, 6)
}

func TestToFace3DMesh(t *testing.T) {
	t.Parallel()

	mesh := quadMesh(pt(0, 0, 0), pt(1, 0, 0), pt(1, 1, 0), pt(0, 1, 0))

	faces, err := ToFace3D(objectWith(mesh), tol, false, quietLog())
	require.NoError(t, err)
	require.Len(t, faces, 1)
}

func TestToFace3DUnsupported(t *testing.T) {
	t.Parallel()

	point := objectWith(rhino.Point{Location: pt(0, 0, 0)})

	faces, err := ToFace3D(point, tol, false, quietLog())
	require.NoError(t, err)
	require.Nil(t, faces)

	_, err = ToFace3D(point, tol, true, quietLog())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported object type")
}

// boxBrep is a closed brep box with one planar quad mesh per side.
func boxBrep(w, d, h float64) rhino.Brep {
	corners := []geometry.Point3D{
		pt(0, 0, 0), pt(w, 0, 0), pt(w, d, 0), pt(0, d, 0),
		pt(0, 0, h), pt(w, 0, h), pt(w, d, h), pt(0, d, h),
	}
	side := func(a, b, c, d int) rhino.BrepFace {
		return rhino.BrepFace{
			Mesh:   quadMesh(corners[a], corners[b], corners[c], corners[d]),
			Planar: true,
		}
	}
	return rhino.Brep{
		Faces: []rhino.BrepFace{
			side(0, 3, 2, 1),
			side(4, 5, 6, 7),
			side(0, 1, 5, 4),
			side(1, 2, 6, 5),
			side(2, 3, 7, 6),
			side(3, 0, 4, 7),
		},
		Solid: true,
	}
}
