// ============================================================================
// geometry_test.go
// Tests for geometry kinds and their mesh behavior.
// ============================================================================

package rhino

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
)

func TestMeshIsClosed(t *testing.T) {
	t.Parallel()

	// A tetrahedron is closed.
	tetra := Mesh{
		Vertices: []geometry.Point3D{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1},
		},
		Faces: []geometry.MeshFace{
			{A: 0, B: 2, C: 1, D: 1},
			{A: 0, B: 1, C: 3, D: 3},
			{A: 1, B: 2, C: 3, D: 3},
			{A: 2, B: 0, C: 3, D: 3},
		},
	}
	require.True(t, tetra.IsClosed())

	// A single quad is not.
	quad := Mesh{
		Vertices: []geometry.Point3D{{X: 0}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Faces:    []geometry.MeshFace{{A: 0, B: 1, C: 2, D: 3}},
	}
	require.False(t, quad.IsClosed())

	require.False(t, Mesh{}.IsClosed())
}

func TestExtrusionRenderMesh(t *testing.T) {
	t.Parallel()

	box := Extrusion{
		Profile:   []geometry.Point3D{{X: 0}, {X: 2}, {X: 2, Y: 2}, {Y: 2}},
		Direction: geometry.Vector3D{Z: 3},
		Capped:    true,
	}

	mesh := box.RenderMesh()
	require.Len(t, mesh.Vertices, 8)
	// Four side quads plus two triangles per cap.
	require.Len(t, mesh.Faces, 8)
	require.True(t, mesh.IsClosed())

	open := box
	open.Capped = false
	require.False(t, open.IsSolid())
	require.False(t, open.RenderMesh().IsClosed())
	require.Len(t, open.RenderMesh().Faces, 4)
}

func TestBrepIsPlanar(t *testing.T) {
	t.Parallel()

	planar := Brep{Faces: []BrepFace{{Planar: true}, {Planar: true}}}
	require.True(t, planar.IsPlanar())

	curved := Brep{Faces: []BrepFace{{Planar: true}, {Planar: false}}}
	require.False(t, curved.IsPlanar())

	require.False(t, Brep{}.IsPlanar())
}

func TestObjectTypeString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Brep", ObjectTypeBrep.String())
	require.Equal(t, "Extrusion", ObjectTypeExtrusion.String())
	require.Equal(t, "Unknown", ObjectTypeUnknown.String())
}
