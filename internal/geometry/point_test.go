// ============================================================================
// point_test.go
// Tests for points, vectors and vertex de-duplication.
// ============================================================================

package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointIsEquivalent(t *testing.T) {
	t.Parallel()

	a := Point3D{X: 1, Y: 2, Z: 3}
	b := Point3D{X: 1.0005, Y: 2, Z: 3}

	require.True(t, a.IsEquivalent(b, 0.001))
	require.False(t, a.IsEquivalent(b, 0.0001))
}

func TestVectorOps(t *testing.T) {
	t.Parallel()

	v := Vector3D{X: 3, Y: 4, Z: 0}
	require.InDelta(t, 5, v.Length(), 1e-9)

	n := v.Normalize()
	require.InDelta(t, 1, n.Length(), 1e-9)

	x := Vector3D{X: 1}
	y := Vector3D{Y: 1}
	require.Equal(t, Vector3D{Z: 1}, x.Cross(y))
	require.InDelta(t, 0, x.Dot(y), 1e-9)

	p := Point3D{X: 1, Y: 1, Z: 1}
	q := Point3D{X: 0, Y: 0, Z: 1}
	require.Equal(t, Vector3D{X: 1, Y: 1, Z: 0}, p.Sub(q))
	require.Equal(t, Point3D{X: 2, Y: 1, Z: 1}, p.Add(x))
}

func TestRemoveDupVertices(t *testing.T) {
	t.Parallel()

	verts := []Point3D{
		{X: 0, Y: 0},
		{X: 0, Y: 0.00001},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: 0, Y: 0.00002},
	}

	out := RemoveDupVertices(verts, 0.001)
	require.Len(t, out, 4)
	require.True(t, out[0].IsEquivalent(Point3D{X: 0, Y: 0}, 0.001))

	// Vertices already distinct stay untouched.
	square := []Point3D{{X: 0}, {X: 1}, {X: 1, Y: 1}, {Y: 1}}
	require.Equal(t, square, RemoveDupVertices(square, 0.001))
}
