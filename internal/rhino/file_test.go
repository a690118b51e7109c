// ============================================================================
// file_test.go
// Tests for the in-memory file model and its lookups.
// ============================================================================

package rhino

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayerPathNames(t *testing.T) {
	t.Parallel()

	nested := Layer{Name: "interior", FullPath: "wall::interior"}
	require.Equal(t, []string{"wall", "interior"}, nested.PathNames())

	top := Layer{Name: "wall"}
	require.Equal(t, []string{"wall"}, top.PathNames())
}

func TestLayerByIndex(t *testing.T) {
	t.Parallel()

	f := sampleFile()

	layer, ok := f.LayerByIndex(2)
	require.True(t, ok)
	require.Equal(t, "interior", layer.Name)

	_, ok = f.LayerByIndex(99)
	require.False(t, ok)
}

func TestMaterialByIndex(t *testing.T) {
	t.Parallel()

	f := sampleFile()

	mat, ok := f.MaterialByIndex(0)
	require.True(t, ok)
	require.Equal(t, "generic wall", mat.Name)

	_, ok = f.MaterialByIndex(-1)
	require.False(t, ok)
	_, ok = f.MaterialByIndex(5)
	require.False(t, ok)
}

func TestCheckUnits(t *testing.T) {
	t.Parallel()

	f := sampleFile()
	require.NoError(t, f.CheckUnits())

	f.Settings.UnitSystem = UnitMiles
	err := f.CheckUnits()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not supported")
}

func TestUnitSystemString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Meters", UnitMeters.String())
	require.Equal(t, "Millimeters", UnitMillimeters.String())
	require.Equal(t, "None", UnitNone.String())
}
