// ============================================================================
// material_test.go
// Tests for the Radiance .mat parser.
// ============================================================================

package material

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleMat = `# sample material library

void plastic generic_wall
0
0
5 0.5 0.5 0.5 0.0 0.0

void glass generic_glass
0
0
3 0.6 0.6 0.6

void mirror silver_mirror
0
0
3 0.95 0.95 0.95
`

func TestParse(t *testing.T) {
	t.Parallel()

	table, err := Parse(sampleMat)
	require.NoError(t, err)
	require.Len(t, table, 3)

	wall := table["generic_wall"]
	require.NotNil(t, wall)
	require.Equal(t, Plastic, wall.Type)
	require.Equal(t, []float64{0.5, 0.5, 0.5, 0, 0}, wall.Values)

	glass := table["generic_glass"]
	require.NotNil(t, glass)
	require.Equal(t, Glass, glass.Type)
	require.Equal(t, []float64{0.6, 0.6, 0.6}, glass.Values)
}

func TestParseUnknownType(t *testing.T) {
	t.Parallel()

	_, err := Parse("void granite counter\n0\n0\n3 0.1 0.1 0.1\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown modifier type")
}

func TestParseTruncatedRecord(t *testing.T) {
	t.Parallel()

	_, err := Parse("void plastic generic_wall\n0\n0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "truncated")
}

func TestParseBadValueLine(t *testing.T) {
	t.Parallel()

	_, err := Parse("void plastic generic_wall\n0\n0\n5 0.5 0.5\n")
	require.Error(t, err)
	require.Contains(t, err.Error(), "declares 5 values")
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sample.mat")
	require.NoError(t, os.WriteFile(path, []byte(sampleMat), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table, 3)

	_, err = Load(filepath.Join(t.TempDir(), "absent.mat"))
	require.Error(t, err)
}

func TestModifierHBJSON(t *testing.T) {
	t.Parallel()

	table, err := Parse(sampleMat)
	require.NoError(t, err)

	wall := table["generic_wall"].HBJSON()
	require.Equal(t, "Plastic", wall["type"])
	require.Equal(t, "generic_wall", wall["identifier"])
	require.Equal(t, 0.5, wall["r_reflectance"])
	require.Equal(t, 0.0, wall["roughness"])

	glass := table["generic_glass"].HBJSON()
	require.Equal(t, "Glass", glass["type"])
	require.Equal(t, 0.6, glass["r_transmissivity"])

	mirror := table["silver_mirror"].HBJSON()
	require.Equal(t, "Mirror", mirror["type"])
	require.Equal(t, 0.95, mirror["r_reflectance"])
}
