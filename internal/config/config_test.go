// ============================================================================
// config_test.go
// Tests for config loading and validation.
// ============================================================================

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/honeybee-3dm/internal/material"
	"github.com/ladybug-tools/honeybee-3dm/internal/rhino"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func gridSize(v float64) *float64 { return &v }

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "config.json", `{
		"sources": {"radiance_material": "sample.mat"},
		"layers": {
			"wall": {
				"radiance_material": "generic_wall",
				"honeybee_face_type": "wall"
			},
			"grid": {
				"exclude_from_rad": true,
				"grid_settings": {"grid_size": 0.5, "grid_offset": 0.75}
			},
			"context": {
				"include_child_layers": false,
				"honeybee_face_object": "shade"
			}
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sample.mat", cfg.MaterialPath())

	wall := cfg.Layers["wall"]
	require.Equal(t, TypeWall, wall.HoneybeeFaceType)
	require.Equal(t, "generic_wall", wall.RadianceMaterial)
	require.True(t, wall.ChildLayers())

	grid := cfg.Layers["grid"]
	require.True(t, grid.ExcludeFromRad)
	size, offset := grid.GridControls()
	require.Equal(t, 0.5, size)
	require.Equal(t, 0.75, offset)

	context := cfg.Layers["context"]
	require.False(t, context.ChildLayers())
	require.Equal(t, ObjectShade, context.HoneybeeFaceObject)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "config.yaml", `
layers:
  roof:
    honeybee_face_type: roof
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, TypeRoof, cfg.Layers["roof"].HoneybeeFaceType)
	require.Empty(t, cfg.MaterialPath())
}

func TestLoadBadJSON(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "config.json", "{broken")
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a valid json file")
}

func TestGridControlsDefaults(t *testing.T) {
	t.Parallel()

	size, offset := LayerConfig{}.GridControls()
	require.Equal(t, 1.0, size)
	require.Equal(t, 0.0, offset)

	size, offset = LayerConfig{GridSettings: &GridSettings{}}.GridControls()
	require.Equal(t, 1.0, size)
	require.Equal(t, 0.0, offset)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no layers",
			cfg:     Config{},
			wantErr: "at least one entry",
		},
		{
			name: "bad sources key",
			cfg: Config{
				Sources: map[string]string{"materials": "x.mat"},
				Layers:  map[string]LayerConfig{"wall": {}},
			},
			wantErr: "invalid sources key",
		},
		{
			name: "bad face object",
			cfg: Config{
				Layers: map[string]LayerConfig{"wall": {HoneybeeFaceObject: "window"}},
			},
			wantErr: "invalid honeybee_face_object",
		},
		{
			name: "bad face type",
			cfg: Config{
				Layers: map[string]LayerConfig{"wall": {HoneybeeFaceType: "ceiling"}},
			},
			wantErr: "invalid honeybee_face_type",
		},
		{
			name: "object and type together",
			cfg: Config{
				Layers: map[string]LayerConfig{"wall": {
					HoneybeeFaceObject: ObjectShade,
					HoneybeeFaceType:   TypeWall,
				}},
			},
			wantErr: "both honeybee_face_object and honeybee_face_type",
		},
		{
			name: "negative grid size",
			cfg: Config{
				Layers: map[string]LayerConfig{"grid": {
					GridSettings: &GridSettings{GridSize: gridSize(-1)},
				}},
			},
			wantErr: "grid_size greater than 0",
		},
		{
			name: "zero grid size",
			cfg: Config{
				Layers: map[string]LayerConfig{"grid": {
					GridSettings: &GridSettings{GridSize: gridSize(0)},
				}},
			},
			wantErr: "grid_size greater than 0",
		},
		{
			name: "material without source",
			cfg: Config{
				Layers: map[string]LayerConfig{"wall": {RadianceMaterial: "generic_wall"}},
			},
			wantErr: "no radiance_material path",
		},
		{
			name: "valid",
			cfg: Config{
				Sources: map[string]string{SourceRadianceMaterial: "x.mat"},
				Layers: map[string]LayerConfig{"wall": {
					RadianceMaterial: "generic_wall",
					HoneybeeFaceType: TypeWall,
				}},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCheckLayers(t *testing.T) {
	t.Parallel()

	file := &rhino.File{Layers: []rhino.Layer{
		{Name: "wall", Index: 0},
		{Name: "roof", Index: 1},
	}}

	good := Config{Layers: map[string]LayerConfig{"wall": {}}}
	require.NoError(t, good.CheckLayers(file))

	bad := Config{Layers: map[string]LayerConfig{"basement": {}}}
	err := bad.CheckLayers(file)
	require.Error(t, err)
	require.Contains(t, err.Error(), "basement")
}

func TestCheckMaterials(t *testing.T) {
	t.Parallel()

	table := material.Table{
		"generic_wall": &material.Modifier{Type: material.Plastic, Identifier: "generic_wall"},
	}

	good := Config{Layers: map[string]LayerConfig{"wall": {RadianceMaterial: "generic_wall"}}}
	require.NoError(t, good.CheckMaterials(table))

	bad := Config{Layers: map[string]LayerConfig{"wall": {RadianceMaterial: "missing"}}}
	err := bad.CheckMaterials(table)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing")
}
