// ============================================================================
// model_test.go
// Tests for model assembly and HBJSON output.
// ============================================================================

package honeybee

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
	"github.com/ladybug-tools/honeybee-3dm/internal/material"
)

func horizontalFace(t *testing.T, z float64) geometry.Face3D {
	t.Helper()
	face, err := geometry.NewFace3D([]geometry.Point3D{
		{X: 0, Y: 0, Z: z}, {X: 2, Y: 0, Z: z}, {X: 2, Y: 2, Z: z}, {X: 0, Y: 2, Z: z},
	})
	require.NoError(t, err)
	return face
}

func boxFaces(t *testing.T) []geometry.Face3D {
	t.Helper()
	mk := func(pts ...geometry.Point3D) geometry.Face3D {
		face, err := geometry.NewFace3D(pts)
		require.NoError(t, err)
		return face
	}
	p := func(x, y, z float64) geometry.Point3D { return geometry.Point3D{X: x, Y: y, Z: z} }
	return []geometry.Face3D{
		// Floor winds downward, ceiling upward, walls outward.
		mk(p(0, 0, 0), p(0, 2, 0), p(2, 2, 0), p(2, 0, 0)),
		mk(p(0, 0, 3), p(2, 0, 3), p(2, 2, 3), p(0, 2, 3)),
		mk(p(0, 0, 0), p(2, 0, 0), p(2, 0, 3), p(0, 0, 3)),
		mk(p(2, 0, 0), p(2, 2, 0), p(2, 2, 3), p(2, 0, 3)),
		mk(p(2, 2, 0), p(0, 2, 0), p(0, 2, 3), p(2, 2, 3)),
		mk(p(0, 2, 0), p(0, 0, 0), p(0, 0, 3), p(0, 2, 3)),
	}
}

func TestRoomFromFaces(t *testing.T) {
	t.Parallel()

	room, err := RoomFromFaces("Room_1", boxFaces(t), 0.001)
	require.NoError(t, err)
	require.Len(t, room.Faces, 6)

	types := map[FaceType]int{}
	for _, face := range room.Faces {
		types[face.Type]++
	}
	require.Equal(t, 1, types[FaceTypeFloor])
	require.Equal(t, 1, types[FaceTypeRoofCeiling])
	require.Equal(t, 4, types[FaceTypeWall])
}

func TestRoomFromFacesTooFew(t *testing.T) {
	t.Parallel()

	_, err := RoomFromFaces("Room_1", boxFaces(t)[:3], 0.001)
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least 4 faces")
}

func TestGridFromFaces(t *testing.T) {
	t.Parallel()

	grid, err := GridFromFaces("grid_1", []geometry.Face3D{horizontalFace(t, 0)}, 1, 1, 0.5)
	require.NoError(t, err)
	require.Len(t, grid.Sensors, 4)
	for _, s := range grid.Sensors {
		require.InDelta(t, 0.5, s.Position.Z, 1e-9)
		require.InDelta(t, 1, s.Direction.Z, 1e-9)
	}

	_, err = GridFromFaces("grid_2", nil, 1, 1, 0)
	require.Error(t, err)
	require.Contains(t, err.Error(), "too small for the grid size")
}

func TestGridFromMeshSkipsDegenerateFaces(t *testing.T) {
	t.Parallel()

	mesh := geometry.Mesh3D{
		Vertices: []geometry.Point3D{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Faces: []geometry.MeshFace{
			{A: 0, B: 1, C: 2, D: 3},
			// Zero-area face collapsed onto a single vertex.
			{A: 0, B: 0, C: 0, D: 0},
		},
	}

	grid := GridFromMesh("grid_1", mesh)
	require.Len(t, grid.Sensors, 1)
	require.Len(t, grid.Mesh.Faces, 2)
}

func TestModelModifiers(t *testing.T) {
	t.Parallel()

	wall := &material.Modifier{Type: material.Plastic, Identifier: "generic_wall"}
	glass := &material.Modifier{Type: material.Glass, Identifier: "generic_glass"}

	m := NewModel("sample", "Meters", 0.001, 1.0)
	face := NewFace("f1", horizontalFace(t, 0), FaceTypeFloor, 0.001)
	face.Modifier = wall
	m.OrphanedFaces = append(m.OrphanedFaces, face)

	ap := NewAperture("a1", horizontalFace(t, 1))
	ap.Modifier = glass
	m.OrphanedApertures = append(m.OrphanedApertures, ap)

	// Same modifier twice counts once.
	other := NewFace("f2", horizontalFace(t, 2), FaceTypeRoofCeiling, 0.001)
	other.Modifier = wall
	m.OrphanedFaces = append(m.OrphanedFaces, other)

	mods := m.Modifiers()
	require.Len(t, mods, 2)
	require.Equal(t, "generic_wall", mods[0].Identifier)
	require.Equal(t, "generic_glass", mods[1].Identifier)
}

func TestModelHBJSON(t *testing.T) {
	t.Parallel()

	m := NewModel("sample model", "Meters", 0.001, 1.0)
	room, err := RoomFromFaces("Room_1", boxFaces(t), 0.001)
	require.NoError(t, err)
	m.Rooms = append(m.Rooms, room)

	shade := NewShade("context", horizontalFace(t, 4))
	shade.Modifier = &material.Modifier{Type: material.Plastic, Identifier: "shade_mat"}
	m.OrphanedShades = append(m.OrphanedShades, shade)

	grid, err := GridFromFaces("grid_1", []geometry.Face3D{horizontalFace(t, 0)}, 1, 1, 0)
	require.NoError(t, err)
	m.SensorGrids = append(m.SensorGrids, grid)

	data, err := m.HBJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	require.Equal(t, "Model", doc["type"])
	require.Equal(t, "sample_model", doc["identifier"])
	require.Equal(t, "sample model", doc["display_name"])
	require.Equal(t, "1.49.0", doc["version"])
	require.Equal(t, "Meters", doc["units"])

	rooms := doc["rooms"].([]any)
	require.Len(t, rooms, 1)
	faces := rooms[0].(map[string]any)["faces"].([]any)
	require.Len(t, faces, 6)
	first := faces[0].(map[string]any)
	require.Equal(t, "Face", first["type"])
	require.Contains(t, first, "boundary_condition")

	shades := doc["orphaned_shades"].([]any)
	require.Len(t, shades, 1)
	props := shades[0].(map[string]any)["properties"].(map[string]any)
	radiance := props["radiance"].(map[string]any)
	require.Equal(t, "shade_mat", radiance["modifier"])

	modelProps := doc["properties"].(map[string]any)
	modelRad := modelProps["radiance"].(map[string]any)
	require.Equal(t, "ModelRadiancePropertiesAbridged", modelRad["type"])
	grids := modelRad["sensor_grids"].([]any)
	require.Len(t, grids, 1)
	sensors := grids[0].(map[string]any)["sensors"].([]any)
	require.Len(t, sensors, 4)
	mods := modelRad["modifiers"].([]any)
	require.Len(t, mods, 1)
}

func TestWriteModel(t *testing.T) {
	t.Parallel()

	m := NewModel("sample", "Meters", 0.001, 1.0)
	path := filepath.Join(t.TempDir(), "out", "nested", "unnamed.hbjson")

	require.NoError(t, m.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Equal(t, "sample", doc["identifier"])
}
