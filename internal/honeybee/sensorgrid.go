package honeybee

import (
	"fmt"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
)

// Sensor is a single measurement position with a direction.
type Sensor struct {
	Position  geometry.Point3D
	Direction geometry.Vector3D
}

// SensorGrid is a Radiance sensor grid: one sensor per mesh face, assigned
// to the model's radiance properties.
type SensorGrid struct {
	Identifier  string
	DisplayName string
	Sensors     []Sensor
	Mesh        geometry.Mesh3D
}

// GridFromMesh creates a sensor grid directly from a mesh. Sensors sit at
// the face centroids and point along the face normals. A user who modeled a
// mesh with a particular density gets exactly that density as a grid.
func GridFromMesh(identifier string, mesh geometry.Mesh3D) SensorGrid {
	grid := SensorGrid{
		Identifier:  CleanString(identifier),
		DisplayName: identifier,
		Mesh:        mesh,
	}
	for i := range mesh.Faces {
		// Degenerate faces have no normal to point a sensor along.
		if mesh.FaceArea(i) == 0 {
			continue
		}
		grid.Sensors = append(grid.Sensors, Sensor{
			Position:  mesh.FaceCentroid(i),
			Direction: mesh.FaceNormal(i),
		})
	}
	return grid
}

// GridFromFaces creates a sensor grid by gridding planar faces at the given
// spacing and offset. An error is returned when no face is large enough for
// the requested grid size, so the failure points at the geometry instead of
// silently producing an empty grid.
func GridFromFaces(identifier string, faces []geometry.Face3D, sizeX, sizeY, offset float64) (SensorGrid, error) {
	var merged geometry.Mesh3D
	for _, face := range faces {
		mesh := geometry.GridMesh(face, sizeX, sizeY, offset)
		base := len(merged.Vertices)
		merged.Vertices = append(merged.Vertices, mesh.Vertices...)
		for _, f := range mesh.Faces {
			merged.Faces = append(merged.Faces, geometry.MeshFace{
				A: f.A + base, B: f.B + base, C: f.C + base, D: f.D + base,
			})
		}
	}
	if len(merged.Faces) == 0 {
		return SensorGrid{}, fmt.Errorf(
			"honeybee: no grid cells generated for %q; the geometry may be too small"+
				" for the grid size, try a smaller grid size", identifier)
	}
	return GridFromMesh(identifier, merged), nil
}
