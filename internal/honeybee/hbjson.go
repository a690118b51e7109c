// =============================================================================
// Honeybee 3DM - HBJSON Serialization
// =============================================================================
//
// Maps the model types onto the honeybee-schema JSON structure. Field names
// and the nesting of the properties objects follow the schema; geometry is
// written as coordinate triples.
//
// =============================================================================

package honeybee

import (
	"encoding/json"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
	"github.com/ladybug-tools/honeybee-3dm/internal/material"
)

// schemaVersion is the honeybee-schema version the output declares.
const schemaVersion = "1.49.0"

type face3DJSON struct {
	Type     string         `json:"type"`
	Boundary [][3]float64   `json:"boundary"`
	Holes    [][][3]float64 `json:"holes,omitempty"`
}

type mesh3DJSON struct {
	Type     string       `json:"type"`
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][]int      `json:"faces"`
}

type boundaryConditionJSON struct {
	Type string `json:"type"`
}

type radiancePropsJSON struct {
	Type     string `json:"type"`
	Modifier string `json:"modifier,omitempty"`
}

type objectPropsJSON struct {
	Type     string             `json:"type"`
	Radiance *radiancePropsJSON `json:"radiance,omitempty"`
}

type faceJSON struct {
	Type              string                `json:"type"`
	Identifier        string                `json:"identifier"`
	DisplayName       string                `json:"display_name,omitempty"`
	FaceType          string                `json:"face_type"`
	Geometry          face3DJSON            `json:"geometry"`
	BoundaryCondition boundaryConditionJSON `json:"boundary_condition"`
	Properties        objectPropsJSON       `json:"properties"`
}

type shadeJSON struct {
	Type        string          `json:"type"`
	Identifier  string          `json:"identifier"`
	DisplayName string          `json:"display_name,omitempty"`
	Geometry    face3DJSON      `json:"geometry"`
	Properties  objectPropsJSON `json:"properties"`
}

type apertureJSON struct {
	Type              string                `json:"type"`
	Identifier        string                `json:"identifier"`
	DisplayName       string                `json:"display_name,omitempty"`
	Geometry          face3DJSON            `json:"geometry"`
	IsOperable        bool                  `json:"is_operable"`
	BoundaryCondition boundaryConditionJSON `json:"boundary_condition"`
	Properties        objectPropsJSON       `json:"properties"`
}

type doorJSON struct {
	Type              string                `json:"type"`
	Identifier        string                `json:"identifier"`
	DisplayName       string                `json:"display_name,omitempty"`
	Geometry          face3DJSON            `json:"geometry"`
	IsGlass           bool                  `json:"is_glass"`
	BoundaryCondition boundaryConditionJSON `json:"boundary_condition"`
	Properties        objectPropsJSON       `json:"properties"`
}

type roomJSON struct {
	Type        string          `json:"type"`
	Identifier  string          `json:"identifier"`
	DisplayName string          `json:"display_name,omitempty"`
	Faces       []faceJSON      `json:"faces"`
	Properties  objectPropsJSON `json:"properties"`
}

type sensorJSON struct {
	Pos [3]float64 `json:"pos"`
	Dir [3]float64 `json:"dir"`
}

type sensorGridJSON struct {
	Type        string       `json:"type"`
	Identifier  string       `json:"identifier"`
	DisplayName string       `json:"display_name,omitempty"`
	Sensors     []sensorJSON `json:"sensors"`
	Mesh        *mesh3DJSON  `json:"mesh,omitempty"`
}

type modelRadianceJSON struct {
	Type        string           `json:"type"`
	SensorGrids []sensorGridJSON `json:"sensor_grids,omitempty"`
	Modifiers   []map[string]any `json:"modifiers,omitempty"`
}

type modelEnergyJSON struct {
	Type string `json:"type"`
}

type modelPropsJSON struct {
	Type     string            `json:"type"`
	Radiance modelRadianceJSON `json:"radiance"`
	Energy   modelEnergyJSON   `json:"energy"`
}

type modelJSON struct {
	Type              string         `json:"type"`
	Identifier        string         `json:"identifier"`
	DisplayName       string         `json:"display_name,omitempty"`
	Version           string         `json:"version"`
	Units             string         `json:"units"`
	Tolerance         float64        `json:"tolerance"`
	AngleTolerance    float64        `json:"angle_tolerance"`
	Rooms             []roomJSON     `json:"rooms,omitempty"`
	OrphanedFaces     []faceJSON     `json:"orphaned_faces,omitempty"`
	OrphanedShades    []shadeJSON    `json:"orphaned_shades,omitempty"`
	OrphanedApertures []apertureJSON `json:"orphaned_apertures,omitempty"`
	OrphanedDoors     []doorJSON     `json:"orphaned_doors,omitempty"`
	Properties        modelPropsJSON `json:"properties"`
}

// HBJSON serializes the model into HBJSON bytes.
func (m *Model) HBJSON() ([]byte, error) {
	out := modelJSON{
		Type:           "Model",
		Identifier:     m.Identifier,
		DisplayName:    m.DisplayName,
		Version:        schemaVersion,
		Units:          m.Units,
		Tolerance:      m.Tolerance,
		AngleTolerance: m.AngleTolerance,
		Properties: modelPropsJSON{
			Type:   "ModelProperties",
			Energy: modelEnergyJSON{Type: "ModelEnergyPropertiesAbridged"},
			Radiance: modelRadianceJSON{
				Type: "ModelRadiancePropertiesAbridged",
			},
		},
	}

	for _, room := range m.Rooms {
		out.Rooms = append(out.Rooms, encodeRoom(room))
	}
	for _, face := range m.OrphanedFaces {
		out.OrphanedFaces = append(out.OrphanedFaces, encodeFace(face))
	}
	for _, shade := range m.OrphanedShades {
		out.OrphanedShades = append(out.OrphanedShades, shadeJSON{
			Type:        "Shade",
			Identifier:  shade.Identifier,
			DisplayName: shade.DisplayName,
			Geometry:    encodeFace3D(shade.Geometry),
			Properties:  encodeProps("ShadePropertiesAbridged", modifierID(shade.Modifier), "ShadeRadiancePropertiesAbridged"),
		})
	}
	for _, ap := range m.OrphanedApertures {
		out.OrphanedApertures = append(out.OrphanedApertures, apertureJSON{
			Type:              "Aperture",
			Identifier:        ap.Identifier,
			DisplayName:       ap.DisplayName,
			Geometry:          encodeFace3D(ap.Geometry),
			BoundaryCondition: boundaryConditionJSON{Type: string(BoundaryOutdoors)},
			Properties:        encodeProps("AperturePropertiesAbridged", modifierID(ap.Modifier), "ApertureRadiancePropertiesAbridged"),
		})
	}
	for _, door := range m.OrphanedDoors {
		out.OrphanedDoors = append(out.OrphanedDoors, doorJSON{
			Type:              "Door",
			Identifier:        door.Identifier,
			DisplayName:       door.DisplayName,
			Geometry:          encodeFace3D(door.Geometry),
			BoundaryCondition: boundaryConditionJSON{Type: string(BoundaryOutdoors)},
			Properties:        encodeProps("DoorPropertiesAbridged", modifierID(door.Modifier), "DoorRadiancePropertiesAbridged"),
		})
	}
	for _, grid := range m.SensorGrids {
		out.Properties.Radiance.SensorGrids = append(
			out.Properties.Radiance.SensorGrids, encodeSensorGrid(grid))
	}
	for _, mod := range m.Modifiers() {
		out.Properties.Radiance.Modifiers = append(
			out.Properties.Radiance.Modifiers, mod.HBJSON())
	}

	return json.Marshal(out)
}

func encodeRoom(room Room) roomJSON {
	out := roomJSON{
		Type:        "Room",
		Identifier:  room.Identifier,
		DisplayName: room.DisplayName,
		Properties:  objectPropsJSON{Type: "RoomPropertiesAbridged"},
	}
	for _, face := range room.Faces {
		out.Faces = append(out.Faces, encodeFace(face))
	}
	return out
}

func encodeFace(face Face) faceJSON {
	return faceJSON{
		Type:              "Face",
		Identifier:        face.Identifier,
		DisplayName:       face.DisplayName,
		FaceType:          string(face.Type),
		Geometry:          encodeFace3D(face.Geometry),
		BoundaryCondition: boundaryConditionJSON{Type: string(face.BoundaryCondition)},
		Properties:        encodeProps("FacePropertiesAbridged", modifierID(face.Modifier), "FaceRadiancePropertiesAbridged"),
	}
}

func encodeFace3D(geo geometry.Face3D) face3DJSON {
	out := face3DJSON{Type: "Face3D", Boundary: encodeLoop(geo.Boundary)}
	for _, hole := range geo.Holes {
		out.Holes = append(out.Holes, encodeLoop(hole))
	}
	return out
}

func encodeLoop(loop []geometry.Point3D) [][3]float64 {
	out := make([][3]float64, len(loop))
	for i, pt := range loop {
		out[i] = [3]float64{pt.X, pt.Y, pt.Z}
	}
	return out
}

func encodeSensorGrid(grid SensorGrid) sensorGridJSON {
	out := sensorGridJSON{
		Type:        "SensorGrid",
		Identifier:  grid.Identifier,
		DisplayName: grid.DisplayName,
	}
	for _, s := range grid.Sensors {
		out.Sensors = append(out.Sensors, sensorJSON{
			Pos: [3]float64{s.Position.X, s.Position.Y, s.Position.Z},
			Dir: [3]float64{s.Direction.X, s.Direction.Y, s.Direction.Z},
		})
	}
	if len(grid.Mesh.Vertices) > 0 {
		mesh := &mesh3DJSON{Type: "Mesh3D", Vertices: encodeLoop(grid.Mesh.Vertices)}
		for _, f := range grid.Mesh.Faces {
			if f.IsQuad() {
				mesh.Faces = append(mesh.Faces, []int{f.A, f.B, f.C, f.D})
			} else {
				mesh.Faces = append(mesh.Faces, []int{f.A, f.B, f.C})
			}
		}
		out.Mesh = mesh
	}
	return out
}

func encodeProps(propsType, modID, radianceType string) objectPropsJSON {
	props := objectPropsJSON{Type: propsType}
	if modID != "" {
		props.Radiance = &radiancePropsJSON{Type: radianceType, Modifier: modID}
	}
	return props
}

func modifierID(mod *material.Modifier) string {
	if mod == nil {
		return ""
	}
	return mod.Identifier
}
