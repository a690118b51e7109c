// =============================================================================
// Honeybee 3DM - Translation Pipeline
// =============================================================================
//
// Orchestrates the translation of a Rhino 3dm file into a Honeybee model:
//
//   1. Read the 3dm file and check its unit system.
//   2. Validate the config against the file's layer table and, when radiance
//      materials are requested, against the parsed .mat file.
//   3. Walk the layer table. Configured layers produce whatever the config
//      says (typed faces, shades, apertures, doors or sensor grids);
//      unconfigured visible layers produce plain faces typed by their
//      normals. A layer named "room" produces closed-volume Rooms.
//   4. Assemble the model with the file's tolerances and unit system.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ladybug-tools/honeybee-3dm/internal/config"
	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
	"github.com/ladybug-tools/honeybee-3dm/internal/honeybee"
	"github.com/ladybug-tools/honeybee-3dm/internal/material"
	"github.com/ladybug-tools/honeybee-3dm/internal/rhino"
)

// roomLayerName is the reserved layer whose closed volumes become Rooms.
const roomLayerName = "room"

// Importer translates 3dm files into Honeybee models.
type Importer struct {
	Log *slog.Logger
}

// New creates an Importer. A nil logger falls back to slog.Default.
func New(log *slog.Logger) *Importer {
	if log == nil {
		log = slog.Default()
	}
	return &Importer{Log: log}
}

// Import3dm reads the 3dm file at path and translates it into a Honeybee
// model. The optional configPath points at a JSON or YAML config file. The
// model is named after the file basename.
func (imp *Importer) Import3dm(path, configPath string) (*honeybee.Model, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("converter: %s is not a valid file path", path)
	}

	file, err := rhino.Read(path)
	if err != nil {
		return nil, err
	}
	if err := file.CheckUnits(); err != nil {
		return nil, err
	}

	var cfg *config.Config
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	var materials material.Table
	if cfg != nil {
		if err := cfg.CheckLayers(file); err != nil {
			return nil, err
		}
		if matPath := cfg.MaterialPath(); matPath != "" {
			if materials, err = material.Load(matPath); err != nil {
				return nil, err
			}
			if err := cfg.CheckMaterials(materials); err != nil {
				return nil, err
			}
		}
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tolerance := file.Settings.AbsoluteTolerance
	model := honeybee.NewModel(
		name,
		file.Settings.UnitSystem.String(),
		tolerance,
		file.Settings.AngleToleranceDegrees,
	)

	// Objects already imported through a configured parent layer must not be
	// imported again when their own layer is visited.
	imported := map[uuid.UUID]bool{}

	for _, layer := range file.Layers {
		if strings.EqualFold(layer.Name, roomLayerName) {
			rooms, err := imp.importRooms(file, layer, tolerance)
			if err != nil {
				return nil, err
			}
			model.Rooms = append(model.Rooms, rooms...)
			for _, obj := range objectsOnLayer(file, layer, false) {
				imported[obj.Attributes.ID] = true
			}
			continue
		}

		layerCfg, configured := config.LayerConfig{}, false
		if cfg != nil {
			layerCfg, configured = cfg.Layers[layer.Name]
		}

		var objects []rhino.Object
		if configured && layerCfg.ChildLayers() {
			objects = objectsOnParentChild(file, layer.Name, false)
		} else {
			objects = objectsOnLayer(file, layer, false)
		}

		modifier := imp.layerModifier(file, layer, layerCfg, materials)

		for _, obj := range objects {
			if imported[obj.Attributes.ID] {
				continue
			}
			imported[obj.Attributes.ID] = true

			if err := imp.importObject(model, obj, layer, layerCfg, configured,
				modifier, tolerance); err != nil {
				return nil, err
			}
		}
	}

	return model, nil
}

// importObject routes a single object to the right Honeybee type.
func (imp *Importer) importObject(model *honeybee.Model, obj rhino.Object,
	layer rhino.Layer, layerCfg config.LayerConfig, configured bool,
	modifier *material.Modifier, tolerance float64) error {

	// Grid layers produce sensors, not surfaces.
	if configured && layerCfg.GridSettings != nil && layerCfg.ExcludeFromRad {
		grid, err := imp.importGrid(obj, layer, layerCfg, tolerance)
		if err != nil {
			return err
		}
		model.SensorGrids = append(model.SensorGrids, grid)
		return nil
	}

	faces, err := ToFace3D(obj, tolerance, false, imp.Log)
	if err != nil {
		return fmt.Errorf("converter: object %s on layer %q: %w",
			obj.Attributes.ID, layer.Name, err)
	}

	for _, geo := range faces {
		name := objectName(obj, layer)

		if configured && layerCfg.HoneybeeFaceObject != "" {
			switch layerCfg.HoneybeeFaceObject {
			case config.ObjectShade:
				shade := honeybee.NewShade(name, geo)
				shade.Modifier = modifier
				model.OrphanedShades = append(model.OrphanedShades, shade)
			case config.ObjectAperture:
				ap := honeybee.NewAperture(name, geo)
				ap.Modifier = modifier
				model.OrphanedApertures = append(model.OrphanedApertures, ap)
			case config.ObjectDoor:
				door := honeybee.NewDoor(name, geo)
				door.Modifier = modifier
				model.OrphanedDoors = append(model.OrphanedDoors, door)
			}
			continue
		}

		faceType := honeybee.TypeFromNormal(geo.Normal())
		if configured && layerCfg.HoneybeeFaceType != "" {
			faceType = faceTypeFromConfig(layerCfg.HoneybeeFaceType)
		}
		face := honeybee.NewFace(name, geo, faceType, tolerance)
		face.Modifier = modifier
		model.OrphanedFaces = append(model.OrphanedFaces, face)
	}
	return nil
}

// importGrid creates a sensor grid from one object. Meshes keep their own
// density; everything else is gridded with the layer's grid settings.
func (imp *Importer) importGrid(obj rhino.Object, layer rhino.Layer,
	layerCfg config.LayerConfig, tolerance float64) (honeybee.SensorGrid, error) {

	name := obj.Attributes.Name
	if name == "" {
		name = honeybee.CleanAndIDString("Grid")
	}

	if mesh, ok := obj.Geometry.(rhino.Mesh); ok {
		return honeybee.GridFromMesh(name, mesh.ToMesh3D()), nil
	}

	faces, err := ToFace3D(obj, tolerance, true, imp.Log)
	if err != nil {
		return honeybee.SensorGrid{}, fmt.Errorf(
			"converter: check object with ID %s on layer %q: either the object has"+
				" faces too small for the grid size, or the object is not supported"+
				" for grids; try a smaller grid size in the config file: %w",
			obj.Attributes.ID, layer.Name, err)
	}
	size, offset := layerCfg.GridControls()
	return honeybee.GridFromFaces(name, faces, size, size, offset)
}

// importRooms converts the closed volumes on the room layer into Rooms.
func (imp *Importer) importRooms(file *rhino.File, layer rhino.Layer,
	tolerance float64) ([]honeybee.Room, error) {

	var rooms []honeybee.Room
	for _, obj := range objectsOnLayer(file, layer, false) {
		var faces []geometry.Face3D
		var err error

		switch geo := obj.Geometry.(type) {
		case rhino.Brep:
			if !geo.IsSolid() {
				return nil, roomLayerError()
			}
			faces, err = solidToFace3Ds(geo, tolerance)
		case rhino.Extrusion:
			if !geo.IsSolid() {
				return nil, roomLayerError()
			}
			faces, err = extrusionToFace3Ds(geo, tolerance)
		case rhino.Mesh:
			if !geo.IsClosed() {
				return nil, roomLayerError()
			}
			faces = geo.ToMesh3D().ToFace3Ds()
		default:
			return nil, roomLayerError()
		}
		if err != nil {
			return nil, fmt.Errorf("converter: room object %s: %w", obj.Attributes.ID, err)
		}

		name := obj.Attributes.Name
		if name == "" {
			name = "Room_" + uuid.NewString()[:8]
		}
		room, err := honeybee.RoomFromFaces(name, faces, tolerance)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func roomLayerError() error {
	return fmt.Errorf("converter: on the %q layer you must only have closed breps,"+
		" closed extrusions, or closed meshes; please make this change in the"+
		" rhino file and try again", roomLayerName)
}

// layerModifier resolves the radiance modifier for a layer. A modifier named
// in the config wins; otherwise the layer's render material is looked up in
// the .mat table by name.
func (imp *Importer) layerModifier(file *rhino.File, layer rhino.Layer,
	layerCfg config.LayerConfig, materials material.Table) *material.Modifier {

	if layerCfg.ExcludeFromRad || materials == nil {
		return nil
	}
	if layerCfg.RadianceMaterial != "" {
		return materials[layerCfg.RadianceMaterial]
	}

	mat, ok := file.MaterialByIndex(layer.RenderMaterialIndex)
	if !ok {
		return nil
	}
	if mod, found := materials[mat.Name]; found && !strings.Contains(mat.Name, " ") {
		return mod
	}
	imp.Log.Warn("no radiance modifier matches the layer's material name,"+
		" default honeybee modifier will be applied",
		"layer", layer.Name, "material", mat.Name)
	return nil
}

// objectName returns the object's own name or a generated one based on its
// layer.
func objectName(obj rhino.Object, layer rhino.Layer) string {
	if obj.Attributes.Name != "" {
		return obj.Attributes.Name
	}
	return honeybee.CleanAndIDString(layer.Name)
}

// faceTypeFromConfig maps the config enum onto Honeybee face types.
func faceTypeFromConfig(t config.FaceTypeName) honeybee.FaceType {
	switch t {
	case config.TypeRoof:
		return honeybee.FaceTypeRoofCeiling
	case config.TypeFloor:
		return honeybee.FaceTypeFloor
	case config.TypeAirwall:
		return honeybee.FaceTypeAirBoundary
	default:
		return honeybee.FaceTypeWall
	}
}
