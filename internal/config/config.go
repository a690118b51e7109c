// =============================================================================
// Honeybee 3DM - Configuration Module
// =============================================================================
//
// Loads and validates the optional translation config file. The config maps
// Rhino layer names to translation behavior: which Honeybee object or face
// type the layer's geometry becomes, which Radiance modifier it gets, and
// whether the layer carries sensor-grid geometry.
//
// The file may be JSON (config.json, the documented format) or YAML; the
// extension decides the decoder.
//
// =============================================================================

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ladybug-tools/honeybee-3dm/internal/material"
	"github.com/ladybug-tools/honeybee-3dm/internal/rhino"
)

// SourceRadianceMaterial is the only key allowed in the sources map.
const SourceRadianceMaterial = "radiance_material"

// FaceObject names the Honeybee object kind a layer translates to when it is
// not a plain Face.
type FaceObject string

const (
	ObjectDoor     FaceObject = "door"
	ObjectShade    FaceObject = "shade"
	ObjectAperture FaceObject = "aperture"
)

// FaceTypeName names the thermal face type assigned to a layer's faces.
type FaceTypeName string

const (
	TypeWall    FaceTypeName = "wall"
	TypeRoof    FaceTypeName = "roof"
	TypeFloor   FaceTypeName = "floor"
	TypeAirwall FaceTypeName = "airwall"
)

// GridSettings controls sensor-grid generation for a layer.
type GridSettings struct {
	// GridSize is the grid spacing in model units. Must be strictly
	// positive when given; defaults to 1.0 when omitted.
	GridSize *float64 `json:"grid_size,omitempty" yaml:"grid_size,omitempty"`

	// GridOffset moves the grid away from the parent face along its normal.
	GridOffset float64 `json:"grid_offset" yaml:"grid_offset"`
}

// LayerConfig is the translation behavior for a single Rhino layer.
type LayerConfig struct {
	// ExcludeFromRad marks layers whose objects carry no radiance material,
	// typically layers that hold grid geometry.
	ExcludeFromRad bool `json:"exclude_from_rad,omitempty" yaml:"exclude_from_rad,omitempty"`

	// IncludeChildLayers imports objects from child layers as well.
	// Defaults to true when omitted.
	IncludeChildLayers *bool `json:"include_child_layers,omitempty" yaml:"include_child_layers,omitempty"`

	// RadianceMaterial is the identifier of a modifier from the .mat file
	// named in sources.
	RadianceMaterial string `json:"radiance_material,omitempty" yaml:"radiance_material,omitempty"`

	// GridSettings turns the layer's geometry into sensor grids.
	GridSettings *GridSettings `json:"grid_settings,omitempty" yaml:"grid_settings,omitempty"`

	// HoneybeeFaceObject creates Shade, Door or Aperture objects from the
	// layer instead of Faces.
	HoneybeeFaceObject FaceObject `json:"honeybee_face_object,omitempty" yaml:"honeybee_face_object,omitempty"`

	// HoneybeeFaceType assigns a specific face type to the layer's Faces.
	HoneybeeFaceType FaceTypeName `json:"honeybee_face_type,omitempty" yaml:"honeybee_face_type,omitempty"`
}

// ChildLayers reports whether child layers should be imported.
func (l LayerConfig) ChildLayers() bool {
	return l.IncludeChildLayers == nil || *l.IncludeChildLayers
}

// GridControls returns the effective grid size and offset, applying the
// (1.0, 0.0) defaults.
func (l LayerConfig) GridControls() (size, offset float64) {
	if l.GridSettings == nil {
		return 1.0, 0.0
	}
	size = 1.0
	if l.GridSettings.GridSize != nil {
		size = *l.GridSettings.GridSize
	}
	return size, l.GridSettings.GridOffset
}

// Config is the parsed translation config.
type Config struct {
	// Sources points at input files the config refers to. The only
	// supported key is "radiance_material", the path to a .mat file.
	Sources map[string]string `json:"sources,omitempty" yaml:"sources,omitempty"`

	// Layers maps Rhino layer names to their translation behavior.
	Layers map[string]LayerConfig `json:"layers" yaml:"layers"`
}

// Load reads, decodes and validates a config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("config: %s is not valid YAML: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("config: %s is not a valid json file: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config's internal consistency: the sources map, the
// enum fields and the grid settings.
func (c *Config) Validate() error {
	if len(c.Layers) == 0 {
		return fmt.Errorf("config: layers must have at least one entry")
	}

	if c.Sources != nil {
		if len(c.Sources) > 1 {
			return fmt.Errorf("config: sources can only have one key")
		}
		for key := range c.Sources {
			if key != SourceRadianceMaterial {
				return fmt.Errorf("config: invalid sources key %q, key must be %s",
					key, SourceRadianceMaterial)
			}
		}
	}

	for name, layer := range c.Layers {
		switch layer.HoneybeeFaceObject {
		case "", ObjectDoor, ObjectShade, ObjectAperture:
		default:
			return fmt.Errorf("config: layer %q has invalid honeybee_face_object %q",
				name, layer.HoneybeeFaceObject)
		}
		switch layer.HoneybeeFaceType {
		case "", TypeWall, TypeRoof, TypeFloor, TypeAirwall:
		default:
			return fmt.Errorf("config: layer %q has invalid honeybee_face_type %q",
				name, layer.HoneybeeFaceType)
		}
		if layer.HoneybeeFaceObject != "" && layer.HoneybeeFaceType != "" {
			return fmt.Errorf("config: layer %q sets both honeybee_face_object and"+
				" honeybee_face_type", name)
		}
		if layer.GridSettings != nil && layer.GridSettings.GridSize != nil &&
			*layer.GridSettings.GridSize <= 0 {
			return fmt.Errorf("config: layer %q must have a grid_size greater than 0", name)
		}
	}

	if c.materialRequested() && c.MaterialPath() == "" {
		return fmt.Errorf("config: a layer requests a radiance_material but sources" +
			" has no radiance_material path")
	}
	return nil
}

// MaterialPath returns the configured .mat file path, or "".
func (c *Config) MaterialPath() string {
	if c.Sources == nil {
		return ""
	}
	return c.Sources[SourceRadianceMaterial]
}

func (c *Config) materialRequested() bool {
	for _, layer := range c.Layers {
		if layer.RadianceMaterial != "" {
			return true
		}
	}
	return false
}

// CheckLayers verifies that every configured layer exists in the 3dm file.
// Only layer names from the Rhino file are allowed in the config.
func (c *Config) CheckLayers(file *rhino.File) error {
	names := map[string]bool{}
	for _, name := range file.LayerNames() {
		names[name] = true
	}
	var invalid []string
	for name := range c.Layers {
		if !names[name] {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("config: only layer names from the Rhino file are allowed"+
			" in the config file, found invalid layer names: %s",
			strings.Join(invalid, ", "))
	}
	return nil
}

// CheckMaterials verifies that every radiance material named in the config
// resolves in the parsed .mat table.
func (c *Config) CheckMaterials(table material.Table) error {
	for name, layer := range c.Layers {
		if layer.RadianceMaterial == "" {
			continue
		}
		if _, ok := table[layer.RadianceMaterial]; !ok {
			return fmt.Errorf("config: layer %q names radiance material %q which is"+
				" not in the radiance material file; material names in the config"+
				" must match the radiance identifiers in the material file",
				name, layer.RadianceMaterial)
		}
	}
	return nil
}
