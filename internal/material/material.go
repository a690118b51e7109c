// =============================================================================
// Honeybee 3DM - Radiance Material File Parser
// =============================================================================
//
// Parses Radiance .mat files into a table of modifiers keyed by identifier.
// A .mat file is plain text; each material is a four-line record that starts
// with a "void" line:
//
//   void plastic generic_wall
//   0
//   0
//   5 0.5 0.5 0.5 0.0 0.0
//
// The translation cross-references these identifiers against the material
// names found on Rhino layers and against the radiance_material entries in
// the config file.
//
// =============================================================================

package material

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ModifierType is the Radiance primitive type of a modifier.
type ModifierType string

const (
	Plastic ModifierType = "plastic"
	Glass   ModifierType = "glass"
	Mirror  ModifierType = "mirror"
	BSDF    ModifierType = "BSDF"
)

// Modifier is one parsed Radiance modifier.
type Modifier struct {
	Type       ModifierType
	Identifier string

	// Values are the numeric arguments from the final record line, after
	// the leading count. For a plastic these are R, G, B reflectance,
	// specularity and roughness; for glass and mirror the three channel
	// values.
	Values []float64
}

// Table maps modifier identifiers to modifiers.
type Table map[string]*Modifier

// knownTypes are the primitive types the parser accepts, matching the
// modifiers Honeybee can represent.
var knownTypes = map[string]ModifierType{
	"plastic": Plastic,
	"glass":   Glass,
	"mirror":  Mirror,
	"BSDF":    BSDF,
}

// Load reads and parses a .mat file.
func Load(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("material: failed to read %s: %w", path, err)
	}
	table, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("material: failed to parse %s: %w", path, err)
	}
	return table, nil
}

// Parse parses .mat file content. Material records are located by their
// "void" header line; each record spans four lines.
func Parse(content string) (Table, error) {
	lines := strings.Split(content, "\n")
	table := Table{}

	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] != "void" {
			continue
		}
		modType, ok := knownTypes[fields[1]]
		if !ok {
			return nil, fmt.Errorf("material: unknown modifier type %q on line %d", fields[1], i+1)
		}
		if i+3 >= len(lines) {
			return nil, fmt.Errorf("material: truncated record for %q on line %d", fields[2], i+1)
		}
		values, err := parseValueLine(lines[i+3])
		if err != nil {
			return nil, fmt.Errorf("material: bad record for %q: %w", fields[2], err)
		}
		table[fields[2]] = &Modifier{
			Type:       modType,
			Identifier: fields[2],
			Values:     values,
		}
	}
	return table, nil
}

// parseValueLine reads the "N v1 v2 ... vN" argument line of a record.
func parseValueLine(line string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty value line")
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("bad value count %q", fields[0])
	}
	if len(fields)-1 < count {
		return nil, fmt.Errorf("value line declares %d values but has %d", count, len(fields)-1)
	}
	values := make([]float64, count)
	for i := 0; i < count; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad value %q", fields[i+1])
		}
		values[i] = v
	}
	return values, nil
}

// HBJSON returns the modifier as a honeybee-schema radiance modifier object.
func (m *Modifier) HBJSON() map[string]any {
	obj := map[string]any{
		"identifier": m.Identifier,
	}
	val := func(i int) float64 {
		if i < len(m.Values) {
			return m.Values[i]
		}
		return 0
	}
	switch m.Type {
	case Plastic:
		obj["type"] = "Plastic"
		obj["r_reflectance"] = val(0)
		obj["g_reflectance"] = val(1)
		obj["b_reflectance"] = val(2)
		obj["specularity"] = val(3)
		obj["roughness"] = val(4)
	case Glass:
		obj["type"] = "Glass"
		obj["r_transmissivity"] = val(0)
		obj["g_transmissivity"] = val(1)
		obj["b_transmissivity"] = val(2)
	case Mirror:
		obj["type"] = "Mirror"
		obj["r_reflectance"] = val(0)
		obj["g_reflectance"] = val(1)
		obj["b_reflectance"] = val(2)
	default:
		obj["type"] = string(m.Type)
		obj["values"] = m.Values
	}
	return obj
}
