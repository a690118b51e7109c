package rhino

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
)

// Read parses the 3dm file at path.
func Read(path string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rhino: failed to open %s: %w", path, err)
	}
	defer in.Close()
	f, err := Decode(bufio.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("rhino: failed to read %s: %w", path, err)
	}
	return f, nil
}

// Decode parses a 3dm byte stream.
func Decode(r io.Reader) (*File, error) {
	header := make([]byte, len(fileMagic)+8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, ErrNotA3dmFile
	}
	if string(header[:len(fileMagic)]) != fileMagic {
		return nil, ErrNotA3dmFile
	}
	version, err := strconv.Atoi(strings.TrimSpace(string(header[len(fileMagic):])))
	if err != nil {
		return nil, ErrNotA3dmFile
	}
	if version > archiveVersion {
		return nil, fmt.Errorf("rhino: archive version %d is newer than supported version %d",
			version, archiveVersion)
	}

	f := &File{}
	for {
		code, payload, err := readChunk(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch code {
		case tcodeSettingsTable:
			if f.Settings, err = decodeSettings(payload); err != nil {
				return nil, err
			}
		case tcodeLayerTable:
			if f.Layers, err = decodeLayerTable(payload); err != nil {
				return nil, err
			}
		case tcodeMaterialTable:
			if f.Materials, err = decodeMaterialTable(payload); err != nil {
				return nil, err
			}
		case tcodeObjectTable:
			if f.Objects, err = decodeObjectTable(payload); err != nil {
				return nil, err
			}
		case tcodeEndOfFile:
			return f, nil
		default:
			// Unknown chunks are skipped so newer writers stay readable.
		}
	}
	return f, nil
}

func decodeSettings(payload []byte) (Settings, error) {
	p := newParser(payload)
	unit, err := p.u8()
	if err != nil {
		return Settings{}, err
	}
	tol, err := p.f64()
	if err != nil {
		return Settings{}, err
	}
	angle, err := p.f64()
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		UnitSystem:            UnitSystem(unit),
		AbsoluteTolerance:     tol,
		AngleToleranceDegrees: angle,
	}, nil
}

func decodeLayerTable(payload []byte) ([]Layer, error) {
	var layers []Layer
	if err := eachRecord(payload, tcodeLayerRecord, func(rec []byte) error {
		p := newParser(rec)
		var layer Layer
		var err error
		if layer.Name, err = p.string(); err != nil {
			return err
		}
		if layer.FullPath, err = p.string(); err != nil {
			return err
		}
		if layer.Index, err = p.i32(); err != nil {
			return err
		}
		if layer.ParentIndex, err = p.i32(); err != nil {
			return err
		}
		if layer.Visible, err = p.bool(); err != nil {
			return err
		}
		if layer.RenderMaterialIndex, err = p.i32(); err != nil {
			return err
		}
		layers = append(layers, layer)
		return nil
	}); err != nil {
		return nil, err
	}
	return layers, nil
}

func decodeMaterialTable(payload []byte) ([]Material, error) {
	var materials []Material
	if err := eachRecord(payload, tcodeMaterialRecord, func(rec []byte) error {
		p := newParser(rec)
		var mat Material
		var err error
		if mat.Name, err = p.string(); err != nil {
			return err
		}
		if mat.R, err = p.u8(); err != nil {
			return err
		}
		if mat.G, err = p.u8(); err != nil {
			return err
		}
		if mat.B, err = p.u8(); err != nil {
			return err
		}
		materials = append(materials, mat)
		return nil
	}); err != nil {
		return nil, err
	}
	return materials, nil
}

func decodeObjectTable(payload []byte) ([]Object, error) {
	var objects []Object
	if err := eachRecord(payload, tcodeObjectRecord, func(rec []byte) error {
		obj, err := decodeObject(rec)
		if err != nil {
			return err
		}
		objects = append(objects, obj)
		return nil
	}); err != nil {
		return nil, err
	}
	return objects, nil
}

// eachRecord iterates the nested record chunks of a table payload.
func eachRecord(payload []byte, want typecode, fn func([]byte) error) error {
	r := newParser(payload).r
	for {
		code, rec, err := readChunk(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if code != want {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

func decodeObject(record []byte) (Object, error) {
	var obj Object
	r := newParser(record).r
	for {
		code, payload, err := readChunk(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return obj, err
		}
		switch code {
		case tcodeGeometry:
			if obj.Geometry, err = decodeGeometry(payload); err != nil {
				return obj, err
			}
		case tcodeAttributes:
			p := newParser(payload)
			if obj.Attributes.ID, err = p.uuid(); err != nil {
				return obj, err
			}
			if obj.Attributes.Name, err = p.string(); err != nil {
				return obj, err
			}
			if obj.Attributes.LayerIndex, err = p.i32(); err != nil {
				return obj, err
			}
			if obj.Attributes.Visible, err = p.bool(); err != nil {
				return obj, err
			}
		}
	}
	if obj.Geometry == nil {
		return obj, fmt.Errorf("rhino: object record missing geometry chunk")
	}
	return obj, nil
}

func decodeGeometry(payload []byte) (Geometry, error) {
	p := newParser(payload)
	kind, err := p.u32()
	if err != nil {
		return nil, err
	}
	switch ObjectType(kind) {
	case ObjectTypePoint:
		var pt geometry.Point3D
		if pt.X, err = p.f64(); err != nil {
			return nil, err
		}
		if pt.Y, err = p.f64(); err != nil {
			return nil, err
		}
		if pt.Z, err = p.f64(); err != nil {
			return nil, err
		}
		return Point{Location: pt}, nil
	case ObjectTypeCurve:
		pts, err := p.points()
		if err != nil {
			return nil, err
		}
		closed, err := p.bool()
		if err != nil {
			return nil, err
		}
		return Curve{Points: pts, Closed: closed}, nil
	case ObjectTypeMesh:
		return decodeMesh(p)
	case ObjectTypeExtrusion:
		var ext Extrusion
		if ext.Profile, err = p.points(); err != nil {
			return nil, err
		}
		if ext.Direction.X, err = p.f64(); err != nil {
			return nil, err
		}
		if ext.Direction.Y, err = p.f64(); err != nil {
			return nil, err
		}
		if ext.Direction.Z, err = p.f64(); err != nil {
			return nil, err
		}
		if ext.Capped, err = p.bool(); err != nil {
			return nil, err
		}
		return ext, nil
	case ObjectTypeBrep:
		var brep Brep
		faceCount, err := p.u32()
		if err != nil {
			return nil, err
		}
		for i := uint32(0); i < faceCount; i++ {
			mesh, err := decodeMesh(p)
			if err != nil {
				return nil, err
			}
			planar, err := p.bool()
			if err != nil {
				return nil, err
			}
			brep.Faces = append(brep.Faces, BrepFace{Mesh: mesh, Planar: planar})
		}
		edgeCount, err := p.u32()
		if err != nil {
			return nil, err
		}
		for i := uint32(0); i < edgeCount; i++ {
			var edge BrepEdge
			for _, dst := range []*float64{
				&edge.Start.X, &edge.Start.Y, &edge.Start.Z,
				&edge.End.X, &edge.End.Y, &edge.End.Z,
			} {
				if *dst, err = p.f64(); err != nil {
					return nil, err
				}
			}
			if edge.Linear, err = p.bool(); err != nil {
				return nil, err
			}
			brep.Edges = append(brep.Edges, edge)
		}
		if brep.Solid, err = p.bool(); err != nil {
			return nil, err
		}
		return brep, nil
	default:
		return nil, fmt.Errorf("rhino: unknown geometry kind %d", kind)
	}
}

func decodeMesh(p *parser) (Mesh, error) {
	var mesh Mesh
	var err error
	if mesh.Vertices, err = p.points(); err != nil {
		return mesh, err
	}
	if mesh.Faces, err = p.meshFaces(); err != nil {
		return mesh, err
	}
	colorCount, err := p.u32()
	if err != nil {
		return mesh, err
	}
	for i := uint32(0); i < colorCount; i++ {
		var c geometry.Color
		if c.R, err = p.u8(); err != nil {
			return mesh, err
		}
		if c.G, err = p.u8(); err != nil {
			return mesh, err
		}
		if c.B, err = p.u8(); err != nil {
			return mesh, err
		}
		mesh.VertexColors = append(mesh.VertexColors, c)
	}
	return mesh, nil
}
