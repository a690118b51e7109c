package rhino

import (
	"fmt"
	"io"
	"os"
)

// Write encodes the file to path.
func Write(f *File, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rhino: failed to create %s: %w", path, err)
	}
	defer out.Close()
	if err := Encode(f, out); err != nil {
		return fmt.Errorf("rhino: failed to write %s: %w", path, err)
	}
	return nil
}

// Encode writes the 3dm byte stream for f.
func Encode(f *File, w io.Writer) error {
	header := fmt.Sprintf("%s%08d", fileMagic, archiveVersion)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}

	if err := writeChunk(w, tcodeSettingsTable, encodeSettings(f.Settings)); err != nil {
		return err
	}

	layers := buffer{}
	for _, layer := range f.Layers {
		if err := writeChunk(&layers, tcodeLayerRecord, encodeLayer(layer)); err != nil {
			return err
		}
	}
	if err := writeChunk(w, tcodeLayerTable, layers.Bytes()); err != nil {
		return err
	}

	materials := buffer{}
	for _, mat := range f.Materials {
		if err := writeChunk(&materials, tcodeMaterialRecord, encodeMaterial(mat)); err != nil {
			return err
		}
	}
	if err := writeChunk(w, tcodeMaterialTable, materials.Bytes()); err != nil {
		return err
	}

	objects := buffer{}
	for _, obj := range f.Objects {
		payload, err := encodeObject(obj)
		if err != nil {
			return err
		}
		if err := writeChunk(&objects, tcodeObjectRecord, payload); err != nil {
			return err
		}
	}
	if err := writeChunk(w, tcodeObjectTable, objects.Bytes()); err != nil {
		return err
	}

	return writeChunk(w, tcodeEndOfFile, nil)
}

func encodeSettings(s Settings) []byte {
	b := buffer{}
	b.putU8(uint8(s.UnitSystem))
	b.putF64(s.AbsoluteTolerance)
	b.putF64(s.AngleToleranceDegrees)
	return b.Bytes()
}

func encodeLayer(l Layer) []byte {
	b := buffer{}
	b.putString(l.Name)
	b.putString(l.FullPath)
	b.putI32(l.Index)
	b.putI32(l.ParentIndex)
	b.putBool(l.Visible)
	b.putI32(l.RenderMaterialIndex)
	return b.Bytes()
}

func encodeMaterial(m Material) []byte {
	b := buffer{}
	b.putString(m.Name)
	b.putU8(m.R)
	b.putU8(m.G)
	b.putU8(m.B)
	return b.Bytes()
}

func encodeObject(obj Object) ([]byte, error) {
	record := buffer{}

	geo, err := encodeGeometry(obj.Geometry)
	if err != nil {
		return nil, err
	}
	if err := writeChunk(&record, tcodeGeometry, geo); err != nil {
		return nil, err
	}

	attrs := buffer{}
	attrs.putUUID(obj.Attributes.ID)
	attrs.putString(obj.Attributes.Name)
	attrs.putI32(obj.Attributes.LayerIndex)
	attrs.putBool(obj.Attributes.Visible)
	if err := writeChunk(&record, tcodeAttributes, attrs.Bytes()); err != nil {
		return nil, err
	}
	return record.Bytes(), nil
}

func encodeGeometry(g Geometry) ([]byte, error) {
	b := buffer{}
	b.putU32(uint32(g.ObjectType()))
	switch geo := g.(type) {
	case Point:
		b.putF64(geo.Location.X)
		b.putF64(geo.Location.Y)
		b.putF64(geo.Location.Z)
	case Curve:
		if err := b.putPoints(geo.Points); err != nil {
			return nil, err
		}
		b.putBool(geo.Closed)
	case Mesh:
		if err := encodeMesh(&b, geo); err != nil {
			return nil, err
		}
	case Extrusion:
		if err := b.putPoints(geo.Profile); err != nil {
			return nil, err
		}
		b.putF64(geo.Direction.X)
		b.putF64(geo.Direction.Y)
		b.putF64(geo.Direction.Z)
		b.putBool(geo.Capped)
	case Brep:
		b.putU32(uint32(len(geo.Faces)))
		for _, face := range geo.Faces {
			if err := encodeMesh(&b, face.Mesh); err != nil {
				return nil, err
			}
			b.putBool(face.Planar)
		}
		b.putU32(uint32(len(geo.Edges)))
		for _, edge := range geo.Edges {
			b.putF64(edge.Start.X)
			b.putF64(edge.Start.Y)
			b.putF64(edge.Start.Z)
			b.putF64(edge.End.X)
			b.putF64(edge.End.Y)
			b.putF64(edge.End.Z)
			b.putBool(edge.Linear)
		}
		b.putBool(geo.Solid)
	default:
		return nil, fmt.Errorf("rhino: cannot encode geometry type %s", g.ObjectType())
	}
	return b.Bytes(), nil
}

func encodeMesh(b *buffer, m Mesh) error {
	if err := b.putPoints(m.Vertices); err != nil {
		return err
	}
	if err := b.putMeshFaces(m.Faces); err != nil {
		return err
	}
	b.putU32(uint32(len(m.VertexColors)))
	for _, c := range m.VertexColors {
		b.putU8(c.R)
		b.putU8(c.G)
		b.putU8(c.B)
	}
	return nil
}
