package rhino

import (
	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
)

// ObjectType identifies the kind of geometry an object carries.
type ObjectType uint32

const (
	ObjectTypeUnknown ObjectType = iota
	ObjectTypePoint
	ObjectTypeCurve
	ObjectTypeMesh
	ObjectTypeExtrusion
	ObjectTypeBrep
)

// String returns a readable name for error messages and the inspect report.
func (t ObjectType) String() string {
	switch t {
	case ObjectTypePoint:
		return "Point"
	case ObjectTypeCurve:
		return "Curve"
	case ObjectTypeMesh:
		return "Mesh"
	case ObjectTypeExtrusion:
		return "Extrusion"
	case ObjectTypeBrep:
		return "Brep"
	default:
		return "Unknown"
	}
}

// Geometry is implemented by every geometry kind stored in an object table
// record.
type Geometry interface {
	ObjectType() ObjectType
}

// Point is a point object. Points are not translatable and are skipped with
// a warning during face import.
type Point struct {
	Location geometry.Point3D
}

func (Point) ObjectType() ObjectType { return ObjectTypePoint }

// Curve is a polyline curve object. Curves are not translatable either, but
// they show up in real files and must survive a read/write cycle.
type Curve struct {
	Points []geometry.Point3D
	Closed bool
}

func (Curve) ObjectType() ObjectType { return ObjectTypeCurve }

// Mesh is a render or modeling mesh.
type Mesh struct {
	Vertices     []geometry.Point3D
	Faces        []geometry.MeshFace
	VertexColors []geometry.Color
}

func (Mesh) ObjectType() ObjectType { return ObjectTypeMesh }

// ToMesh3D converts the mesh into the geometry kernel's representation.
func (m Mesh) ToMesh3D() geometry.Mesh3D {
	return geometry.Mesh3D{
		Vertices: m.Vertices,
		Faces:    m.Faces,
		Colors:   m.VertexColors,
	}
}

// IsClosed reports whether every edge of the mesh is shared by exactly two
// faces, which is what makes a mesh a candidate room volume.
func (m Mesh) IsClosed() bool {
	if len(m.Faces) == 0 {
		return false
	}
	type edge struct{ a, b int }
	counts := map[edge]int{}
	add := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		counts[edge{a, b}]++
	}
	for _, f := range m.Faces {
		add(f.A, f.B)
		add(f.B, f.C)
		if f.IsQuad() {
			add(f.C, f.D)
			add(f.D, f.A)
		} else {
			add(f.C, f.A)
		}
	}
	for _, c := range counts {
		if c != 2 {
			return false
		}
	}
	return true
}

// Extrusion is a profile curve swept along a direction. The profile is a
// closed planar loop; Capped extrusions are solids.
type Extrusion struct {
	Profile   []geometry.Point3D
	Direction geometry.Vector3D
	Capped    bool
}

func (Extrusion) ObjectType() ObjectType { return ObjectTypeExtrusion }

// IsSolid reports whether the extrusion encloses a volume.
func (e Extrusion) IsSolid() bool { return e.Capped }

// RenderMesh builds the mesh representation of the extrusion: one quad per
// profile edge for the side walls, plus the two caps when the extrusion is
// capped. This is the mesh GetMesh would return from an opened Rhino file.
func (e Extrusion) RenderMesh() Mesh {
	n := len(e.Profile)
	mesh := Mesh{}
	if n < 3 {
		return mesh
	}

	// Bottom loop then top loop.
	for _, pt := range e.Profile {
		mesh.Vertices = append(mesh.Vertices, pt)
	}
	for _, pt := range e.Profile {
		mesh.Vertices = append(mesh.Vertices, pt.Add(e.Direction))
	}

	// Side quads.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		mesh.Faces = append(mesh.Faces, geometry.MeshFace{
			A: i, B: j, C: n + j, D: n + i,
		})
	}

	if e.Capped {
		// Fan-triangulate the caps. Profiles from Rhino are convex often
		// enough for room volumes; concave profiles still produce a closed
		// mesh because the fan shares the loop edges.
		for i := 1; i < n-1; i++ {
			mesh.Faces = append(mesh.Faces, geometry.MeshFace{A: 0, B: i + 1, C: i, D: i})
			mesh.Faces = append(mesh.Faces, geometry.MeshFace{A: n, B: n + i, C: n + i + 1, D: n + i + 1})
		}
	}
	return mesh
}

// BrepEdge is one edge of a brep with its linearity flag, which decides
// whether a planar brep can be rebuilt from edge segments or has to be
// meshed.
type BrepEdge struct {
	Start  geometry.Point3D
	End    geometry.Point3D
	Linear bool
}

// BrepFace is one face of a brep together with its render mesh and
// planarity flag.
type BrepFace struct {
	Mesh   Mesh
	Planar bool
}

// Brep is a boundary representation carried as its per-face render meshes.
type Brep struct {
	Faces []BrepFace
	Edges []BrepEdge
	Solid bool
}

func (Brep) ObjectType() ObjectType { return ObjectTypeBrep }

// IsSolid reports whether the brep encloses a volume.
func (b Brep) IsSolid() bool { return b.Solid }

// IsPlanar reports whether every face of the brep is planar within the file
// tolerance recorded at write time.
func (b Brep) IsPlanar() bool {
	for _, f := range b.Faces {
		if !f.Planar {
			return false
		}
	}
	return len(b.Faces) > 0
}
