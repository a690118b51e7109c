package geometry

// Color is an RGB color carried on mesh vertices in a 3dm file.
type Color struct {
	R, G, B uint8
}

// MeshFace indexes three or four vertices of a mesh. Quad faces have all four
// indices set; triangles repeat the third index in D, matching the way Rhino
// stores them.
type MeshFace struct {
	A, B, C, D int
}

// IsQuad reports whether the face has four distinct corners.
func (f MeshFace) IsQuad() bool {
	return f.C != f.D
}

// Mesh3D is a vertex/face mesh with optional colors. Colors are either
// per-vertex or, when derived for grid display, per-face.
type Mesh3D struct {
	Vertices []Point3D
	Faces    []MeshFace
	Colors   []Color
}

// FaceCentroid returns the centroid of face i.
func (m Mesh3D) FaceCentroid(i int) Point3D {
	face := m.Faces[i]
	idx := []int{face.A, face.B, face.C}
	if face.IsQuad() {
		idx = append(idx, face.D)
	}
	var c Point3D
	for _, vi := range idx {
		pt := m.Vertices[vi]
		c.X += pt.X
		c.Y += pt.Y
		c.Z += pt.Z
	}
	n := float64(len(idx))
	return Point3D{c.X / n, c.Y / n, c.Z / n}
}

// FaceNormal returns the unit normal of face i following its winding.
func (m Mesh3D) FaceNormal(i int) Vector3D {
	face := m.Faces[i]
	a := m.Vertices[face.A]
	b := m.Vertices[face.B]
	c := m.Vertices[face.C]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// FaceArea returns the area of face i.
func (m Mesh3D) FaceArea(i int) float64 {
	face := m.Faces[i]
	a := m.Vertices[face.A]
	b := m.Vertices[face.B]
	c := m.Vertices[face.C]
	area := b.Sub(a).Cross(c.Sub(a)).Length() / 2
	if face.IsQuad() {
		d := m.Vertices[face.D]
		area += c.Sub(a).Cross(d.Sub(a)).Length() / 2
	}
	return area
}

// FaceToFace3D converts face i into a standalone Face3D.
func (m Mesh3D) FaceToFace3D(i int) Face3D {
	face := m.Faces[i]
	verts := []Point3D{m.Vertices[face.A], m.Vertices[face.B], m.Vertices[face.C]}
	if face.IsQuad() {
		verts = append(verts, m.Vertices[face.D])
	}
	return Face3D{Boundary: verts}
}

// ToFace3Ds converts every mesh face into a Face3D.
func (m Mesh3D) ToFace3Ds() []Face3D {
	faces := make([]Face3D, len(m.Faces))
	for i := range m.Faces {
		faces[i] = m.FaceToFace3D(i)
	}
	return faces
}
