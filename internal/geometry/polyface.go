package geometry

// Polyface3D is a collection of faces treated as one surface. Its only job in
// the translation is naked-edge extraction: when a planar brep face arrives
// as a triangulated render mesh, the outer boundary of the original face is
// recovered by joining the edges that belong to exactly one triangle.
type Polyface3D struct {
	Faces []Face3D

	tolerance float64
}

// NewPolyface creates a polyface from faces at the given tolerance.
func NewPolyface(faces []Face3D, tolerance float64) Polyface3D {
	return Polyface3D{Faces: faces, tolerance: tolerance}
}

// NakedEdges returns every face edge that is not shared with another face.
// Edge identity is tolerance-based and direction-insensitive.
func (p Polyface3D) NakedEdges() []LineSegment3D {
	var edges []LineSegment3D
	for _, face := range p.Faces {
		loops := append([][]Point3D{face.Boundary}, face.Holes...)
		for _, loop := range loops {
			for i, start := range loop {
				end := loop[(i+1)%len(loop)]
				edges = append(edges, LineSegment3D{Start: start, End: end})
			}
		}
	}

	var naked []LineSegment3D
	for i, edge := range edges {
		shared := false
		for j, other := range edges {
			if i == j {
				continue
			}
			if p.sameEdge(edge, other) {
				shared = true
				break
			}
		}
		if !shared {
			naked = append(naked, edge)
		}
	}
	return naked
}

// BoundaryFace returns a single Face3D built from the joined naked edges of
// the polyface. The largest closed loop becomes the boundary; any remaining
// closed loops become holes.
func (p Polyface3D) BoundaryFace() (Face3D, error) {
	polylines := JoinSegments(p.NakedEdges(), p.tolerance)

	var loops [][]Point3D
	for _, pl := range polylines {
		if !pl.Closed {
			continue
		}
		verts := RemoveDupVertices(pl.Vertices, p.tolerance)
		if len(verts) >= 3 {
			loops = append(loops, verts)
		}
	}
	if len(loops) == 0 {
		return Face3D{}, ErrDegenerateFace
	}

	// Largest loop is the outer boundary.
	largest := 0
	for i, loop := range loops {
		if loopArea(loop) > loopArea(loops[largest]) {
			largest = i
		}
	}
	boundary := loops[largest]
	holes := make([][]Point3D, 0, len(loops)-1)
	for i, loop := range loops {
		if i != largest {
			holes = append(holes, loop)
		}
	}
	return NewFace3D(boundary, holes...)
}

func (p Polyface3D) sameEdge(a, b LineSegment3D) bool {
	return p.alignedEdge(a, b) || p.alignedEdge(a, b.Reversed())
}

func (p Polyface3D) alignedEdge(a, b LineSegment3D) bool {
	return a.Start.IsEquivalent(b.Start, p.tolerance) &&
		a.End.IsEquivalent(b.End, p.tolerance)
}
