// =============================================================================
// Honeybee 3DM - Rhino Geometry to Face3D
// =============================================================================
//
// Converts Rhino objects into the planar Face3D objects Honeybee works with.
// Breps and extrusions are carried in the 3dm file as render meshes; planar
// faces are rebuilt from edge segments or mesh naked edges so a wall modeled
// as one surface comes out as one face instead of a pile of triangles.
// Curved geometry stays meshed.
//
// =============================================================================

package converter

import (
	"fmt"
	"log/slog"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
	"github.com/ladybug-tools/honeybee-3dm/internal/rhino"
)

// ToFace3D converts a Rhino object into Face3D objects. Unsupported object
// types return (nil, nil) after a warning unless required is set, in which
// case they are an error.
func ToFace3D(obj rhino.Object, tolerance float64, required bool, log *slog.Logger) ([]geometry.Face3D, error) {
	switch geo := obj.Geometry.(type) {
	case rhino.Brep:
		if geo.IsSolid() {
			return solidToFace3Ds(geo, tolerance)
		}
		if geo.IsPlanar() && len(geo.Faces) == 1 {
			return planarBrepToFace3Ds(geo, tolerance, log)
		}
		return brepFacesToFace3Ds(geo, tolerance, log)
	case rhino.Extrusion:
		return extrusionToFace3Ds(geo, tolerance)
	case rhino.Mesh:
		return geo.ToMesh3D().ToFace3Ds(), nil
	default:
		if required {
			return nil, fmt.Errorf("converter: unsupported object type: %s",
				obj.Geometry.ObjectType())
		}
		log.Warn("unsupported object type is ignored",
			"type", obj.Geometry.ObjectType().String(),
			"id", obj.Attributes.ID.String())
		return nil, nil
	}
}

// planarBrepToFace3Ds rebuilds a planar single-face brep from its edges.
func planarBrepToFace3Ds(brep rhino.Brep, tolerance float64, log *slog.Logger) ([]geometry.Face3D, error) {
	mesh := brep.Faces[0].Mesh

	// Curved edges cannot be chained into a straight boundary; mesh first.
	for _, edge := range brep.Edges {
		if !edge.Linear {
			face, err := meshedBoundaryFace(brepMeshFaces(brep), tolerance)
			if err != nil {
				return nil, err
			}
			return []geometry.Face3D{face}, nil
		}
	}

	// Triangles and quads come out of the mesher already exact.
	if len(mesh.Vertices) == 3 || len(mesh.Vertices) == 4 {
		face, err := meshedBoundaryFace(brepMeshFaces(brep), tolerance)
		if err != nil {
			return nil, err
		}
		return []geometry.Face3D{face}, nil
	}

	segments := make([]geometry.LineSegment3D, len(brep.Edges))
	for i, edge := range brep.Edges {
		segments[i] = geometry.NewLineSegment(edge.Start, edge.End)
	}
	polylines := geometry.JoinSegments(segments, tolerance)

	if len(polylines) == 1 {
		boundary := geometry.RemoveDupVertices(polylines[0].Vertices, tolerance)
		face, err := geometry.NewFace3D(boundary)
		if err != nil {
			return nil, err
		}
		return []geometry.Face3D{face}, nil
	}

	return loopsToFace(polylines, brepMeshFaces(brep), tolerance, log)
}

// loopsToFace turns joined edge loops into one face with holes. The largest
// loop becomes the boundary. When the loops did not all close, or a hole
// touches the boundary, the raw mesh faces are used instead.
func loopsToFace(polylines []geometry.Polyline3D, meshFaces []geometry.Face3D,
	tolerance float64, log *slog.Logger) ([]geometry.Face3D, error) {

	loops := make([][]geometry.Point3D, 0, len(polylines))
	for _, pl := range polylines {
		if !pl.Closed {
			return meshFaces, nil
		}
		loops = append(loops, geometry.RemoveDupVertices(pl.Vertices, tolerance))
	}

	largest := 0
	largestFace := geometry.Face3D{Boundary: loops[0]}
	for i := 1; i < len(loops); i++ {
		candidate := geometry.Face3D{Boundary: loops[i]}
		if candidate.Area() > largestFace.Area() {
			largest, largestFace = i, candidate
		}
	}

	boundary := loops[largest]
	var holes [][]geometry.Point3D
	for i, loop := range loops {
		if i != largest {
			holes = append(holes, loop)
		}
	}

	// A hole that shares a point with the boundary cannot be represented as
	// a face with holes.
	for _, hole := range holes {
		for _, hp := range hole {
			for _, bp := range boundary {
				if hp.IsEquivalent(bp, tolerance) {
					log.Warn("a brep has holes that touch its boundary, the geometry will be meshed")
					return meshFaces, nil
				}
			}
		}
	}

	face, err := geometry.NewFace3D(boundary, holes...)
	if err != nil {
		return nil, err
	}
	return []geometry.Face3D{face}, nil
}

// brepFacesToFace3Ds converts a multi-face or curved brep face by face.
func brepFacesToFace3Ds(brep rhino.Brep, tolerance float64, log *slog.Logger) ([]geometry.Face3D, error) {
	var out []geometry.Face3D
	for _, bf := range brep.Faces {
		meshFaces := bf.Mesh.ToMesh3D().ToFace3Ds()
		if !bf.Planar {
			out = append(out, meshFaces...)
			continue
		}
		polyface := geometry.NewPolyface(meshFaces, tolerance)
		face, err := polyface.BoundaryFace()
		if err != nil {
			// Naked-edge recovery failed; keep the mesh triangles.
			out = append(out, meshFaces...)
			continue
		}
		out = append(out, face)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("converter: brep produced no faces")
	}
	return out, nil
}

// solidToFace3Ds converts a closed brep into the faces of its volume. Planar
// render meshes are merged back into single faces; curved ones contribute
// their triangles.
func solidToFace3Ds(brep rhino.Brep, tolerance float64) ([]geometry.Face3D, error) {
	var out []geometry.Face3D
	for _, bf := range brep.Faces {
		meshFaces := bf.Mesh.ToMesh3D().ToFace3Ds()
		if isPlanarGroup(meshFaces, tolerance) {
			face, err := meshedBoundaryFace(meshFaces, tolerance)
			if err != nil {
				out = append(out, meshFaces...)
				continue
			}
			out = append(out, face)
		} else {
			out = append(out, meshFaces...)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("converter: solid brep produced no faces")
	}
	return out, nil
}

// extrusionToFace3Ds converts an extrusion through its render mesh, merging
// each planar group of mesh faces into a single face.
func extrusionToFace3Ds(ext rhino.Extrusion, tolerance float64) ([]geometry.Face3D, error) {
	mesh := ext.RenderMesh().ToMesh3D()
	faces := mesh.ToFace3Ds()
	if len(faces) <= 1 {
		return faces, nil
	}

	// Group faces by normal direction.
	type group struct {
		normal geometry.Vector3D
		faces  []geometry.Face3D
	}
	var groups []*group
	for _, face := range faces {
		n := face.Normal()
		placed := false
		for _, g := range groups {
			if n.Sub(g.normal).Length() <= tolerance {
				g.faces = append(g.faces, face)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, &group{normal: n, faces: []geometry.Face3D{face}})
		}
	}

	var out []geometry.Face3D
	for _, g := range groups {
		if len(g.faces) == 1 {
			out = append(out, g.faces[0])
			continue
		}
		face, err := meshedBoundaryFace(g.faces, tolerance)
		if err != nil {
			out = append(out, g.faces...)
			continue
		}
		out = append(out, face)
	}
	return out, nil
}

// meshedBoundaryFace merges mesh faces into one face through polyface naked
// edges.
func meshedBoundaryFace(faces []geometry.Face3D, tolerance float64) (geometry.Face3D, error) {
	polyface := geometry.NewPolyface(faces, tolerance)
	return polyface.BoundaryFace()
}

// brepMeshFaces flattens every render mesh of a brep into Face3Ds.
func brepMeshFaces(brep rhino.Brep) []geometry.Face3D {
	var out []geometry.Face3D
	for _, bf := range brep.Faces {
		out = append(out, bf.Mesh.ToMesh3D().ToFace3Ds()...)
	}
	return out
}

// isPlanarGroup reports whether all faces share one normal direction.
func isPlanarGroup(faces []geometry.Face3D, tolerance float64) bool {
	if len(faces) == 0 {
		return false
	}
	first := faces[0].Normal()
	for _, face := range faces[1:] {
		if face.Normal().Sub(first).Length() > tolerance {
			return false
		}
	}
	return true
}
