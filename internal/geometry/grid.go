package geometry

import "math"

// GridMesh subdivides a planar face into a grid of quads of roughly
// sizeX by sizeY, offset from the face along its normal. Cells whose center
// falls outside the face boundary, or inside a hole, are dropped. The result
// feeds sensor-grid generation; an empty mesh means the face was too small
// for the requested grid size.
func GridMesh(face Face3D, sizeX, sizeY, offset float64) Mesh3D {
	u, v := face.planeAxes()
	origin := face.Boundary[0]
	normal := face.Normal()

	// Bounding box of the face in plane coordinates.
	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)
	for _, pt := range face.Boundary {
		pu, pv := project(pt, origin, u, v)
		minU = math.Min(minU, pu)
		minV = math.Min(minV, pv)
		maxU = math.Max(maxU, pu)
		maxV = math.Max(maxV, pv)
	}

	nu := int(math.Floor((maxU - minU) / sizeX))
	nv := int(math.Floor((maxV - minV) / sizeY))
	if nu < 1 || nv < 1 {
		return Mesh3D{}
	}

	// Center the grid within the bounding box.
	startU := minU + ((maxU-minU)-float64(nu)*sizeX)/2
	startV := minV + ((maxV-minV)-float64(nv)*sizeY)/2

	unproject := func(pu, pv float64) Point3D {
		return origin.
			Add(u.Scale(pu)).
			Add(v.Scale(pv)).
			Add(normal.Scale(offset))
	}

	var mesh Mesh3D
	vertexIndex := map[[2]int]int{}
	vertexAt := func(i, j int) int {
		key := [2]int{i, j}
		if idx, ok := vertexIndex[key]; ok {
			return idx
		}
		pt := unproject(startU+float64(i)*sizeX, startV+float64(j)*sizeY)
		mesh.Vertices = append(mesh.Vertices, pt)
		vertexIndex[key] = len(mesh.Vertices) - 1
		return vertexIndex[key]
	}

	for i := 0; i < nu; i++ {
		for j := 0; j < nv; j++ {
			cu := startU + (float64(i)+0.5)*sizeX
			cv := startV + (float64(j)+0.5)*sizeY
			center := origin.Add(u.Scale(cu)).Add(v.Scale(cv))
			if !face.IsPointInside(center) {
				continue
			}
			a := vertexAt(i, j)
			b := vertexAt(i+1, j)
			c := vertexAt(i+1, j+1)
			d := vertexAt(i, j+1)
			mesh.Faces = append(mesh.Faces, MeshFace{A: a, B: b, C: c, D: d})
		}
	}
	return mesh
}
