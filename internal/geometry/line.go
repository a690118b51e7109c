package geometry

// LineSegment3D is a straight segment between two points.
type LineSegment3D struct {
	Start, End Point3D
}

// NewLineSegment creates a segment from its end points.
func NewLineSegment(start, end Point3D) LineSegment3D {
	return LineSegment3D{Start: start, End: end}
}

// Reversed returns the segment with its direction flipped.
func (l LineSegment3D) Reversed() LineSegment3D {
	return LineSegment3D{Start: l.End, End: l.Start}
}

// Polyline3D is an ordered run of vertices. A polyline is closed when its
// first and last vertices are equivalent within the tolerance it was joined
// at.
type Polyline3D struct {
	Vertices []Point3D

	// Closed marks polylines whose segments formed a loop during joining.
	Closed bool
}

// JoinSegments chains loose line segments into polylines. Segments are
// consumed greedily: a polyline grows at either end while a remaining segment
// has an end point within tolerance, and closes when its two ends meet. The
// result contains closed loops first; open runs (left over when the input
// does not form loops) follow them.
//
// This mirrors the joining behavior the translation relies on when it
// rebuilds a face boundary from brep edges or polyface naked edges.
func JoinSegments(segments []LineSegment3D, tolerance float64) []Polyline3D {
	remaining := make([]LineSegment3D, len(segments))
	copy(remaining, segments)

	var closed, open []Polyline3D

	for len(remaining) > 0 {
		// Seed a run with the first remaining segment.
		seg := remaining[0]
		remaining = remaining[1:]
		run := []Point3D{seg.Start, seg.End}

		grown := true
		for grown && len(remaining) > 0 {
			grown = false
			head, tail := run[0], run[len(run)-1]
			for i, s := range remaining {
				switch {
				case s.Start.IsEquivalent(tail, tolerance):
					run = append(run, s.End)
				case s.End.IsEquivalent(tail, tolerance):
					run = append(run, s.Start)
				case s.End.IsEquivalent(head, tolerance):
					run = append([]Point3D{s.Start}, run...)
				case s.Start.IsEquivalent(head, tolerance):
					run = append([]Point3D{s.End}, run...)
				default:
					continue
				}
				remaining = append(remaining[:i], remaining[i+1:]...)
				grown = true
				break
			}
		}

		isClosed := len(run) > 3 && run[0].IsEquivalent(run[len(run)-1], tolerance)
		if isClosed {
			// Drop the duplicated closing vertex.
			run = run[:len(run)-1]
			closed = append(closed, Polyline3D{Vertices: run, Closed: true})
		} else {
			open = append(open, Polyline3D{Vertices: run})
		}
	}

	return append(closed, open...)
}
