package honeybee

import (
	"fmt"

	"github.com/ladybug-tools/honeybee-3dm/internal/geometry"
)

// Room is a closed volume bounded by typed faces.
type Room struct {
	Identifier  string
	DisplayName string
	Faces       []Face
}

// RoomFromFaces builds a room from the faces of a closed volume. Each face
// gets its type from its normal direction, the way Honeybee types faces when
// a room is created from a polyface.
func RoomFromFaces(identifier string, faces []geometry.Face3D, tolerance float64) (Room, error) {
	if len(faces) < 4 {
		return Room{}, fmt.Errorf("honeybee: room %q needs at least 4 faces, got %d",
			identifier, len(faces))
	}
	room := Room{
		Identifier:  CleanString(identifier),
		DisplayName: identifier,
	}
	for i, geo := range faces {
		face := NewFace(
			fmt.Sprintf("%s_Face%d", identifier, i),
			geo,
			TypeFromNormal(geo.Normal()),
			tolerance,
		)
		room.Faces = append(room.Faces, face)
	}
	return room, nil
}
