// Package testutils provides world fixtures shared by package tests
package testutils

import (
	"fmt"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
)

const (
	// TestWorldName is the name of every fixture world
	TestWorldName = "Test Manor"
	// TestTargetName is the target of every fixture world
	TestTargetName = "Doctor Lucky"
	// TestPetName is the pet of every fixture world
	TestPetName = "Fortune the Cat"
)

var roomNames = []string{
	"Hall", "Kitchen", "Library", "Study", "Cellar",
	"Parlor", "Gallery", "Armory", "Chapel", "Conservatory",
}

// RoomName returns the fixture name of the room with the given id
func RoomName(id int) string {
	if id < len(roomNames) {
		return roomNames[id]
	}
	return fmt.Sprintf("Room %d", id)
}

// LineWorldSpec creates rooms 0..n-1 side by side so that each room
// neighbors only the rooms with adjacent ids. Room 0 holds a Knife (3) and,
// when it exists, room 1 holds a Rope (2).
func LineWorldSpec(rooms, targetHealth int) *entities.WorldSpec {
	spec := &entities.WorldSpec{
		Rows:         3,
		Cols:         3 * rooms,
		Name:         TestWorldName,
		TargetName:   TestTargetName,
		TargetHealth: targetHealth,
		PetName:      TestPetName,
		RoomCount:    rooms,
	}

	for i := 0; i < rooms; i++ {
		spec.Rooms = append(spec.Rooms, entities.RoomSpec{
			Name:   RoomName(i),
			Bounds: entities.Rect{Top: 0, Left: 3 * i, Bottom: 2, Right: 3*i + 2},
		})
	}

	spec.Items = append(spec.Items, entities.ItemSpec{RoomID: 0, Damage: 3, Name: "Knife"})
	if rooms > 1 {
		spec.Items = append(spec.Items, entities.ItemSpec{RoomID: 1, Damage: 2, Name: "Rope"})
	}
	spec.ItemCount = len(spec.Items)

	return spec
}

// SingleRoomSpec creates a world with one room holding a Knife (3)
func SingleRoomSpec(targetHealth int) *entities.WorldSpec {
	return LineWorldSpec(1, targetHealth)
}

// IslandWorldSpec creates a line of rooms plus one room that touches none of them
func IslandWorldSpec(rooms, targetHealth int) *entities.WorldSpec {
	spec := LineWorldSpec(rooms, targetHealth)
	spec.Rows = 7
	spec.Rooms = append(spec.Rooms, entities.RoomSpec{
		Name:   RoomName(rooms),
		Bounds: entities.Rect{Top: 4, Left: 0, Bottom: 6, Right: 2},
	})
	spec.RoomCount = len(spec.Rooms)
	return spec
}
