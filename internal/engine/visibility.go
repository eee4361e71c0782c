package engine

import (
	"github.com/KirkDiggler/manor-hunt/internal/entities"
)

// CanBeSeen is the ground truth for whether anyone can see the player.
// Same-room company always sees the player. Company in a neighboring room
// sees the player unless the pet shares the player's room or blocks that
// neighbor.
func CanBeSeen(g *Graph, player *entities.Player) bool {
	room, err := g.Room(player.RoomID)
	if err != nil {
		return false
	}
	if len(room.Occupants) > 1 {
		return true
	}
	return !room.HasPet && petFreeNeighborHasPlayers(g, room)
}

// ThinksCannotBeSeen is the player's own belief that it is unobserved.
// The player must be alone, and either no pet-free neighbor holds players
// or the pet is in the player's room.
func ThinksCannotBeSeen(g *Graph, player *entities.Player) bool {
	room, err := g.Room(player.RoomID)
	if err != nil {
		return false
	}
	if len(room.Occupants) != 1 {
		return false
	}
	return !petFreeNeighborHasPlayers(g, room) || room.HasPet
}

func petFreeNeighborHasPlayers(g *Graph, room *entities.Room) bool {
	for _, id := range room.Neighbors {
		neighbor := g.rooms[id]
		if !neighbor.HasPet && len(neighbor.Occupants) > 0 {
			return true
		}
	}
	return false
}
