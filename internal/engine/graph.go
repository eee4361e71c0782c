// Package engine holds the room graph and the rules evaluated over it:
// visibility, pet patrols and room descriptions.
package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// Graph owns every room of a world, indexed by id.
// Adjacency is computed once when the graph is built.
type Graph struct {
	rooms []*entities.Room
}

// NewGraph builds rooms from their descriptors; the id of each room is its index
func NewGraph(specs []entities.RoomSpec) (*Graph, error) {
	if len(specs) == 0 {
		return nil, errors.InvalidArgument("at least one room is required")
	}

	names := mapset.New[string]()
	bounds := mapset.New[entities.Rect]()
	rooms := make([]*entities.Room, len(specs))

	for i, spec := range specs {
		if spec.Name == "" {
			return nil, errors.InvalidArgumentf("room %d has no name", i)
		}
		if !spec.Bounds.Valid() {
			return nil, errors.InvalidArgumentf("room %q has invalid bounds %s", spec.Name, spec.Bounds)
		}
		if names.Has(spec.Name) {
			return nil, errors.InvalidArgumentf("duplicate room name %q", spec.Name)
		}
		if bounds.Has(spec.Bounds) {
			return nil, errors.InvalidArgumentf("room %q duplicates bounds %s", spec.Name, spec.Bounds)
		}
		names.Put(spec.Name)
		bounds.Put(spec.Bounds)

		rooms[i] = &entities.Room{
			ID:     i,
			Name:   spec.Name,
			Bounds: spec.Bounds,
		}
	}

	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if rooms[i].Bounds.Adjacent(rooms[j].Bounds) {
				rooms[i].Neighbors = append(rooms[i].Neighbors, j)
				rooms[j].Neighbors = append(rooms[j].Neighbors, i)
			}
		}
	}

	return &Graph{rooms: rooms}, nil
}

// Len returns the number of rooms
func (g *Graph) Len() int {
	return len(g.rooms)
}

// Has reports whether id names a room
func (g *Graph) Has(id int) bool {
	return id >= 0 && id < len(g.rooms)
}

// Room returns the room with the given id
func (g *Graph) Room(id int) (*entities.Room, error) {
	if !g.Has(id) {
		return nil, errors.InvalidArgumentf("room %d does not exist", id)
	}
	return g.rooms[id], nil
}

// Rooms returns every room in id order
func (g *Graph) Rooms() []*entities.Room {
	return append([]*entities.Room(nil), g.rooms...)
}

// Names returns every room name in id order
func (g *Graph) Names() []string {
	names := make([]string, len(g.rooms))
	for i, room := range g.rooms {
		names[i] = room.Name
	}
	return names
}

// AreNeighbors reports whether two rooms share a wall
func (g *Graph) AreNeighbors(a, b int) bool {
	if !g.Has(a) || !g.Has(b) {
		return false
	}
	for _, id := range g.rooms[a].Neighbors {
		if id == b {
			return true
		}
	}
	return false
}

// RoomAt returns the room covering a map cell
func (g *Graph) RoomAt(row, col int) (*entities.Room, bool) {
	for _, room := range g.rooms {
		if room.Bounds.Contains(row, col) {
			return room, true
		}
	}
	return nil, false
}

// Clone returns an independent copy of topology, items, occupants and the pet flag
func (g *Graph) Clone() *Graph {
	rooms := make([]*entities.Room, len(g.rooms))
	for i, room := range g.rooms {
		rooms[i] = room.Clone()
	}
	return &Graph{rooms: rooms}
}

// Enter appends a player to a room's occupants
func (g *Graph) Enter(roomID int, name string) error {
	room, err := g.Room(roomID)
	if err != nil {
		return err
	}
	room.Occupants = append(room.Occupants, name)
	return nil
}

// Leave removes a player from a room's occupants
func (g *Graph) Leave(roomID int, name string) error {
	room, err := g.Room(roomID)
	if err != nil {
		return err
	}
	for i, occupant := range room.Occupants {
		if occupant == name {
			room.Occupants = append(room.Occupants[:i:i], room.Occupants[i+1:]...)
			return nil
		}
	}
	return errors.InvalidArgumentf("%s is not in %s", name, room.Label())
}

// ClearOccupants empties every room of players
func (g *Graph) ClearOccupants() {
	for _, room := range g.rooms {
		room.Occupants = nil
	}
}

// PlacePet moves the pet flag so that only roomID carries it
func (g *Graph) PlacePet(roomID int) error {
	if !g.Has(roomID) {
		return errors.InvalidArgumentf("room %d does not exist", roomID)
	}
	for _, room := range g.rooms {
		room.HasPet = room.ID == roomID
	}
	return nil
}

// AddItem places an item in a room
func (g *Graph) AddItem(roomID int, item *entities.Item) error {
	room, err := g.Room(roomID)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	room.Items = append(room.Items, item)
	return nil
}

// TakeItem removes an item from a room and returns it
func (g *Graph) TakeItem(roomID, itemID int) (*entities.Item, bool) {
	if !g.Has(roomID) {
		return nil, false
	}
	room := g.rooms[roomID]
	for i, item := range room.Items {
		if item.ID == itemID {
			room.Items = append(room.Items[:i:i], room.Items[i+1:]...)
			return item, true
		}
	}
	return nil, false
}
