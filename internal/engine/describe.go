package engine

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
)

// RoomDescription is the per-turn view of a room: its contents and the names of its neighbors
func RoomDescription(g *Graph, roomID int, petName string) (string, error) {
	room, err := g.Room(roomID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Your current room: %s\n", room.Label())
	writeContents(&b, room, petName, "")

	labels := make([]string, len(room.Neighbors))
	for i, id := range room.Neighbors {
		labels[i] = g.rooms[id].Label()
	}
	fmt.Fprintf(&b, "Neighbors: %s", orNone(labels))

	return b.String(), nil
}

// LookAround is what a player sees from a room. Neighbors holding the pet
// are listed by name with their contents hidden.
func LookAround(g *Graph, roomID int, petName string) (string, error) {
	return describe(g, roomID, petName, fmt.Sprintf("Looking around from %s", g.label(roomID)), true)
}

// RoomInfo is the full description of a room with nothing hidden
func RoomInfo(g *Graph, roomID int, petName string) (string, error) {
	return describe(g, roomID, petName, g.label(roomID), false)
}

func describe(g *Graph, roomID int, petName, title string, hidePetRooms bool) (string, error) {
	room, err := g.Room(roomID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	writeContents(&b, room, petName, "")

	if len(room.Neighbors) == 0 {
		b.WriteString("Neighbors: none")
		return b.String(), nil
	}

	b.WriteString("Neighbors:\n")
	for _, id := range room.Neighbors {
		neighbor := g.rooms[id]
		fmt.Fprintf(&b, "- %s\n", neighbor.Label())
		if hidePetRooms && neighbor.HasPet {
			continue
		}
		writeContents(&b, neighbor, petName, "  ")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func writeContents(b *strings.Builder, room *entities.Room, petName, indent string) {
	items := make([]string, len(room.Items))
	for i, item := range room.Items {
		items[i] = item.String()
	}
	fmt.Fprintf(b, "%sItems: %s\n", indent, orNone(items))
	fmt.Fprintf(b, "%sPlayers: %s\n", indent, orNone(room.Occupants))
	if room.HasPet {
		fmt.Fprintf(b, "%sPet: %s\n", indent, petName)
	}
}

func (g *Graph) label(roomID int) string {
	if !g.Has(roomID) {
		return ""
	}
	return g.rooms[roomID].Label()
}

func orNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
