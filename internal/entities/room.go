// Package entities provides core data structures for manor-hunt.
package entities

import (
	"fmt"
)

// Rect is an inclusive rectangle of map cells
type Rect struct {
	Top    int `json:"top" yaml:"top"`
	Left   int `json:"left" yaml:"left"`
	Bottom int `json:"bottom" yaml:"bottom"`
	Right  int `json:"right" yaml:"right"`
}

// Valid reports whether the top-left corner is strictly above and left of the bottom-right corner
func (r Rect) Valid() bool {
	return r.Top < r.Bottom && r.Left < r.Right
}

// Contains reports whether the cell at row, col lies inside the rectangle
func (r Rect) Contains(row, col int) bool {
	return row >= r.Top && row <= r.Bottom && col >= r.Left && col <= r.Right
}

// Adjacent reports whether two rectangles share a boundary segment of
// positive length. Their facing edges must be exactly one cell apart and
// the perpendicular ranges must overlap.
func (r Rect) Adjacent(other Rect) bool {
	rowsOverlap := r.Top <= other.Bottom && other.Top <= r.Bottom
	colsOverlap := r.Left <= other.Right && other.Left <= r.Right

	sideBySide := r.Right+1 == other.Left || other.Right+1 == r.Left
	stacked := r.Bottom+1 == other.Top || other.Bottom+1 == r.Top

	return (sideBySide && rowsOverlap) || (stacked && colsOverlap)
}

// String returns the corners as "(top,left)-(bottom,right)"
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Top, r.Left, r.Bottom, r.Right)
}

// Item is a one-shot weapon lying in a room or held by a player
type Item struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Damage int    `json:"damage"`
}

// Equal compares name and damage; the id is not part of an item's identity
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.Name == other.Name && i.Damage == other.Damage
}

// String returns the item as "<name> <damage>"
func (i *Item) String() string {
	return fmt.Sprintf("%s %d", i.Name, i.Damage)
}

// Room is one rectangular space of the map.
// Id, name and bounds are fixed for a session; items, occupants and the pet flag change.
type Room struct {
	ID        int
	Name      string
	Bounds    Rect
	Neighbors []int    // room ids in ascending order
	Items     []*Item  // in placement order
	Occupants []string // player names in arrival order
	HasPet    bool
}

// HasItems reports whether anything can be picked up here
func (r *Room) HasItems() bool {
	return len(r.Items) > 0
}

// ItemNames returns the names of the items in the room
func (r *Room) ItemNames() []string {
	names := make([]string, len(r.Items))
	for i, item := range r.Items {
		names[i] = item.Name
	}
	return names
}

// FindItem returns the item with the given id, or nil
func (r *Room) FindItem(itemID int) *Item {
	for _, item := range r.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

// Label returns the room as "<name>-<id>"
func (r *Room) Label() string {
	return fmt.Sprintf("%s-%d", r.Name, r.ID)
}

// Clone returns a deep copy. Item pointers are shared since items are never mutated.
func (r *Room) Clone() *Room {
	return &Room{
		ID:        r.ID,
		Name:      r.Name,
		Bounds:    r.Bounds,
		Neighbors: append([]int(nil), r.Neighbors...),
		Items:     append([]*Item(nil), r.Items...),
		Occupants: append([]string(nil), r.Occupants...),
		HasPet:    r.HasPet,
	}
}
