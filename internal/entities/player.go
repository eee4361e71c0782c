package entities

import (
	"fmt"
	"strings"
)

// EyePokeItemID selects the bare-handed attack that needs no item
const EyePokeItemID = -1

// EyePokeDamage is the damage dealt by an eye poke
const EyePokeDamage = 1

// Player is a human or CPU controlled hunter. Players are identified by name.
type Player struct {
	Name     string
	RoomID   int
	Capacity int     // 1 to 5, fixed at creation
	Items    []*Item // in pickup order
}

// Equal compares players by name
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Name == other.Name
}

// CanCarry reports whether the player has room for another item
func (p *Player) CanCarry() bool {
	return len(p.Items) < p.Capacity
}

// Holds reports whether the player carries the item with the given id
func (p *Player) Holds(itemID int) bool {
	return p.FindItem(itemID) != nil
}

// FindItem returns the held item with the given id, or nil
func (p *Player) FindItem(itemID int) *Item {
	for _, item := range p.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

// Discard removes the held item with the given id and returns it
func (p *Player) Discard(itemID int) *Item {
	for i, item := range p.Items {
		if item.ID == itemID {
			p.Items = append(p.Items[:i:i], p.Items[i+1:]...)
			return item
		}
	}
	return nil
}

// StrongestItem returns the highest damage item, the earliest picked on ties,
// or nil for an empty-handed player
func (p *Player) StrongestItem() *Item {
	var best *Item
	for _, item := range p.Items {
		if best == nil || item.Damage > best.Damage {
			best = item
		}
	}
	return best
}

// ItemNames returns the names of the held items
func (p *Player) ItemNames() []string {
	names := make([]string, len(p.Items))
	for i, item := range p.Items {
		names[i] = item.Name
	}
	return names
}

// WeaponChoices lists the attacks available to the player as "<id>.<name>",
// starting with the eye poke
func (p *Player) WeaponChoices() []string {
	choices := make([]string, 0, len(p.Items)+1)
	choices = append(choices, fmt.Sprintf("%d.eye poke", EyePokeItemID))
	for _, item := range p.Items {
		choices = append(choices, fmt.Sprintf("%d.%s", item.ID, item.Name))
	}
	return choices
}

// Description returns the player's name, capacity and held items
func (p *Player) Description() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, max item: %d", p.Name, p.Capacity)
	for _, item := range p.Items {
		fmt.Fprintf(&b, "\n  > %s", item)
	}
	return b.String()
}

// Clone returns a copy that shares the immutable items
func (p *Player) Clone() *Player {
	return &Player{
		Name:     p.Name,
		RoomID:   p.RoomID,
		Capacity: p.Capacity,
		Items:    append([]*Item(nil), p.Items...),
	}
}

// Pet is the target's companion. Rooms holding it hide their contents from neighbors.
type Pet struct {
	Name   string
	RoomID int
}

// Target is the character the players hunt
type Target struct {
	Name      string
	Health    int
	MaxHealth int
	RoomID    int
}

// NewTarget creates a target at full health in room 0
func NewTarget(name string, health int) *Target {
	return &Target{
		Name:      name,
		Health:    health,
		MaxHealth: health,
	}
}

// Hurt lowers health by damage, never below zero, and returns the remaining health
func (t *Target) Hurt(damage int) int {
	if damage < 0 {
		damage = 0
	}
	t.Health -= damage
	if t.Health < 0 {
		t.Health = 0
	}
	return t.Health
}

// Dead reports whether the target has no health left
func (t *Target) Dead() bool {
	return t.Health == 0
}

// Advance moves the target to the next room id, wrapping after the last
func (t *Target) Advance(totalRooms int) {
	if totalRooms <= 0 {
		return
	}
	t.RoomID = (t.RoomID + 1) % totalRooms
}

// Restore returns the target to full health in room 0
func (t *Target) Restore() {
	t.Health = t.MaxHealth
	t.RoomID = 0
}

// String returns "<name>'s health is <health>"
func (t *Target) String() string {
	return fmt.Sprintf("%s's health is %d", t.Name, t.Health)
}
