package entities

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported through core.Entity
const (
	EntityTypePlayer = "player"
	EntityTypePet    = "pet"
	EntityTypeTarget = "target"
	EntityTypeRoom   = "room"
)

// GetID returns the player's name
func (p *Player) GetID() string {
	return p.Name
}

// GetType returns the entity type for rpg-toolkit
func (p *Player) GetType() string {
	return EntityTypePlayer
}

// GetID returns the pet's name
func (p *Pet) GetID() string {
	return p.Name
}

// GetType returns the entity type for rpg-toolkit
func (p *Pet) GetType() string {
	return EntityTypePet
}

// GetID returns the target's name
func (t *Target) GetID() string {
	return t.Name
}

// GetType returns the entity type for rpg-toolkit
func (t *Target) GetType() string {
	return EntityTypeTarget
}

// GetID returns the room id in decimal
func (r *Room) GetID() string {
	return strconv.Itoa(r.ID)
}

// GetType returns the entity type for rpg-toolkit
func (r *Room) GetType() string {
	return EntityTypeRoom
}

// Compile-time check that our entities implement core.Entity
var (
	_ core.Entity = (*Player)(nil)
	_ core.Entity = (*Pet)(nil)
	_ core.Entity = (*Target)(nil)
	_ core.Entity = (*Room)(nil)
)
