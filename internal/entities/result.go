package entities

import (
	"strings"

	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// Result is the read-only projection of a world handed to presentation code.
// It is rebuilt after every mutating action.
type Result struct {
	status            string
	lastAction        string
	roomDescription   string
	lookAround        string
	playerDescription string
	roomNames         []string
	heldItems         []string
	roomItems         []string
	mapImage          string
}

// Status is the turn line or the end of game message
func (r *Result) Status() string { return r.status }

// LastAction is the outcome text of the latest action
func (r *Result) LastAction() string { return r.lastAction }

// RoomDescription is the long description of the current player's room
func (r *Result) RoomDescription() string { return r.roomDescription }

// LookAround is the latest look-around view
func (r *Result) LookAround() string { return r.lookAround }

// PlayerDescription describes the current player
func (r *Result) PlayerDescription() string { return r.playerDescription }

// MapImage is the rendered map
func (r *Result) MapImage() string { return r.mapImage }

// RoomNames lists every room name in id order
func (r *Result) RoomNames() []string { return append([]string(nil), r.roomNames...) }

// HeldItems lists the current player's item names
func (r *Result) HeldItems() []string { return append([]string(nil), r.heldItems...) }

// RoomItems lists the current room's item names
func (r *Result) RoomItems() []string { return append([]string(nil), r.roomItems...) }

// SetStatus sets the status text
func (r *Result) SetStatus(text string) error {
	return setText(&r.status, "status", text)
}

// SetLastAction sets the last action text
func (r *Result) SetLastAction(text string) error {
	return setText(&r.lastAction, "last action", text)
}

// SetRoomDescription sets the current room description
func (r *Result) SetRoomDescription(text string) error {
	return setText(&r.roomDescription, "room description", text)
}

// SetLookAround sets the look-around text
func (r *Result) SetLookAround(text string) error {
	return setText(&r.lookAround, "look around", text)
}

// SetPlayerDescription sets the current player description
func (r *Result) SetPlayerDescription(text string) error {
	return setText(&r.playerDescription, "player description", text)
}

// SetMapImage sets the rendered map
func (r *Result) SetMapImage(text string) error {
	return setText(&r.mapImage, "map image", text)
}

// SetRoomNames sets the room name list
func (r *Result) SetRoomNames(names []string) error {
	return setList(&r.roomNames, "room names", names)
}

// SetHeldItems sets the held item name list
func (r *Result) SetHeldItems(names []string) error {
	return setList(&r.heldItems, "held items", names)
}

// SetRoomItems sets the room item name list
func (r *Result) SetRoomItems(names []string) error {
	return setList(&r.roomItems, "room items", names)
}

// Clone returns an independent copy
func (r *Result) Clone() *Result {
	out := *r
	out.roomNames = append([]string(nil), r.roomNames...)
	out.heldItems = append([]string(nil), r.heldItems...)
	out.roomItems = append([]string(nil), r.roomItems...)
	return &out
}

func setText(dst *string, field, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.InvalidArgumentf("%s text is required", field)
	}
	*dst = text
	return nil
}

func setList(dst *[]string, field string, names []string) error {
	if names == nil {
		return errors.InvalidArgumentf("%s list is required", field)
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return errors.InvalidArgumentf("%s entry %d is empty", field, i)
		}
	}
	*dst = append([]string(nil), names...)
	return nil
}
