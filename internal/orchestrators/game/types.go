package game

import (
	"time"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
)

// Phase is the stage of a session
type Phase int

const (
	// PhaseNotStarted accepts players but no turns
	PhaseNotStarted Phase = iota
	// PhaseInProgress accepts turns
	PhaseInProgress
	// PhaseOver accepts only reset, reload and queries
	PhaseOver
)

// String returns the phase name used in logs
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseInProgress:
		return "in_progress"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// AddHumanPlayerInput defines the request for adding a human player
type AddHumanPlayerInput struct {
	Name   string
	RoomID int
}

// AddPlayerOutput reports the player that joined
type AddPlayerOutput struct {
	Player  *entities.Player
	Message string
	Result  *entities.Result
}

// MoveHumanInput defines the request for moving to a neighboring room
type MoveHumanInput struct {
	RoomID int
}

// MoveHumanToPointInput defines the request for moving to the room covering a map cell
type MoveHumanToPointInput struct {
	Row int
	Col int
}

// PickItemInput defines the request for picking up an item
type PickItemInput struct {
	ItemID int
}

// MovePetInput defines the request for relocating the pet
type MovePetInput struct {
	RoomID int
}

// AttemptKillInput defines the request for attacking the target.
// ItemID is entities.EyePokeItemID for a bare-handed attack.
type AttemptKillInput struct {
	ItemID int
}

// ActionOutput reports the outcome of a turn action
type ActionOutput struct {
	Message  string
	Advanced bool // whether the action used up the turn
	Result   *entities.Result
}

// ReloadInput defines the request for rebuilding the world
type ReloadInput struct {
	Spec *entities.WorldSpec
}

// GetResultOutput holds the current snapshot
type GetResultOutput struct {
	Result *entities.Result
}

// GetRoomInfoInput defines the request for a full room description
type GetRoomInfoInput struct {
	RoomID int
}

// GetRoomInfoOutput holds a full room description
type GetRoomInfoOutput struct {
	Info string
}

// GetPlayerInfoInput defines the request for a player description
type GetPlayerInfoInput struct {
	Name string
}

// GetPlayerInfoOutput holds a player description
type GetPlayerInfoOutput struct {
	Info    string
	RoomID  int
	Control entities.Control
}

// SeatSummary is one roster entry of a summary
type SeatSummary struct {
	Name     string
	Control  entities.Control
	RoomID   int
	Capacity int
	Items    []string
}

// SummaryOutput is a copy of the whole session state
type SummaryOutput struct {
	SessionID string
	WorldName string
	Rows      int
	Cols      int
	Rooms     []*entities.Room
	Patrol    []int
	NextStop  int
	Seats     []SeatSummary
	Target    entities.Target
	Pet       entities.Pet
	Turn      int
	MaxTurns  int
	Phase     Phase
	Winner    string
	LoadedAt  time.Time
	StartedAt time.Time // zero until the game starts
}
