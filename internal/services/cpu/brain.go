// Package cpu decides and executes the turns of CPU controlled players.
package cpu

//go:generate mockgen -destination=mock/mock_actions.go -package=cpumock github.com/KirkDiggler/manor-hunt/internal/services/cpu Actions

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
	"github.com/KirkDiggler/manor-hunt/internal/pkg/random"
)

// Actions is the world surface a CPU player acts through.
// Each call performs one action for the active player without advancing the turn
// and returns its outcome text. Soft failures are outcome text, not errors.
type Actions interface {
	Move(ctx context.Context, roomID int) (string, error)
	LookAround(ctx context.Context) (string, error)
	MovePet(ctx context.Context, roomID int) (string, error)
	Pick(ctx context.Context, itemID int) (string, error)
	AttemptKill(ctx context.Context, itemID int) (string, error)
}

// Brain chooses and executes one action per CPU turn
type Brain interface {
	TakeTurn(ctx context.Context, input *TurnInput) (*TurnOutput, error)
}

// Action is what a CPU player did with its turn
type Action int

const (
	ActionMove Action = iota
	ActionLook
	ActionMovePet
	ActionPick
	ActionKill
)

// String returns the action name used in logs
func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionLook:
		return "look"
	case ActionMovePet:
		return "move_pet"
	case ActionPick:
		return "pick"
	case ActionKill:
		return "kill"
	default:
		return "unknown"
	}
}

// TurnInput is everything the brain may consult for one turn
type TurnInput struct {
	Player          *entities.Player
	Room            *entities.Room
	TargetRoomID    int
	BelievesHidden  bool // the player's own belief that nobody can see it
	CandidateRoomID int  // where the pet goes if the brain chooses to move it
	Actions         Actions
}

// Validate ensures the turn can be played
func (i *TurnInput) Validate() error {
	if i == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if i.Player == nil {
		vb.RequiredField("Player")
	}
	if i.Room == nil {
		vb.RequiredField("Room")
	}
	if i.Actions == nil {
		vb.RequiredField("Actions")
	}
	return vb.Build()
}

// TurnOutput reports what the brain did
type TurnOutput struct {
	Action  Action
	Outcome string // prefixed with the player's name
}

// Config holds the dependencies for the brain
type Config struct {
	Random random.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Random == nil {
		vb.RequiredField("Random")
	}

	return vb.Build()
}

type brain struct {
	random random.Source
}

// New creates a brain that draws its choices from cfg.Random
func New(cfg *Config) (Brain, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &brain{random: cfg.Random}, nil
}

// TakeTurn attacks when sharing a room with the target while believing itself
// unseen. Otherwise it draws one of move, look, move pet and, when the room
// holds items, pick.
func (b *brain) TakeTurn(ctx context.Context, input *TurnInput) (*TurnOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.Room.ID == input.TargetRoomID && input.BelievesHidden {
		return b.kill(ctx, input)
	}

	maxAction := int(ActionMovePet)
	if input.Room.HasItems() {
		maxAction = int(ActionPick)
	}

	drawn, err := b.random.NextInt(int(ActionMove), maxAction)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw cpu action")
	}
	action := Action(drawn)

	slog.Debug("CPU action drawn",
		"player", input.Player.Name,
		"room_id", input.Room.ID,
		"action", action.String(),
	)

	switch action {
	case ActionMove:
		return b.move(ctx, input)
	case ActionLook:
		return b.finish(input, action)(input.Actions.LookAround(ctx))
	case ActionMovePet:
		return b.finish(input, action)(input.Actions.MovePet(ctx, input.CandidateRoomID))
	default:
		return b.pick(ctx, input)
	}
}

func (b *brain) kill(ctx context.Context, input *TurnInput) (*TurnOutput, error) {
	itemID := entities.EyePokeItemID
	if weapon := input.Player.StrongestItem(); weapon != nil {
		itemID = weapon.ID
	}

	slog.Debug("CPU attempting kill",
		"player", input.Player.Name,
		"room_id", input.Room.ID,
		"item_id", itemID,
	)

	return b.finish(input, ActionKill)(input.Actions.AttemptKill(ctx, itemID))
}

func (b *brain) move(ctx context.Context, input *TurnInput) (*TurnOutput, error) {
	neighbors := input.Room.Neighbors
	if len(neighbors) == 0 {
		return &TurnOutput{
			Action:  ActionMove,
			Outcome: fmt.Sprintf("%s: cannot move, %s has no neighbors", input.Player.Name, input.Room.Label()),
		}, nil
	}

	idx, err := b.random.NextInt(0, len(neighbors)-1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw neighbor")
	}

	return b.finish(input, ActionMove)(input.Actions.Move(ctx, neighbors[idx]))
}

func (b *brain) pick(ctx context.Context, input *TurnInput) (*TurnOutput, error) {
	items := input.Room.Items
	idx, err := b.random.NextInt(0, len(items)-1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw item")
	}

	return b.finish(input, ActionPick)(input.Actions.Pick(ctx, items[idx].ID))
}

// finish turns an action's result into the brain's output
func (b *brain) finish(input *TurnInput, action Action) func(string, error) (*TurnOutput, error) {
	return func(outcome string, err error) (*TurnOutput, error) {
		if err != nil {
			return nil, errors.Wrapf(err, "cpu %s failed", action)
		}
		return &TurnOutput{
			Action:  action,
			Outcome: fmt.Sprintf("%s: %s", input.Player.Name, outcome),
		}, nil
	}
}
