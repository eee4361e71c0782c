package game

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
	"github.com/KirkDiggler/manor-hunt/internal/services/cpu"
)

const (
	minCapacity = 1
	maxCapacity = 5

	// maxNameDraws bounds the retries for a CPU name nobody else holds
	maxNameDraws = 10
)

var playerNamePattern = regexp.MustCompile(`^[A-Za-z0-9' _]+$`)

// Validate checks the name and room of a new human player
func (i *AddHumanPlayerInput) Validate() error {
	if i == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Name", i.Name, vb)
	errors.ValidatePattern("Name", i.Name, playerNamePattern, "letters, digits, apostrophes, underscores and spaces", vb)
	errors.ValidateMin("RoomID", i.RoomID, 0, vb)
	return vb.Build()
}

// AddHumanPlayer seats a caller controlled player before the game starts
func (o *orchestrator) AddHumanPlayer(ctx context.Context, input *AddHumanPlayerInput) (*AddPlayerOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	w := o.w
	if !w.graph.Has(input.RoomID) {
		return nil, errors.InvalidArgumentf("room %d does not exist", input.RoomID)
	}
	if err := o.checkJoinable(); err != nil {
		return nil, err
	}
	if w.findSeat(input.Name) != nil {
		return nil, errors.InvalidArgumentf("a player named %q already exists", input.Name)
	}

	capacity, err := o.random.NextInt(minCapacity, maxCapacity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw item capacity")
	}

	return o.seat(ctx, &entities.Seat{
		Player: &entities.Player{
			Name:     input.Name,
			RoomID:   input.RoomID,
			Capacity: capacity,
			Items:    []*entities.Item{},
		},
		Control: entities.ControlHuman,
	})
}

// AddCpuPlayer seats a CPU player. It draws the room, then the capacity,
// then a name, drawing again while the name is taken.
func (o *orchestrator) AddCpuPlayer(ctx context.Context) (*AddPlayerOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.checkJoinable(); err != nil {
		return nil, err
	}

	w := o.w
	roomID, err := o.random.NextInt(0, w.graph.Len()-1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw cpu room")
	}
	capacity, err := o.random.NextInt(minCapacity, maxCapacity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw item capacity")
	}

	var name string
	for attempt := 0; ; attempt++ {
		if attempt == maxNameDraws {
			return nil, errors.Internalf("no free cpu name after %d draws", maxNameDraws)
		}
		name, err = cpu.GenerateName(o.random)
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw cpu name")
		}
		if w.findSeat(name) == nil {
			break
		}
		slog.Debug("CPU name taken, drawing again",
			"session_id", w.sessionID,
			"name", name,
		)
	}

	return o.seat(ctx, &entities.Seat{
		Player: &entities.Player{
			Name:     name,
			RoomID:   roomID,
			Capacity: capacity,
			Items:    []*entities.Item{},
		},
		Control: entities.ControlCPU,
	})
}

func (o *orchestrator) checkJoinable() error {
	w := o.w
	if w.phase != PhaseNotStarted {
		return errors.InvalidState("the game has already started, cannot add players")
	}
	if len(w.seats) >= o.maxPlayers {
		return errors.InvalidStatef("the roster is full at %d players, start the game", o.maxPlayers)
	}
	return nil
}

// seat adds a validated seat to the roster and its player to its room
func (o *orchestrator) seat(ctx context.Context, seat *entities.Seat) (*AddPlayerOutput, error) {
	w := o.w
	player := seat.Player
	if err := w.graph.Enter(player.RoomID, player.Name); err != nil {
		return nil, err
	}
	w.seats = append(w.seats, seat)

	message := fmt.Sprintf("Player %d, %s, has joined in %s", len(w.seats), player.Name, w.roomName(player.RoomID))

	slog.Info("Player added",
		"session_id", w.sessionID,
		"player", player.Name,
		"control", seat.Control.String(),
		"room_id", player.RoomID,
		"capacity", player.Capacity,
	)
	room, _ := w.graph.Room(player.RoomID)
	o.publish(ctx, EventPlayerAdded, player, room, map[string]any{
		EventKeyRoomID: player.RoomID,
	})

	out, err := o.finish(message, false)
	if err != nil {
		return nil, err
	}

	return &AddPlayerOutput{
		Player:  player.Clone(),
		Message: out.Message,
		Result:  out.Result,
	}, nil
}
