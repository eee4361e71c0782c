package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/manor-hunt/internal/engine"
	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
	"github.com/KirkDiggler/manor-hunt/internal/services/cpu"
)

// TakeCpuTurn plays the active CPU seat. The pet's candidate room is drawn
// before the brain decides. The turn always advances unless the CPU's attack
// was lethal.
func (o *orchestrator) TakeCpuTurn(ctx context.Context) (*ActionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	seat, err := o.activeSeat(entities.ControlCPU)
	if err != nil {
		return nil, err
	}

	w := o.w
	candidate, err := o.random.NextInt(0, w.graph.Len()-1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw pet candidate room")
	}

	room, err := w.graph.Room(seat.Player.RoomID)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "cpu is in an unknown room")
	}

	actions := &cpuActions{o: o, seat: seat}
	out, err := o.brain.TakeTurn(ctx, &cpu.TurnInput{
		Player:          seat.Player.Clone(),
		Room:            room.Clone(),
		TargetRoomID:    w.target.RoomID,
		BelievesHidden:  engine.ThinksCannotBeSeen(w.graph, seat.Player),
		CandidateRoomID: candidate,
		Actions:         actions,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "cpu turn for %s failed", seat.Player.Name)
	}

	slog.Info("CPU turn taken",
		"session_id", w.sessionID,
		"player", seat.Player.Name,
		"action", out.Action.String(),
		"turn", w.turn,
	)

	return o.conclude(ctx, out.Outcome, !actions.lethal)
}

// cpuActions lets the brain act for one CPU seat. Each call performs the action
// without advancing the turn; TakeCpuTurn advances once the brain is done.
type cpuActions struct {
	o      *orchestrator
	seat   *entities.Seat
	lethal bool
}

func (a *cpuActions) Move(_ context.Context, roomID int) (string, error) {
	if !a.o.w.graph.Has(roomID) {
		return "", errors.InvalidArgumentf("room %d does not exist", roomID)
	}
	message, _, err := a.o.move(a.seat, roomID)
	return message, err
}

func (a *cpuActions) LookAround(_ context.Context) (string, error) {
	return a.o.look(a.seat)
}

// MovePet leaves the patrol alone when the candidate is the pet's own room
func (a *cpuActions) MovePet(_ context.Context, roomID int) (string, error) {
	w := a.o.w
	if !w.graph.Has(roomID) {
		return "", errors.InvalidArgumentf("room %d does not exist", roomID)
	}
	if roomID == w.pet.RoomID {
		return fmt.Sprintf("left %s in %s", w.pet.Name, w.roomName(roomID)), nil
	}
	return a.o.movePet(a.seat, roomID)
}

func (a *cpuActions) Pick(_ context.Context, itemID int) (string, error) {
	message, _, err := a.o.pick(a.seat, itemID)
	return message, err
}

func (a *cpuActions) AttemptKill(ctx context.Context, itemID int) (string, error) {
	message, lethal, err := a.o.kill(ctx, a.seat, itemID)
	if err != nil {
		return "", err
	}
	a.lethal = lethal
	return message, nil
}

var _ cpu.Actions = (*cpuActions)(nil)
