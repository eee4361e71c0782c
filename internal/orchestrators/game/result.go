package game

import (
	"fmt"

	"github.com/KirkDiggler/manor-hunt/internal/engine"
	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
	"github.com/KirkDiggler/manor-hunt/internal/services/mapview"
)

const (
	noPlayersText = "No players have joined yet"
	cpuTurnText   = "No room to show on a CPU turn"
)

// finish records the action message, rebuilds the snapshot and reports the outcome
func (o *orchestrator) finish(message string, advanced bool) (*ActionOutput, error) {
	o.w.lastAction = message
	if err := o.refresh(o.w); err != nil {
		return nil, err
	}

	return &ActionOutput{
		Message:  message,
		Advanced: advanced,
		Result:   o.w.result.Clone(),
	}, nil
}

// refresh rebuilds the snapshot of w from its current state
func (o *orchestrator) refresh(w *world) error {
	rendered, err := o.renderer.Render(&mapview.RenderInput{
		Rows:         w.spec.Rows,
		Cols:         w.spec.Cols,
		Rooms:        w.graph.Rooms(),
		TargetRoomID: w.target.RoomID,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to render map")
	}

	roomDescription := noPlayersText
	playerDescription := noPlayersText
	heldItems := []string{}
	roomItems := []string{}

	if seat := w.currentSeat(); seat != nil {
		room, err := w.graph.Room(seat.Player.RoomID)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInternal, "player is in an unknown room")
		}

		playerDescription = seat.Player.Description()
		heldItems = seat.Player.ItemNames()
		roomItems = room.ItemNames()

		if seat.IsCPU() && w.phase == PhaseInProgress {
			roomDescription = cpuTurnText
		} else {
			roomDescription, err = engine.RoomDescription(w.graph, room.ID, w.pet.Name)
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeInternal, "failed to describe room")
			}
		}
	}

	result := &entities.Result{}
	for _, setErr := range []error{
		result.SetStatus(o.status(w)),
		result.SetLastAction(w.lastAction),
		result.SetRoomDescription(roomDescription),
		result.SetLookAround(w.lookAround),
		result.SetPlayerDescription(playerDescription),
		result.SetMapImage(rendered.Image),
		result.SetRoomNames(w.graph.Names()),
		result.SetHeldItems(heldItems),
		result.SetRoomItems(roomItems),
	} {
		if setErr != nil {
			return errors.WrapWithCode(setErr, errors.CodeInternal, "failed to build result")
		}
	}

	w.result = result
	return nil
}

// status is the turn line, or the end of game message once the game is over
func (o *orchestrator) status(w *world) string {
	switch {
	case w.phase == PhaseOver && w.winner != "":
		return fmt.Sprintf("Game Over! %s wins", w.winner)
	case w.phase == PhaseOver:
		return fmt.Sprintf("Game Over! Maximum turn reached. %s escaped and nobody wins", w.target.Name)
	case w.phase == PhaseNotStarted:
		return fmt.Sprintf("Add up to %d players and start the game (%d joined)", o.maxPlayers, len(w.seats))
	default:
		return fmt.Sprintf("Target is at %s   %s's turn   Turn:%d/%d",
			w.roomName(w.target.RoomID),
			w.currentSeat().Player.Name,
			w.turn+1,
			o.maxTurns,
		)
	}
}
