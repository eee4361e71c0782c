package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/manor-hunt/internal/engine"
	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// activeSeat returns the seat whose turn it is when it is controlled as asked
func (o *orchestrator) activeSeat(control entities.Control) (*entities.Seat, error) {
	w := o.w
	switch {
	case len(w.seats) == 0:
		return nil, errors.InvalidState("add players before making any move")
	case w.phase == PhaseOver:
		return nil, errors.InvalidState("the game is over, reset or reload to play again")
	case w.phase == PhaseNotStarted:
		return nil, errors.InvalidState("the game has not started")
	}

	seat := w.currentSeat()
	if seat.Control != control {
		return nil, errors.InvalidStatef("it is %s's turn and %s is a %s player", seat.Player.Name, seat.Player.Name, seat.Control)
	}
	return seat, nil
}

// MoveHuman moves the active human player to a neighboring room
func (o *orchestrator) MoveHuman(ctx context.Context, input *MoveHumanInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return o.moveHuman(ctx, input.RoomID)
}

// MoveHumanToPoint moves the active human player to the room covering a map cell
func (o *orchestrator) MoveHumanToPoint(ctx context.Context, input *MoveHumanToPointInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	room, ok := o.w.graph.RoomAt(input.Row, input.Col)
	if !ok {
		return nil, errors.InvalidArgumentf("no room covers (%d,%d)", input.Row, input.Col)
	}

	return o.moveHuman(ctx, room.ID)
}

func (o *orchestrator) moveHuman(ctx context.Context, roomID int) (*ActionOutput, error) {
	if !o.w.graph.Has(roomID) {
		return nil, errors.InvalidArgumentf("room %d does not exist", roomID)
	}
	seat, err := o.activeSeat(entities.ControlHuman)
	if err != nil {
		return nil, err
	}

	message, moved, err := o.move(seat, roomID)
	if err != nil {
		return nil, err
	}
	return o.conclude(ctx, said(seat, message), moved)
}

// Look publishes what the active human player sees around it
func (o *orchestrator) Look(ctx context.Context) (*ActionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	seat, err := o.activeSeat(entities.ControlHuman)
	if err != nil {
		return nil, err
	}

	message, err := o.look(seat)
	if err != nil {
		return nil, err
	}
	return o.conclude(ctx, said(seat, message), true)
}

// PickItem picks an item from the active human player's room
func (o *orchestrator) PickItem(ctx context.Context, input *PickItemInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.w.item(input.ItemID); err != nil {
		return nil, err
	}
	seat, err := o.activeSeat(entities.ControlHuman)
	if err != nil {
		return nil, err
	}

	message, picked, err := o.pick(seat, input.ItemID)
	if err != nil {
		return nil, err
	}
	return o.conclude(ctx, said(seat, message), picked)
}

// MovePet relocates the pet to any room and replans its patrol from there
func (o *orchestrator) MovePet(ctx context.Context, input *MovePetInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.w.graph.Has(input.RoomID) {
		return nil, errors.InvalidArgumentf("room %d does not exist", input.RoomID)
	}
	seat, err := o.activeSeat(entities.ControlHuman)
	if err != nil {
		return nil, err
	}

	message, err := o.movePet(seat, input.RoomID)
	if err != nil {
		return nil, err
	}
	return o.conclude(ctx, said(seat, message), true)
}

// AttemptKill attacks the target. A lethal attack ends the game at once;
// any other attempt uses up the turn.
func (o *orchestrator) AttemptKill(ctx context.Context, input *AttemptKillInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if input.ItemID != entities.EyePokeItemID {
		if _, err := o.w.item(input.ItemID); err != nil {
			return nil, err
		}
	}
	seat, err := o.activeSeat(entities.ControlHuman)
	if err != nil {
		return nil, err
	}

	message, lethal, err := o.kill(ctx, seat, input.ItemID)
	if err != nil {
		return nil, err
	}
	return o.conclude(ctx, said(seat, message), !lethal)
}

// conclude advances the turn when the action used it and rebuilds the snapshot
func (o *orchestrator) conclude(ctx context.Context, message string, advance bool) (*ActionOutput, error) {
	if advance {
		if err := o.advance(ctx); err != nil {
			return nil, err
		}
	}
	return o.finish(message, advance)
}

// advance moves the target one room on, takes the pet's roam step when
// roaming, counts the turn and ends the game at the turn limit
func (o *orchestrator) advance(ctx context.Context) error {
	w := o.w

	w.target.Advance(w.graph.Len())
	if o.petRoams {
		if err := w.roamPet(); err != nil {
			return err
		}
	}
	w.turn++

	slog.Info("Turn advanced",
		"session_id", w.sessionID,
		"turn", w.turn,
		"target_room_id", w.target.RoomID,
		"pet_room_id", w.pet.RoomID,
	)
	room, err := w.graph.Room(w.target.RoomID)
	if err != nil {
		return err
	}
	o.publish(ctx, EventTurnAdvanced, w.target, room, map[string]any{
		EventKeyTurn:   w.turn,
		EventKeyRoomID: w.target.RoomID,
	})

	if w.turn >= o.maxTurns {
		w.phase = PhaseOver

		slog.Info("Game over",
			"session_id", w.sessionID,
			"turn", w.turn,
			"winner", "",
		)
		o.publish(ctx, EventOver, w.target, nil, map[string]any{
			EventKeyTurn:   w.turn,
			EventKeyWinner: "",
		})
	}

	return nil
}

// said puts the acting player's name in front of an action phrase
func said(seat *entities.Seat, phrase string) string {
	return seat.Player.Name + " " + phrase
}

// move relocates the seat's player to a neighboring room.
// A room that is not a neighbor is reported in the message and nothing changes.
func (o *orchestrator) move(seat *entities.Seat, roomID int) (string, bool, error) {
	w := o.w
	player := seat.Player

	if !w.graph.AreNeighbors(player.RoomID, roomID) {
		return fmt.Sprintf("cannot move to %s, it is not a neighbor of %s",
			w.roomName(roomID), w.roomName(player.RoomID)), false, nil
	}

	if err := w.graph.Leave(player.RoomID, player.Name); err != nil {
		return "", false, errors.WrapWithCode(err, errors.CodeInternal, "player left an unknown room")
	}
	if err := w.graph.Enter(roomID, player.Name); err != nil {
		return "", false, errors.WrapWithCode(err, errors.CodeInternal, "player entered an unknown room")
	}
	player.RoomID = roomID

	return fmt.Sprintf("moved to %s", w.roomName(roomID)), true, nil
}

// look records what the seat's player sees from its room
func (o *orchestrator) look(seat *entities.Seat) (string, error) {
	w := o.w

	text, err := engine.LookAround(w.graph, seat.Player.RoomID, w.pet.Name)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to look around")
	}
	w.lookAround = text

	return fmt.Sprintf("looked around from %s", w.roomName(seat.Player.RoomID)), nil
}

// pick moves an item from the room into the player's hands. An item that is
// elsewhere or a player at capacity is reported in the message.
func (o *orchestrator) pick(seat *entities.Seat, itemID int) (string, bool, error) {
	w := o.w
	player := seat.Player

	item, err := w.item(itemID)
	if err != nil {
		return "", false, err
	}
	room, err := w.graph.Room(player.RoomID)
	if err != nil {
		return "", false, errors.WrapWithCode(err, errors.CodeInternal, "player is in an unknown room")
	}
	if !room.HasItems() {
		return "", false, errors.InvalidStatef("there is nothing to pick in %s", room.Name)
	}

	if room.FindItem(itemID) == nil {
		return fmt.Sprintf("failed to pick %s, it is not in %s", item.Name, room.Name), false, nil
	}
	if !player.CanCarry() {
		return fmt.Sprintf("failed to pick %s, already carrying the maximum of %d items",
			item.Name, player.Capacity), false, nil
	}

	taken, _ := w.graph.TakeItem(room.ID, itemID)
	player.Items = append(player.Items, taken)

	return fmt.Sprintf("picked %s", taken.Name), true, nil
}

// movePet relocates the pet and replans its patrol
func (o *orchestrator) movePet(seat *entities.Seat, roomID int) (string, error) {
	w := o.w
	if err := w.relocatePet(roomID); err != nil {
		return "", err
	}

	slog.Debug("Pet relocated",
		"session_id", w.sessionID,
		"player", seat.Player.Name,
		"room_id", roomID,
		"patrol", w.patrol.Path(),
	)

	return fmt.Sprintf("moved %s to %s", w.pet.Name, w.roomName(roomID)), nil
}

// kill resolves an attack on the target by ground truth visibility. A used
// item is discarded whether or not the attack lands. It reports whether the
// attack was lethal, in which case the game is already over.
func (o *orchestrator) kill(ctx context.Context, seat *entities.Seat, itemID int) (string, bool, error) {
	w := o.w
	player := seat.Player

	if player.RoomID != w.target.RoomID {
		return "", false, errors.InvalidStatef("%s is not in %s", w.target.Name, w.roomName(player.RoomID))
	}

	damage, weapon := entities.EyePokeDamage, "an eye poke"
	if itemID != entities.EyePokeItemID {
		if _, err := w.item(itemID); err != nil {
			return "", false, err
		}
		if !player.Holds(itemID) {
			return "", false, errors.InvalidArgumentf("%s does not hold item %d", player.Name, itemID)
		}
	}

	seen := engine.CanBeSeen(w.graph, player)
	if itemID != entities.EyePokeItemID {
		item := player.Discard(itemID)
		damage, weapon = item.Damage, item.Name
	}

	var message string
	if seen {
		message = fmt.Sprintf("failed to kill %s with %s, someone was watching. %s",
			w.target.Name, weapon, w.target)
	} else {
		w.target.Hurt(damage)
		message = fmt.Sprintf("attacked %s with %s. %s", w.target.Name, weapon, w.target)
	}

	slog.Info("Kill attempted",
		"session_id", w.sessionID,
		"player", player.Name,
		"item_id", itemID,
		"damage", damage,
		"success", !seen,
		"target_health", w.target.Health,
	)
	o.publish(ctx, EventKillAttempted, player, w.target, map[string]any{
		EventKeyItemID:  itemID,
		EventKeyDamage:  damage,
		EventKeySuccess: !seen,
		EventKeyHealth:  w.target.Health,
	})

	if !w.target.Dead() {
		return message, false, nil
	}

	w.phase = PhaseOver
	w.winner = player.Name

	slog.Info("Game over",
		"session_id", w.sessionID,
		"turn", w.turn,
		"winner", player.Name,
	)
	o.publish(ctx, EventOver, player, w.target, map[string]any{
		EventKeyTurn:   w.turn,
		EventKeyWinner: player.Name,
	})

	return fmt.Sprintf("%s. %s is dead", message, w.target.Name), true, nil
}
