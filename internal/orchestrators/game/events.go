package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the configured bus
const (
	EventLoaded        = "game.loaded"
	EventPlayerAdded   = "game.player_added"
	EventStarted       = "game.started"
	EventTurnAdvanced  = "game.turn_advanced"
	EventKillAttempted = "game.kill_attempted"
	EventOver          = "game.over"
	EventReset         = "game.reset"
)

// Keys set on the context of published events
const (
	EventKeySessionID = "session_id"
	EventKeyTurn      = "turn"
	EventKeyRoomID    = "room_id"
	EventKeyItemID    = "item_id"
	EventKeyDamage    = "damage"
	EventKeySuccess   = "success"
	EventKeyWinner    = "winner"
	EventKeyHealth    = "health"
)

// publish sends an event and logs delivery failures; a failing subscriber never fails the action
func (o *orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity, data map[string]any) {
	event := events.NewGameEvent(eventType, source, target)
	event.Context().Set(EventKeySessionID, o.w.sessionID)
	for key, value := range data {
		event.Context().Set(key, value)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"session_id", o.w.sessionID,
			"event", eventType,
			"error", err,
		)
	}
}
