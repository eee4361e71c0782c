package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/manor-hunt/internal/clients/worldspec"
	"github.com/KirkDiggler/manor-hunt/internal/orchestrators/game"
	"github.com/KirkDiggler/manor-hunt/internal/pkg/clock"
	"github.com/KirkDiggler/manor-hunt/internal/pkg/idgen"
	"github.com/KirkDiggler/manor-hunt/internal/pkg/random"
	"github.com/KirkDiggler/manor-hunt/internal/services/mapview"
)

// worldOptions are the command line settings a world is built with
type worldOptions struct {
	specPath string
	maxTurns int
	petRoams bool
}

// loadSpec reads a world specification from disk
func loadSpec(ctx context.Context, loader worldspec.Client, path string) (*worldspec.LoadOutput, error) {
	out, err := loader.Load(ctx, &worldspec.LoadInput{Path: path})
	if err != nil {
		return nil, fmt.Errorf("failed to load world specification: %w", err)
	}
	return out, nil
}

// newWorld wires a world orchestrator from its production dependencies
func newWorld(ctx context.Context, opts worldOptions) (game.Service, worldspec.Client, error) {
	loader, err := worldspec.New(&worldspec.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create specification client: %w", err)
	}

	loaded, err := loadSpec(ctx, loader, opts.specPath)
	if err != nil {
		return nil, nil, err
	}

	source, err := random.New(&random.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create random source: %w", err)
	}

	renderer, err := mapview.New(&mapview.Config{Scale: 1})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create map renderer: %w", err)
	}

	bus := events.NewBus()
	subscribeLogging(bus)

	world, err := game.NewOrchestrator(&game.Config{
		Spec:        loaded.Spec,
		MaxTurns:    opts.maxTurns,
		PetRoams:    opts.petRoams,
		Random:      source,
		EventBus:    bus,
		IDGenerator: idgen.NewUUID("world"),
		Renderer:    renderer,
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create world: %w", err)
	}

	return world, loader, nil
}

// subscribeLogging logs every game event at debug level
func subscribeLogging(bus events.EventBus) {
	for _, eventType := range []string{
		game.EventLoaded,
		game.EventPlayerAdded,
		game.EventStarted,
		game.EventTurnAdvanced,
		game.EventKillAttempted,
		game.EventOver,
		game.EventReset,
	} {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			sessionID, _ := e.Context().Get(game.EventKeySessionID)
			slog.Debug("Game event",
				"type", e.Type(),
				"session_id", sessionID,
			)
			return nil
		})
	}
}
