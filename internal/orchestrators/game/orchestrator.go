// Package game implements the world orchestrator: the action API, turn
// sequencing, win detection and the Result snapshot handed to presentation.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/manor-hunt/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/manor-hunt/internal/engine"
	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
	"github.com/KirkDiggler/manor-hunt/internal/pkg/clock"
	"github.com/KirkDiggler/manor-hunt/internal/pkg/idgen"
	"github.com/KirkDiggler/manor-hunt/internal/pkg/random"
	"github.com/KirkDiggler/manor-hunt/internal/services/cpu"
	"github.com/KirkDiggler/manor-hunt/internal/services/mapview"
)

const (
	// DefaultMaxPlayers is the roster cap used when Config.MaxPlayers is zero
	DefaultMaxPlayers = 10
	// MaxTurnsLimit is the largest accepted turn limit
	MaxTurnsLimit = 50
)

// Service defines the interface for world operations
type Service interface {
	// AddHumanPlayer seats a caller controlled player before the game starts
	AddHumanPlayer(ctx context.Context, input *AddHumanPlayerInput) (*AddPlayerOutput, error)

	// AddCpuPlayer seats a CPU player in a random room before the game starts
	AddCpuPlayer(ctx context.Context) (*AddPlayerOutput, error)

	// Start opens the first turn
	Start(ctx context.Context) (*ActionOutput, error)

	// MoveHuman moves the active human player to a neighboring room
	MoveHuman(ctx context.Context, input *MoveHumanInput) (*ActionOutput, error)

	// MoveHumanToPoint moves the active human player to the room covering a map cell
	MoveHumanToPoint(ctx context.Context, input *MoveHumanToPointInput) (*ActionOutput, error)

	// Look publishes what the active human player sees around it
	Look(ctx context.Context) (*ActionOutput, error)

	// PickItem picks an item from the active human player's room
	PickItem(ctx context.Context, input *PickItemInput) (*ActionOutput, error)

	// MovePet relocates the pet to any room
	MovePet(ctx context.Context, input *MovePetInput) (*ActionOutput, error)

	// AttemptKill attacks the target with a held item or an eye poke
	AttemptKill(ctx context.Context, input *AttemptKillInput) (*ActionOutput, error)

	// TakeCpuTurn plays the active CPU seat
	TakeCpuTurn(ctx context.Context) (*ActionOutput, error)

	// End stops the game early with no winner
	End(ctx context.Context) (*ActionOutput, error)

	// Reset clears the roster and restores target, pet and turn counter
	Reset(ctx context.Context) (*ActionOutput, error)

	// Reload rebuilds the world from a new specification
	Reload(ctx context.Context, input *ReloadInput) (*ActionOutput, error)

	// GetResult returns the current snapshot
	GetResult(ctx context.Context) (*GetResultOutput, error)

	// GetRoomInfo returns the full description of a room
	GetRoomInfo(ctx context.Context, input *GetRoomInfoInput) (*GetRoomInfoOutput, error)

	// GetPlayerInfo returns the description of a seated player
	GetPlayerInfo(ctx context.Context, input *GetPlayerInfoInput) (*GetPlayerInfoOutput, error)

	// IsCurrentTurnCPU reports whether the active seat is CPU controlled
	IsCurrentTurnCPU(ctx context.Context) (bool, error)

	// Phase returns the current phase
	Phase(ctx context.Context) Phase

	// Summary returns a copy of the whole session state
	Summary(ctx context.Context) (*SummaryOutput, error)
}

// Config holds the dependencies for the world orchestrator
type Config struct {
	Spec        *entities.WorldSpec
	MaxTurns    int
	PetRoams    bool // the pet takes one patrol step per turn
	MaxPlayers  int  // zero means DefaultMaxPlayers
	Random      random.Source
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Renderer    mapview.Renderer
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Spec == nil {
		vb.RequiredField("Spec")
	}
	errors.ValidateRange("MaxTurns", c.MaxTurns, 1, MaxTurnsLimit, vb)
	if c.MaxPlayers != 0 {
		errors.ValidateRange("MaxPlayers", c.MaxPlayers, 1, DefaultMaxPlayers, vb)
	}
	if c.Random == nil {
		vb.RequiredField("Random")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Renderer == nil {
		vb.RequiredField("Renderer")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	maxTurns   int
	petRoams   bool
	maxPlayers int
	random     random.Source
	eventBus   events.EventBus
	idGen      idgen.Generator
	renderer   mapview.Renderer
	clock      clock.Clock
	brain      cpu.Brain

	mu sync.Mutex
	w  *world
}

// NewOrchestrator creates a world from cfg.Spec with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	brain, err := cpu.New(&cpu.Config{Random: cfg.Random})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cpu brain")
	}

	maxPlayers := cfg.MaxPlayers
	if maxPlayers == 0 {
		maxPlayers = DefaultMaxPlayers
	}

	o := &orchestrator{
		maxTurns:   cfg.MaxTurns,
		petRoams:   cfg.PetRoams,
		maxPlayers: maxPlayers,
		random:     cfg.Random,
		eventBus:   cfg.EventBus,
		idGen:      cfg.IDGenerator,
		renderer:   cfg.Renderer,
		clock:      cfg.Clock,
		brain:      brain,
	}

	if err := o.load(context.Background(), cfg.Spec); err != nil {
		return nil, err
	}

	return o, nil
}

// load replaces the whole world with one built from spec.
// On failure the current world is left untouched.
func (o *orchestrator) load(ctx context.Context, spec *entities.WorldSpec) error {
	w, err := newWorld(spec)
	if err != nil {
		return err
	}
	if err := o.refresh(w); err != nil {
		return err
	}
	w.sessionID = o.idGen.Generate()
	w.loadedAt = o.clock.Now()
	o.w = w

	slog.Info("World loaded",
		"session_id", w.sessionID,
		"world", w.spec.Name,
		"rooms", w.graph.Len(),
		"items", len(w.items),
		"max_turns", o.maxTurns,
		"pet_roams", o.petRoams,
	)
	o.publish(ctx, EventLoaded, w.target, nil, map[string]any{
		EventKeyRoomID: w.target.RoomID,
	})

	return nil
}

// Start opens the first turn
func (o *orchestrator) Start(ctx context.Context) (*ActionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w := o.w
	if len(w.seats) == 0 {
		return nil, errors.InvalidState("cannot start the game without any players")
	}
	if w.phase != PhaseNotStarted {
		return nil, errors.InvalidStatef("cannot start the game, it is %s", w.phase)
	}

	w.phase = PhaseInProgress
	w.startedAt = o.clock.Now()

	slog.Info("Game started",
		"session_id", w.sessionID,
		"players", len(w.seats),
	)
	o.publish(ctx, EventStarted, w.currentSeat().Player, w.target, map[string]any{
		EventKeyTurn: w.turn,
	})

	return o.finish("The game has started", false)
}

// End stops the game early with no winner; the turn counter jumps to the limit
func (o *orchestrator) End(ctx context.Context) (*ActionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w := o.w
	if w.phase == PhaseOver {
		return nil, errors.InvalidState("game is already over")
	}

	w.turn = o.maxTurns
	w.phase = PhaseOver

	slog.Info("Game ended early",
		"session_id", w.sessionID,
		"players", len(w.seats),
	)
	o.publish(ctx, EventOver, w.target, nil, map[string]any{
		EventKeyTurn:   w.turn,
		EventKeyWinner: "",
	})

	return o.finish("The game was ended early", false)
}

// Reset clears the roster and restores target, pet and turn counter.
// Items lying in rooms stay where they are; held items leave with their players.
func (o *orchestrator) Reset(ctx context.Context) (*ActionOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w := o.w
	if err := w.reset(); err != nil {
		return nil, errors.Wrap(err, "failed to reset world")
	}

	slog.Info("World reset",
		"session_id", w.sessionID,
		"world", w.spec.Name,
	)
	o.publish(ctx, EventReset, w.target, nil, nil)

	return o.finish("The game was reset", false)
}

// Reload rebuilds the world from a new specification under a new session id
func (o *orchestrator) Reload(ctx context.Context, input *ReloadInput) (*ActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Spec == nil {
		return nil, errors.InvalidArgument("specification is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.load(ctx, input.Spec); err != nil {
		return nil, err
	}

	return &ActionOutput{
		Message: o.w.lastAction,
		Result:  o.w.result.Clone(),
	}, nil
}

// GetResult returns the current snapshot
func (o *orchestrator) GetResult(_ context.Context) (*GetResultOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	return &GetResultOutput{Result: o.w.result.Clone()}, nil
}

// GetRoomInfo returns the full description of a room
func (o *orchestrator) GetRoomInfo(_ context.Context, input *GetRoomInfoInput) (*GetRoomInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	info, err := engine.RoomInfo(o.w.graph, input.RoomID, o.w.pet.Name)
	if err != nil {
		return nil, err
	}

	return &GetRoomInfoOutput{Info: info}, nil
}

// GetPlayerInfo returns the description of a seated player
func (o *orchestrator) GetPlayerInfo(_ context.Context, input *GetPlayerInfoInput) (*GetPlayerInfoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	seat := o.w.findSeat(input.Name)
	if seat == nil {
		return nil, errors.NotFoundf("player %q not found", input.Name)
	}

	return &GetPlayerInfoOutput{
		Info:    seat.Player.Description(),
		RoomID:  seat.Player.RoomID,
		Control: seat.Control,
	}, nil
}

// IsCurrentTurnCPU reports whether the active seat is CPU controlled
func (o *orchestrator) IsCurrentTurnCPU(_ context.Context) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	seat := o.w.currentSeat()
	if seat == nil {
		return false, errors.InvalidState("no players have joined")
	}
	return seat.IsCPU(), nil
}

// Phase returns the current phase
func (o *orchestrator) Phase(_ context.Context) Phase {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.w.phase
}

// Summary returns a copy of the whole session state
func (o *orchestrator) Summary(_ context.Context) (*SummaryOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	w := o.w
	rooms := w.graph.Clone().Rooms()

	seats := make([]SeatSummary, len(w.seats))
	for i, seat := range w.seats {
		seats[i] = SeatSummary{
			Name:     seat.Player.Name,
			Control:  seat.Control,
			RoomID:   seat.Player.RoomID,
			Capacity: seat.Player.Capacity,
			Items:    seat.Player.ItemNames(),
		}
	}

	return &SummaryOutput{
		SessionID: w.sessionID,
		WorldName: w.spec.Name,
		Rows:      w.spec.Rows,
		Cols:      w.spec.Cols,
		Rooms:     rooms,
		Patrol:    w.patrol.Path(),
		NextStop:  w.patrol.Peek(),
		Seats:     seats,
		Target:    *w.target,
		Pet:       *w.pet,
		Turn:      w.turn,
		MaxTurns:  o.maxTurns,
		Phase:     w.phase,
		Winner:    w.winner,
		LoadedAt:  w.loadedAt,
		StartedAt: w.startedAt,
	}, nil
}
