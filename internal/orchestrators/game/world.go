package game

import (
	"time"

	"github.com/KirkDiggler/manor-hunt/internal/engine"
	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

const nobodyLooked = "Nobody has looked around yet"

// world is the mutable state of one session. The orchestrator owns exactly
// one world and replaces it wholesale on reload.
type world struct {
	sessionID string
	spec      *entities.WorldSpec
	graph     *engine.Graph
	items     []*entities.Item // every item by id
	seats     []*entities.Seat // join order is turn order
	target    *entities.Target
	pet       *entities.Pet
	patrol    *engine.Patrol
	turn      int
	phase     Phase
	winner    string
	loadedAt  time.Time
	startedAt time.Time

	lastAction string
	lookAround string
	result     *entities.Result
}

// newWorld validates spec and builds rooms, items, target and pet from it.
// The pet starts in room 0 with a patrol planned from there.
func newWorld(spec *entities.WorldSpec) (*world, error) {
	if err := spec.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid world specification")
	}

	graph, err := engine.NewGraph(spec.Rooms)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build rooms")
	}

	items := make([]*entities.Item, len(spec.Items))
	for i, itemSpec := range spec.Items {
		items[i] = &entities.Item{ID: i, Name: itemSpec.Name, Damage: itemSpec.Damage}
		if err := graph.AddItem(itemSpec.RoomID, items[i]); err != nil {
			return nil, errors.Wrapf(err, "failed to place item %d", i)
		}
	}

	w := &world{
		spec:       spec.Clone(),
		graph:      graph,
		items:      items,
		target:     entities.NewTarget(spec.TargetName, spec.TargetHealth),
		pet:        &entities.Pet{Name: spec.PetName},
		phase:      PhaseNotStarted,
		lastAction: "Welcome to " + spec.Name,
		lookAround: nobodyLooked,
	}
	if err := w.relocatePet(0); err != nil {
		return nil, err
	}

	return w, nil
}

// reset empties the roster and puts target, pet and turn counter back to
// their starting values. Items lying in rooms stay where they are.
func (w *world) reset() error {
	w.graph.ClearOccupants()
	if err := w.relocatePet(0); err != nil {
		return err
	}
	w.target.Restore()
	w.seats = nil
	w.turn = 0
	w.phase = PhaseNotStarted
	w.winner = ""
	w.startedAt = time.Time{}
	w.lookAround = nobodyLooked
	return nil
}

// relocatePet moves the pet out of band and replans its patrol from the new room
func (w *world) relocatePet(roomID int) error {
	path, err := engine.PlanPatrol(w.graph, roomID)
	if err != nil {
		return err
	}
	if err := w.graph.PlacePet(roomID); err != nil {
		return err
	}
	w.pet.RoomID = roomID
	w.patrol = engine.NewPatrol(path)
	return nil
}

// roamPet takes one step along the patrol
func (w *world) roamPet() error {
	stop := w.patrol.Next()
	if stop < 0 {
		return errors.Internal("pet has no patrol")
	}
	if err := w.graph.PlacePet(stop); err != nil {
		return err
	}
	w.pet.RoomID = stop
	return nil
}

func (w *world) currentSeat() *entities.Seat {
	if len(w.seats) == 0 {
		return nil
	}
	return w.seats[w.turn%len(w.seats)]
}

func (w *world) findSeat(name string) *entities.Seat {
	for _, seat := range w.seats {
		if seat.Player.Name == name {
			return seat
		}
	}
	return nil
}

func (w *world) roomName(roomID int) string {
	room, err := w.graph.Room(roomID)
	if err != nil {
		return ""
	}
	return room.Name
}

// item returns the item with the given id wherever it is
func (w *world) item(itemID int) (*entities.Item, error) {
	if itemID < 0 || itemID >= len(w.items) {
		return nil, errors.InvalidArgumentf("item %d does not exist", itemID)
	}
	return w.items[itemID], nil
}
