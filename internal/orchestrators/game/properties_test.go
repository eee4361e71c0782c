package game_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/KirkDiggler/manor-hunt/internal/orchestrators/game"
	"github.com/KirkDiggler/manor-hunt/internal/pkg/random"
	"github.com/KirkDiggler/manor-hunt/internal/testutils"
)

func TestResetRestoresFreshWorld(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		queue := random.NewQueue()
		roams := rapid.Bool().Draw(t, "roams")

		world, _, err := newTestWorld(testutils.LineWorldSpec(4, 5), game.MaxTurnsLimit, roams, queue)
		if err != nil {
			t.Fatalf("new world: %v", err)
		}
		fresh, err := world.Summary(ctx)
		if err != nil {
			t.Fatalf("summary: %v", err)
		}

		players := rapid.IntRange(1, 3).Draw(t, "players")
		for i := 0; i < players; i++ {
			queue.Push(rapid.IntRange(1, 5).Draw(t, "capacity"))
			input := &game.AddHumanPlayerInput{
				Name:   fmt.Sprintf("P%d", i),
				RoomID: rapid.IntRange(0, 3).Draw(t, "room"),
			}
			if _, err := world.AddHumanPlayer(ctx, input); err != nil {
				t.Fatalf("add player: %v", err)
			}
		}
		if _, err := world.Start(ctx); err != nil {
			t.Fatalf("start: %v", err)
		}

		steps := rapid.IntRange(0, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			roomID := rapid.IntRange(0, 3).Draw(t, "target room")
			switch rapid.IntRange(0, 2).Draw(t, "action") {
			case 0:
				_, err = world.Look(ctx)
			case 1:
				_, err = world.MoveHuman(ctx, &game.MoveHumanInput{RoomID: roomID})
			default:
				_, err = world.MovePet(ctx, &game.MovePetInput{RoomID: roomID})
			}
			if err != nil {
				t.Fatalf("step %d: %v", i, err)
			}
		}

		if _, err := world.Reset(ctx); err != nil {
			t.Fatalf("reset: %v", err)
		}
		after, err := world.Summary(ctx)
		if err != nil {
			t.Fatalf("summary: %v", err)
		}

		if !reflect.DeepEqual(fresh, after) {
			t.Fatalf("reset world differs from fresh world\nfresh: %+v\nafter: %+v", fresh, after)
		}
	})
}

func TestTurnsRotateThroughSeats(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		queue := random.NewQueue()

		world, _, err := newTestWorld(testutils.LineWorldSpec(4, 5), game.MaxTurnsLimit, false, queue)
		if err != nil {
			t.Fatalf("new world: %v", err)
		}

		players := rapid.IntRange(1, 4).Draw(t, "players")
		for i := 0; i < players; i++ {
			queue.Push(2)
			input := &game.AddHumanPlayerInput{Name: fmt.Sprintf("P%d", i), RoomID: i % 4}
			if _, err := world.AddHumanPlayer(ctx, input); err != nil {
				t.Fatalf("add player: %v", err)
			}
		}
		if _, err := world.Start(ctx); err != nil {
			t.Fatalf("start: %v", err)
		}

		looks := rapid.IntRange(0, game.MaxTurnsLimit-1).Draw(t, "looks")
		for i := 0; i < looks; i++ {
			if _, err := world.Look(ctx); err != nil {
				t.Fatalf("look %d: %v", i, err)
			}
		}

		out, err := world.GetResult(ctx)
		if err != nil {
			t.Fatalf("result: %v", err)
		}
		want := fmt.Sprintf("Target is at %s   P%d's turn   Turn:%d/%d",
			testutils.RoomName(looks%4), looks%players, looks+1, game.MaxTurnsLimit)
		if got := out.Result.Status(); got != want {
			t.Fatalf("status = %q, want %q", got, want)
		}
	})
}
