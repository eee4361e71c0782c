package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/manor-hunt/internal/clients/worldspec"
	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/orchestrators/game"
)

const helpText = `Commands:
  add <room-id> <name>   seat a human player before the game starts
  cpu                    seat a CPU player in a random room
  start                  start the game
  move <room-id>         move to a neighboring room
  goto <row> <col>       move to the room covering a map cell
  look                   look around from your room
  pick <item-id>         pick an item in your room
  pet <room-id>          move the pet to any room
  kill [item-id]         attack the target, with an eye poke when no item is given
  turn                   show whose turn it is
  info <name>            describe a player
  room <room-id>         describe a room
  map                    draw the map
  reset                  clear the players and start over
  reload <spec-file>     load another world
  end                    end the game now
  help                   show this help
  quit                   leave`

// session is one interactive game over a line based input
type session struct {
	world  game.Service
	loader worldspec.Client
	styles styles
	out    io.Writer
}

// run reads commands until quit, end of input or interruption.
// A failed command is reported and the loop carries on.
func (s *session) run(ctx context.Context, in io.Reader) error {
	s.println(s.styles.help.Render(helpText))
	if err := s.printSnapshot(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for !contextDone(ctx) {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		quit, err := s.execute(ctx, line)
		if err != nil {
			s.println(s.styles.err.Render("Error: " + err.Error()))
		}
		if quit {
			return nil
		}
	}

	return scanner.Err()
}

// execute runs one command line and reports whether the session should stop
func (s *session) execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	command, args := strings.ToLower(fields[0]), fields[1:]

	switch command {
	case "quit", "exit":
		return true, nil
	case "help":
		s.println(s.styles.help.Render(helpText))
		return false, nil
	case "add":
		return false, s.add(ctx, args)
	case "cpu":
		out, err := s.world.AddCpuPlayer(ctx)
		if err != nil {
			return false, err
		}
		s.println(s.styles.action.Render(out.Message))
		return false, nil
	case "turn":
		return false, s.printStatus(ctx)
	case "info":
		return false, s.info(ctx, args)
	case "room":
		return false, s.room(ctx, args)
	case "map":
		return false, s.printMap(ctx)
	case "reset":
		out, err := s.world.Reset(ctx)
		if err != nil {
			return false, err
		}
		s.println(s.styles.action.Render(out.Message))
		return false, nil
	case "reload":
		return false, s.reload(ctx, args)
	case "end":
		out, err := s.world.End(ctx)
		if err != nil {
			return false, err
		}
		s.println(s.styles.action.Render(out.Message))
		return false, s.printSnapshot(ctx)
	}

	act, err := s.action(command, args)
	if err != nil {
		return false, err
	}
	out, err := act(ctx)
	if err != nil {
		return false, err
	}
	s.println(s.styles.action.Render(out.Message))
	if command == "look" {
		s.printSection("Look around", out.Result.LookAround())
	}

	if err := s.playCpuTurns(ctx); err != nil {
		return false, err
	}
	return false, s.printSnapshot(ctx)
}

type actionFunc func(ctx context.Context) (*game.ActionOutput, error)

// action parses the arguments of a turn taking command
func (s *session) action(command string, args []string) (actionFunc, error) {
	switch command {
	case "start":
		return s.world.Start, nil
	case "look":
		return s.world.Look, nil
	case "move":
		roomID, err := intArg(args, 0, "room id")
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) (*game.ActionOutput, error) {
			return s.world.MoveHuman(ctx, &game.MoveHumanInput{RoomID: roomID})
		}, nil
	case "goto":
		row, err := intArg(args, 0, "row")
		if err != nil {
			return nil, err
		}
		col, err := intArg(args, 1, "column")
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) (*game.ActionOutput, error) {
			return s.world.MoveHumanToPoint(ctx, &game.MoveHumanToPointInput{Row: row, Col: col})
		}, nil
	case "pick":
		itemID, err := intArg(args, 0, "item id")
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) (*game.ActionOutput, error) {
			return s.world.PickItem(ctx, &game.PickItemInput{ItemID: itemID})
		}, nil
	case "pet":
		roomID, err := intArg(args, 0, "room id")
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context) (*game.ActionOutput, error) {
			return s.world.MovePet(ctx, &game.MovePetInput{RoomID: roomID})
		}, nil
	case "kill":
		itemID := entities.EyePokeItemID
		if len(args) > 0 {
			var err error
			if itemID, err = intArg(args, 0, "item id"); err != nil {
				return nil, err
			}
		}
		return func(ctx context.Context) (*game.ActionOutput, error) {
			return s.world.AttemptKill(ctx, &game.AttemptKillInput{ItemID: itemID})
		}, nil
	default:
		return nil, fmt.Errorf("unknown command %q, type help for the list", command)
	}
}

// playCpuTurns lets CPU seats act until a human is up or the game is over
func (s *session) playCpuTurns(ctx context.Context) error {
	for s.world.Phase(ctx) == game.PhaseInProgress && !contextDone(ctx) {
		isCPU, err := s.world.IsCurrentTurnCPU(ctx)
		if err != nil {
			return err
		}
		if !isCPU {
			return nil
		}

		out, err := s.world.TakeCpuTurn(ctx)
		if err != nil {
			return err
		}
		s.println(s.styles.action.Render(out.Message))
	}
	return nil
}

func (s *session) add(ctx context.Context, args []string) error {
	roomID, err := intArg(args, 0, "room id")
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: add <room-id> <name>")
	}

	out, err := s.world.AddHumanPlayer(ctx, &game.AddHumanPlayerInput{
		Name:   strings.Join(args[1:], " "),
		RoomID: roomID,
	})
	if err != nil {
		return err
	}
	s.println(s.styles.action.Render(out.Message))
	return nil
}

func (s *session) info(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: info <name>")
	}

	out, err := s.world.GetPlayerInfo(ctx, &game.GetPlayerInfoInput{Name: strings.Join(args, " ")})
	if err != nil {
		return err
	}
	s.printSection(fmt.Sprintf("Player (%s, room %d)", out.Control, out.RoomID), out.Info)
	return nil
}

func (s *session) room(ctx context.Context, args []string) error {
	roomID, err := intArg(args, 0, "room id")
	if err != nil {
		return err
	}

	out, err := s.world.GetRoomInfo(ctx, &game.GetRoomInfoInput{RoomID: roomID})
	if err != nil {
		return err
	}
	s.printSection("Room", out.Info)
	return nil
}

func (s *session) reload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: reload <spec-file>")
	}

	loaded, err := loadSpec(ctx, s.loader, args[0])
	if err != nil {
		return err
	}
	out, err := s.world.Reload(ctx, &game.ReloadInput{Spec: loaded.Spec})
	if err != nil {
		return err
	}
	s.println(s.styles.action.Render(out.Message))
	return s.printSnapshot(ctx)
}

func (s *session) printStatus(ctx context.Context) error {
	out, err := s.world.GetResult(ctx)
	if err != nil {
		return err
	}
	s.println(s.styles.title.Render(out.Result.Status()))
	return nil
}

func (s *session) printMap(ctx context.Context) error {
	out, err := s.world.GetResult(ctx)
	if err != nil {
		return err
	}
	s.println(out.Result.MapImage())
	return nil
}

// printSnapshot prints the status line and the current player's view
func (s *session) printSnapshot(ctx context.Context) error {
	out, err := s.world.GetResult(ctx)
	if err != nil {
		return err
	}

	result := out.Result
	s.println(s.styles.title.Render(result.Status()))
	s.printSection("Room", result.RoomDescription())
	s.printSection("Player", result.PlayerDescription())
	if items := result.RoomItems(); len(items) > 0 {
		s.printSection("Items here", strings.Join(items, ", "))
	}
	return nil
}

func (s *session) printSection(title, body string) {
	s.println(s.styles.section.Render(title))
	s.println(s.styles.body.Render(body))
}

func (s *session) println(text string) {
	fmt.Fprintln(s.out, text)
}

// intArg parses args[i] as an integer named what
func intArg(args []string, i int, what string) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing %s", what)
	}
	n, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", what, args[i])
	}
	return n, nil
}
