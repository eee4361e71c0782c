package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	petRoams bool
	noColor  bool
)

var playCmd = &cobra.Command{
	Use:   "play <spec-file> <max-turns>",
	Short: "Play a game on the world in spec-file",
	Long: `Play loads the world in spec-file (.yaml and .yml files are read as YAML,
anything else as the line format) and reads commands from standard input.
CPU players take their turns automatically.`,
	Args: cobra.ExactArgs(2),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&petRoams, "roam", false, "the pet walks its patrol one room per turn")
	playCmd.Flags().BoolVar(&noColor, "no-color", false, "print without colors")
}

func runPlay(cmd *cobra.Command, args []string) error {
	maxTurns, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("max-turns must be a number, got %q", args[1])
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	world, loader, err := newWorld(ctx, worldOptions{
		specPath: args[0],
		maxTurns: maxTurns,
		petRoams: petRoams,
	})
	if err != nil {
		return err
	}

	s := &session{
		world:  world,
		loader: loader,
		styles: newStyles(!noColor),
		out:    cmd.OutOrStdout(),
	}
	return s.run(ctx, cmd.InOrStdin())
}

// contextDone reports whether the play session was interrupted
func contextDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
