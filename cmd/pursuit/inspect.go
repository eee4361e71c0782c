package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/manor-hunt/internal/orchestrators/game"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <spec-file>",
	Short: "Print the rooms, neighbors and pet patrol of a world",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		world, _, err := newWorld(cmd.Context(), worldOptions{
			specPath: args[0],
			maxTurns: 1,
		})
		if err != nil {
			return err
		}

		summary, err := world.Summary(cmd.Context())
		if err != nil {
			return err
		}
		result, err := world.GetResult(cmd.Context())
		if err != nil {
			return err
		}

		writeSummary(cmd.OutOrStdout(), summary)
		fmt.Fprintln(cmd.OutOrStdout(), result.Result.MapImage())
		return nil
	},
}

// writeSummary prints a world layout: rooms with their neighbors and items, then the patrol
func writeSummary(w io.Writer, summary *game.SummaryOutput) {
	fmt.Fprintf(w, "%s (%dx%d)\n", summary.WorldName, summary.Rows, summary.Cols)
	fmt.Fprintf(w, "Target: %s, health %d\n", summary.Target.Name, summary.Target.Health)
	fmt.Fprintf(w, "Pet: %s\n", summary.Pet.Name)
	fmt.Fprintln(w, "Rooms:")

	for _, room := range summary.Rooms {
		neighbors := make([]string, len(room.Neighbors))
		for i, id := range room.Neighbors {
			neighbors[i] = summary.Rooms[id].Label()
		}
		items := make([]string, len(room.Items))
		for i, item := range room.Items {
			items[i] = fmt.Sprintf("%d.%s", item.ID, item)
		}

		fmt.Fprintf(w, "  %s %s\n", room.Label(), room.Bounds)
		fmt.Fprintf(w, "    neighbors: %s\n", joinOrNone(neighbors))
		fmt.Fprintf(w, "    items: %s\n", joinOrNone(items))
	}

	stops := make([]string, len(summary.Patrol))
	for i, id := range summary.Patrol {
		stops[i] = summary.Rooms[id].Label()
	}
	fmt.Fprintf(w, "Patrol: %s\n", strings.Join(stops, " -> "))
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
