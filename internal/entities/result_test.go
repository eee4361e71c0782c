package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

func TestResultSettersRejectEmptyText(t *testing.T) {
	result := &entities.Result{}
	require.NoError(t, result.SetStatus("Target is at Hall"))

	setters := map[string]func(string) error{
		"status":             result.SetStatus,
		"last action":        result.SetLastAction,
		"room description":   result.SetRoomDescription,
		"look around":        result.SetLookAround,
		"player description": result.SetPlayerDescription,
		"map image":          result.SetMapImage,
	}

	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			err := set("  ")
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}

	assert.Equal(t, "Target is at Hall", result.Status())
}

func TestResultListSetters(t *testing.T) {
	result := &entities.Result{}

	require.NoError(t, result.SetRoomNames([]string{"Hall", "Library"}))
	require.NoError(t, result.SetHeldItems([]string{}))

	err := result.SetRoomItems(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	err = result.SetRoomNames([]string{"Hall", ""})
	require.Error(t, err)
	assert.Equal(t, []string{"Hall", "Library"}, result.RoomNames())
}

func TestResultCloneAndGettersAreCopies(t *testing.T) {
	result := &entities.Result{}
	require.NoError(t, result.SetRoomNames([]string{"Hall"}))
	require.NoError(t, result.SetLastAction("Ann looked around"))

	clone := result.Clone()
	require.NoError(t, clone.SetLastAction("Bob moved"))

	names := result.RoomNames()
	names[0] = "Attic"

	assert.Equal(t, "Ann looked around", result.LastAction())
	assert.Equal(t, "Bob moved", clone.LastAction())
	assert.Equal(t, []string{"Hall"}, result.RoomNames())
	assert.Equal(t, []string{"Hall"}, clone.RoomNames())
}
