// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	randommock "github.com/KirkDiggler/manor-hunt/internal/pkg/random/mock"
)

// Draw is one expected NextInt call and the value it returns
type Draw struct {
	Min   int
	Max   int
	Value int
}

// ExpectDraws sets up NextInt expectations that must happen in the given order
func ExpectDraws(src *randommock.MockSource, draws ...Draw) {
	calls := make([]any, len(draws))
	for i, d := range draws {
		calls[i] = src.EXPECT().NextInt(d.Min, d.Max).Return(d.Value, nil)
	}
	gomock.InOrder(calls...)
}

// CapacityDraw is the draw of a new player's item capacity
func CapacityDraw(capacity int) Draw {
	return Draw{Min: 1, Max: 5, Value: capacity}
}

// NameDraws are the five letter draws that produce "CPU_" + letters
func NameDraws(letters string) []Draw {
	draws := make([]Draw, len(letters))
	for i := 0; i < len(letters); i++ {
		draws[i] = Draw{Min: 0, Max: 25, Value: int(letters[i] - 'a')}
	}
	return draws
}

// CpuAddDraws are the draws of AddCpuPlayer in order: room, capacity, name
func CpuAddDraws(rooms, roomID, capacity int, letters string) []Draw {
	draws := []Draw{
		{Min: 0, Max: rooms - 1, Value: roomID},
		CapacityDraw(capacity),
	}
	return append(draws, NameDraws(letters)...)
}

// CpuAddValues are CpuAddDraws as plain values for a random.Queue
func CpuAddValues(roomID, capacity int, letters string) []int {
	values := []int{roomID, capacity}
	for i := 0; i < len(letters); i++ {
		values = append(values, int(letters[i]-'a'))
	}
	return values
}
