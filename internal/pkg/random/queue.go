package random

import (
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// Queue replays an exact ordered sequence of values.
// It fails loudly when exhausted or when the next value is outside the
// requested range, so a test that draws more or different values than
// scripted breaks at the offending call.
type Queue struct {
	values []int
	pos    int
}

// NewQueue creates a queue holding values in draw order
func NewQueue(values ...int) *Queue {
	return &Queue{values: append([]int(nil), values...)}
}

// Push appends values to the end of the queue
func (q *Queue) Push(values ...int) {
	q.values = append(q.values, values...)
}

// Remaining returns how many values have not been drawn
func (q *Queue) Remaining() int {
	return len(q.values) - q.pos
}

// NextInt returns the next scripted value
func (q *Queue) NextInt(minValue, maxValue int) (int, error) {
	if minValue > maxValue {
		return 0, errors.InvalidArgumentf("invalid range [%d, %d]", minValue, maxValue)
	}
	if q.pos >= len(q.values) {
		return 0, errors.Internalf("random queue exhausted after %d draws", q.pos)
	}

	v := q.values[q.pos]
	if v < minValue || v > maxValue {
		return 0, errors.InvalidArgumentf("queued value %d outside [%d, %d] at draw %d", v, minValue, maxValue, q.pos+1)
	}

	q.pos++
	return v, nil
}
