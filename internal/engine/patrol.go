package engine

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// PlanPatrol returns a depth-first preorder of every room starting at start.
// Neighbors are explored in stored order. When a component is exhausted the
// walk continues from the lowest unvisited id, so every room appears exactly once.
func PlanPatrol(g *Graph, start int) ([]int, error) {
	if !g.Has(start) {
		return nil, errors.InvalidArgumentf("room %d does not exist", start)
	}

	visited := mapset.New[int]()
	path := make([]int, 0, g.Len())

	type frame struct {
		room int
		next int // index into the room's neighbor list
	}

	walk := func(root int) {
		visited.Put(root)
		path = append(path, root)
		stack := []frame{{room: root}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			neighbors := g.rooms[top.room].Neighbors

			descended := false
			for top.next < len(neighbors) {
				id := neighbors[top.next]
				top.next++
				if visited.Has(id) {
					continue
				}
				visited.Put(id)
				path = append(path, id)
				stack = append(stack, frame{room: id})
				descended = true
				break
			}

			if !descended {
				stack = stack[:len(stack)-1]
			}
		}
	}

	walk(start)
	for id := 0; id < g.Len(); id++ {
		if !visited.Has(id) {
			walk(id)
		}
	}

	return path, nil
}

// Patrol is a cursor over a cyclic patrol path
type Patrol struct {
	path []int
	next int
}

// NewPatrol starts a cursor whose first stop is the room after the path's start
func NewPatrol(path []int) *Patrol {
	p := &Patrol{path: append([]int(nil), path...)}
	if len(p.path) > 0 {
		p.next = 1 % len(p.path)
	}
	return p
}

// Next returns the next stop and moves the cursor, wrapping at the end
func (p *Patrol) Next() int {
	if len(p.path) == 0 {
		return -1
	}
	stop := p.path[p.next]
	p.next = (p.next + 1) % len(p.path)
	return stop
}

// Peek returns the next stop without moving the cursor
func (p *Patrol) Peek() int {
	if len(p.path) == 0 {
		return -1
	}
	return p.path[p.next]
}

// Path returns a copy of the full path
func (p *Patrol) Path() []int {
	return append([]int(nil), p.path...)
}
