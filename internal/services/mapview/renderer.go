// Package mapview draws a world's rooms as a text map.
package mapview

//go:generate mockgen -destination=mock/mock_renderer.go -package=mapviewmock github.com/KirkDiggler/manor-hunt/internal/services/mapview Renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// Renderer turns room state into a map image
type Renderer interface {
	Render(input *RenderInput) (*RenderOutput, error)
}

// RenderInput is the state drawn on the map
type RenderInput struct {
	Rows         int
	Cols         int
	Rooms        []*entities.Room
	TargetRoomID int
}

// Validate ensures the map can be drawn
func (i *RenderInput) Validate() error {
	if i == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("Rows", i.Rows, 1, vb)
	errors.ValidateMin("Cols", i.Cols, 1, vb)
	if len(i.Rooms) == 0 {
		vb.RequiredField("Rooms")
	}
	return vb.Build()
}

// RenderOutput holds the drawn map
type RenderOutput struct {
	Image string
}

// Config holds renderer settings
type Config struct {
	// Scale is how many characters wide each map column is drawn
	Scale int
}

// Validate ensures the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("Scale", c.Scale, 1, 4, vb)
	return vb.Build()
}

type renderer struct {
	scale int
}

// New creates a text map renderer
func New(cfg *Config) (Renderer, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &renderer{scale: cfg.Scale}, nil
}

// Render outlines every room and writes its id, T for the target, P for the
// pet and the player count inside it
func (r *renderer) Render(input *RenderInput) (*RenderOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := newCanvas(input.Rows, input.Cols*r.scale)
	for _, room := range input.Rooms {
		top, bottom := room.Bounds.Top, room.Bounds.Bottom
		left := room.Bounds.Left * r.scale
		right := (room.Bounds.Right+1)*r.scale - 1

		c.box(top, left, bottom, right)
		c.label(top+1, left+1, bottom-1, right-1, tokens(room, input.TargetRoomID))
	}

	return &RenderOutput{Image: c.String()}, nil
}

func tokens(room *entities.Room, targetRoomID int) []string {
	out := []string{strconv.Itoa(room.ID)}
	if room.ID == targetRoomID {
		out = append(out, "T")
	}
	if room.HasPet {
		out = append(out, "P")
	}
	if n := len(room.Occupants); n > 0 {
		out = append(out, fmt.Sprintf("%dp", n))
	}
	return out
}

type canvas struct {
	cells [][]rune
}

func newCanvas(rows, cols int) *canvas {
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return &canvas{cells: cells}
}

func (c *canvas) set(row, col int, ch rune) {
	if row < 0 || row >= len(c.cells) || col < 0 || col >= len(c.cells[row]) {
		return
	}
	c.cells[row][col] = ch
}

func (c *canvas) box(top, left, bottom, right int) {
	for col := left + 1; col < right; col++ {
		c.set(top, col, '-')
		c.set(bottom, col, '-')
	}
	for row := top + 1; row < bottom; row++ {
		c.set(row, left, '|')
		c.set(row, right, '|')
	}
	for _, corner := range [][2]int{{top, left}, {top, right}, {bottom, left}, {bottom, right}} {
		c.set(corner[0], corner[1], '+')
	}
}

// label writes tokens into the box interior, wrapping whole tokens onto the
// next row and dropping whatever does not fit
func (c *canvas) label(top, left, bottom, right int, tokens []string) {
	width := right - left + 1
	if width <= 0 || bottom < top {
		return
	}

	row, used := top, 0
	for _, token := range tokens {
		need := len(token)
		if used > 0 {
			need++
		}
		if used+need > width {
			row++
			used = 0
			need = len(token)
		}
		if row > bottom || need > width {
			return
		}
		col := left + used
		if used > 0 {
			col++
		}
		for i, ch := range token {
			c.set(row, col+i, ch)
		}
		used += need
	}
}

func (c *canvas) String() string {
	lines := make([]string, len(c.cells))
	for i, row := range c.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}
