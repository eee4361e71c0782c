package worldspec

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// Parse reads the line oriented format:
//
//	<rows> <cols> <world name>
//	<target health> <target name>
//	<pet name>
//	<room count>
//	<top> <left> <bottom> <right> <room name>    one line per room
//	<item count>
//	<room id> <damage> <item name>               one line per item
//
// Blank lines are ignored. Room and item names are title cased.
func Parse(r io.Reader) (*entities.WorldSpec, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}
	spec := &entities.WorldSpec{}

	nums, name, err := lr.numbered(2, "world header")
	if err != nil {
		return nil, err
	}
	spec.Rows, spec.Cols, spec.Name = nums[0], nums[1], name

	nums, name, err = lr.numbered(1, "target")
	if err != nil {
		return nil, err
	}
	spec.TargetHealth, spec.TargetName = nums[0], name

	spec.PetName, err = lr.text("pet")
	if err != nil {
		return nil, err
	}

	spec.RoomCount, err = lr.count("room count")
	if err != nil {
		return nil, err
	}
	for i := 0; i < spec.RoomCount; i++ {
		nums, name, err = lr.numbered(4, "room")
		if err != nil {
			return nil, err
		}
		spec.Rooms = append(spec.Rooms, entities.RoomSpec{
			Name:   titleCase(name),
			Bounds: entities.Rect{Top: nums[0], Left: nums[1], Bottom: nums[2], Right: nums[3]},
		})
	}

	spec.ItemCount, err = lr.count("item count")
	if err != nil {
		return nil, err
	}
	for {
		nums, name, err = lr.optionalNumbered(2, "item")
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		spec.Items = append(spec.Items, entities.ItemSpec{
			RoomID: nums[0],
			Damage: nums[1],
			Name:   titleCase(name),
		})
	}

	return spec, nil
}

func titleCase(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the next non-blank line, trimmed, or io.EOF
func (lr *lineReader) next() (string, error) {
	for lr.scanner.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.scanner.Text())
		if text != "" {
			return text, nil
		}
	}
	if err := lr.scanner.Err(); err != nil {
		return "", errors.Wrap(err, "failed to read specification")
	}
	return "", io.EOF
}

func (lr *lineReader) text(what string) (string, error) {
	line, err := lr.next()
	if err == io.EOF {
		return "", errors.InvalidArgumentf("line %d: missing %s", lr.line+1, what)
	}
	return line, err
}

func (lr *lineReader) count(what string) (int, error) {
	line, err := lr.text(what)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil || n < 0 {
		return 0, errors.InvalidArgumentf("line %d: %s %q is not a non-negative number", lr.line, what, line)
	}
	return n, nil
}

// numbered reads a line of n integers followed by a name
func (lr *lineReader) numbered(n int, what string) ([]int, string, error) {
	nums, name, err := lr.optionalNumbered(n, what)
	if err == io.EOF {
		return nil, "", errors.InvalidArgumentf("line %d: missing %s", lr.line+1, what)
	}
	return nums, name, err
}

// optionalNumbered is numbered but returns io.EOF unwrapped at the end of input
func (lr *lineReader) optionalNumbered(n int, what string) ([]int, string, error) {
	line, err := lr.next()
	if err != nil {
		return nil, "", err
	}

	fields := strings.Fields(line)
	if len(fields) <= n {
		return nil, "", errors.InvalidArgumentf("line %d: %s needs %d numbers and a name", lr.line, what, n)
	}

	nums := make([]int, n)
	for i := 0; i < n; i++ {
		v, convErr := strconv.Atoi(fields[i])
		if convErr != nil {
			return nil, "", errors.InvalidArgumentf("line %d: %s field %d %q is not a number", lr.line, what, i+1, fields[i])
		}
		nums[i] = v
	}

	return nums, strings.Join(fields[n:], " "), nil
}
