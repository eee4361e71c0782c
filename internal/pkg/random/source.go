// Package random provides the integer source behind every nondeterministic
// choice in a game: CPU behavior, player capacities and CPU names.
package random

//go:generate mockgen -destination=mock/mock_source.go -package=randommock github.com/KirkDiggler/manor-hunt/internal/pkg/random Source

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

// Source returns integers in an inclusive range
type Source interface {
	// NextInt returns a value in [minValue, maxValue]
	NextInt(minValue, maxValue int) (int, error)
}

// Config holds the dependencies for a dice backed source
type Config struct {
	// Roller defaults to dice.DefaultRoller when nil
	Roller dice.Roller
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	return nil
}

// DiceSource maps inclusive ranges onto single die rolls
type DiceSource struct {
	roller dice.Roller
}

// New creates a dice backed source
func New(cfg *Config) (*DiceSource, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	return &DiceSource{roller: roller}, nil
}

// NextInt rolls a die with one face per value in the range
func (s *DiceSource) NextInt(minValue, maxValue int) (int, error) {
	if minValue > maxValue {
		return 0, errors.InvalidArgumentf("invalid range [%d, %d]", minValue, maxValue)
	}
	if minValue == maxValue {
		return minValue, nil
	}

	size := maxValue - minValue + 1
	roll, err := s.roller.Roll(size)
	if err != nil {
		return 0, errors.WrapWithCodef(err, errors.CodeInternal, "failed to roll d%d", size)
	}
	if roll < 1 || roll > size {
		return 0, errors.Internalf("roller returned %d for d%d", roll, size)
	}

	return minValue + roll - 1, nil
}
