package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

type WorldSpecTestSuite struct {
	suite.Suite
	spec *entities.WorldSpec
}

func (s *WorldSpecTestSuite) SetupTest() {
	s.spec = &entities.WorldSpec{
		Rows:         10,
		Cols:         10,
		Name:         "Small Manor",
		TargetName:   "Doctor Lucky",
		TargetHealth: 5,
		PetName:      "Fortune",
		RoomCount:    2,
		ItemCount:    1,
		Rooms: []entities.RoomSpec{
			{Name: "Hall", Bounds: entities.Rect{Top: 0, Left: 0, Bottom: 3, Right: 3}},
			{Name: "Butler's Pantry", Bounds: entities.Rect{Top: 0, Left: 4, Bottom: 3, Right: 7}},
		},
		Items: []entities.ItemSpec{
			{RoomID: 1, Damage: 2, Name: "Knife"},
		},
	}
}

func TestWorldSpecSuite(t *testing.T) {
	suite.Run(t, new(WorldSpecTestSuite))
}

func (s *WorldSpecTestSuite) TestValid() {
	s.Assert().NoError(s.spec.Validate())
}

func (s *WorldSpecTestSuite) TestUndeclaredCountsAreNotChecked() {
	s.spec.RoomCount = 0
	s.spec.ItemCount = 0
	s.Assert().NoError(s.spec.Validate())
}

func (s *WorldSpecTestSuite) TestNil() {
	var spec *entities.WorldSpec
	err := spec.Validate()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *WorldSpecTestSuite) TestRejections() {
	testCases := []struct {
		name    string
		mutate  func(*entities.WorldSpec)
		message string
	}{
		{
			name:    "zero rooms",
			mutate:  func(w *entities.WorldSpec) { w.Rooms = nil; w.RoomCount = 0; w.Items = nil; w.ItemCount = 0 },
			message: "must contain at least one room",
		},
		{
			name:    "zero items",
			mutate:  func(w *entities.WorldSpec) { w.Items = nil; w.ItemCount = 0 },
			message: "must contain at least one item",
		},
		{
			name:    "room count mismatch",
			mutate:  func(w *entities.WorldSpec) { w.RoomCount = 3 },
			message: "declared 3 rooms but found 2",
		},
		{
			name:    "item count mismatch",
			mutate:  func(w *entities.WorldSpec) { w.ItemCount = 2 },
			message: "declared 2 items but found 1",
		},
		{
			name:    "duplicate room name",
			mutate:  func(w *entities.WorldSpec) { w.Rooms[1].Name = "Hall" },
			message: `duplicate room name "Hall"`,
		},
		{
			name:    "duplicate bounds",
			mutate:  func(w *entities.WorldSpec) { w.Rooms[1].Bounds = w.Rooms[0].Bounds },
			message: "duplicates bounds",
		},
		{
			name:    "invalid bounds",
			mutate:  func(w *entities.WorldSpec) { w.Rooms[1].Bounds = entities.Rect{Top: 3, Left: 4, Bottom: 3, Right: 7} },
			message: "invalid bounds",
		},
		{
			name:    "bounds outside the map",
			mutate:  func(w *entities.WorldSpec) { w.Rooms[1].Bounds.Right = 10 },
			message: "fall outside the 10x10 map",
		},
		{
			name:    "bad room name characters",
			mutate:  func(w *entities.WorldSpec) { w.Rooms[0].Name = "Hall!" },
			message: "letters, digits, apostrophes and spaces only",
		},
		{
			name:    "item room out of range",
			mutate:  func(w *entities.WorldSpec) { w.Items[0].RoomID = 2 },
			message: "item 0 room 2 does not exist",
		},
		{
			name:    "negative item room",
			mutate:  func(w *entities.WorldSpec) { w.Items[0].RoomID = -1 },
			message: "item 0 room -1 does not exist",
		},
		{
			name:    "non positive damage",
			mutate:  func(w *entities.WorldSpec) { w.Items[0].Damage = 0 },
			message: "damage must be positive",
		},
		{
			name:    "missing target",
			mutate:  func(w *entities.WorldSpec) { w.TargetName = "" },
			message: "target_name: is required",
		},
		{
			name:    "dead target",
			mutate:  func(w *entities.WorldSpec) { w.TargetHealth = 0 },
			message: "target_health: must be at least 1",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			spec := s.spec.Clone()
			tc.mutate(spec)

			err := spec.Validate()
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.message)
		})
	}
}

func (s *WorldSpecTestSuite) TestCloneIsIndependent() {
	clone := s.spec.Clone()
	clone.Rooms[0].Name = "Attic"
	clone.Items[0].Damage = 9

	s.Assert().Equal("Hall", s.spec.Rooms[0].Name)
	s.Assert().Equal(2, s.spec.Items[0].Damage)
}
