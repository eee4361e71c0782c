package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/manor-hunt/internal/engine"
	"github.com/KirkDiggler/manor-hunt/internal/entities"
)

type VisibilityTestSuite struct {
	suite.Suite
	graph  *engine.Graph
	player *entities.Player
}

func (s *VisibilityTestSuite) SetupTest() {
	var err error
	s.graph, err = engine.NewGraph(lineSpecs("Hall", "Kitchen"))
	s.Require().NoError(err)

	s.player = &entities.Player{Name: "Ann", RoomID: 0, Capacity: 1}
	s.Require().NoError(s.graph.Enter(0, "Ann"))
}

func TestVisibilitySuite(t *testing.T) {
	suite.Run(t, new(VisibilityTestSuite))
}

func (s *VisibilityTestSuite) TestTwoRoomArrangements() {
	testCases := []struct {
		name         string
		sameRoom     []string
		neighborRoom []string
		petRoom      int // -1 for nowhere on this pair
		canBeSeen    bool
		thinksUnseen bool
	}{
		{name: "alone with empty neighbor", petRoom: -1, canBeSeen: false, thinksUnseen: true},
		{name: "neighbor occupied", neighborRoom: []string{"Bob"}, petRoom: -1, canBeSeen: true, thinksUnseen: false},
		{name: "pet blocks occupied neighbor", neighborRoom: []string{"Bob"}, petRoom: 1, canBeSeen: false, thinksUnseen: true},
		{name: "pet in own room with occupied neighbor", neighborRoom: []string{"Bob"}, petRoom: 0, canBeSeen: false, thinksUnseen: true},
		{name: "company in own room", sameRoom: []string{"Bob"}, petRoom: -1, canBeSeen: true, thinksUnseen: false},
		{name: "pet does not hide own room company", sameRoom: []string{"Bob"}, petRoom: 0, canBeSeen: true, thinksUnseen: false},
		{name: "pet in empty neighbor", petRoom: 1, canBeSeen: false, thinksUnseen: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			for _, name := range tc.sameRoom {
				s.Require().NoError(s.graph.Enter(0, name))
			}
			for _, name := range tc.neighborRoom {
				s.Require().NoError(s.graph.Enter(1, name))
			}
			if tc.petRoom >= 0 {
				s.Require().NoError(s.graph.PlacePet(tc.petRoom))
			}

			s.Assert().Equal(tc.canBeSeen, engine.CanBeSeen(s.graph, s.player))
			s.Assert().Equal(tc.thinksUnseen, engine.ThinksCannotBeSeen(s.graph, s.player))
		})
	}
}

func (s *VisibilityTestSuite) TestPetInNeighborFlipsGroundTruth() {
	s.Require().NoError(s.graph.Enter(1, "Bob"))
	s.Assert().True(engine.CanBeSeen(s.graph, s.player))

	s.Require().NoError(s.graph.PlacePet(1))
	s.Assert().False(engine.CanBeSeen(s.graph, s.player))
}

func (s *VisibilityTestSuite) TestUnknownRoom() {
	stray := &entities.Player{Name: "Zed", RoomID: 12}
	s.Assert().False(engine.CanBeSeen(s.graph, stray))
	s.Assert().False(engine.ThinksCannotBeSeen(s.graph, stray))
}

func (s *VisibilityTestSuite) TestPetInOwnRoomHidesFromCrowdedNeighbor() {
	g, err := engine.NewGraph(lineSpecs("Hall", "Kitchen", "Library"))
	s.Require().NoError(err)
	ann := &entities.Player{Name: "Ann", RoomID: 1}
	s.Require().NoError(g.Enter(1, "Ann"))
	s.Require().NoError(g.Enter(2, "Bob"))
	s.Require().NoError(g.Enter(2, "Cid"))
	s.Require().NoError(g.PlacePet(1))

	s.Assert().True(engine.ThinksCannotBeSeen(g, ann))
	s.Assert().False(engine.CanBeSeen(g, ann))

	s.Require().NoError(g.PlacePet(0))
	s.Assert().False(engine.ThinksCannotBeSeen(g, ann))
	s.Assert().True(engine.CanBeSeen(g, ann))
}
