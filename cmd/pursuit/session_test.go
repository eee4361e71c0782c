package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/manor-hunt/internal/clients/worldspec"
	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
	"github.com/KirkDiggler/manor-hunt/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/manor-hunt/internal/orchestrators/game/mock"
)

const twoRoomWorld = `4 6 Tiny Manor
3 Doctor Lucky
Fortune the Cat
2
0 0 2 2 hall
0 3 2 5 kitchen
1
1 2 rope
`

type SessionTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockWorld *gamemock.MockService
	out       *bytes.Buffer
	session   *session
	ctx       context.Context
}

func (s *SessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockWorld = gamemock.NewMockService(s.ctrl)
	s.out = &bytes.Buffer{}
	s.ctx = context.Background()

	loader, err := worldspec.New(&worldspec.Config{FS: fstest.MapFS{
		"tiny.txt": {Data: []byte(twoRoomWorld)},
	}})
	s.Require().NoError(err)

	s.session = &session{
		world:  s.mockWorld,
		loader: loader,
		styles: newStyles(false),
		out:    s.out,
	}
}

func (s *SessionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) snapshot(status string) *game.GetResultOutput {
	result := &entities.Result{}
	s.Require().NoError(result.SetStatus(status))
	s.Require().NoError(result.SetRoomDescription("Your current room: Hall-0"))
	s.Require().NoError(result.SetPlayerDescription("Ann, max item: 2"))
	s.Require().NoError(result.SetLookAround("Looking around from Hall-0"))
	s.Require().NoError(result.SetMapImage("+--+"))
	s.Require().NoError(result.SetRoomItems([]string{"Knife"}))
	return &game.GetResultOutput{Result: result}
}

func (s *SessionTestSuite) TestMovePlaysCpuTurnsUntilHumanIsUp() {
	gomock.InOrder(
		s.mockWorld.EXPECT().
			MoveHuman(gomock.Any(), &game.MoveHumanInput{RoomID: 2}).
			Return(&game.ActionOutput{Message: "Ann moved to Library", Advanced: true}, nil),
		s.mockWorld.EXPECT().Phase(gomock.Any()).Return(game.PhaseInProgress),
		s.mockWorld.EXPECT().IsCurrentTurnCPU(gomock.Any()).Return(true, nil),
		s.mockWorld.EXPECT().TakeCpuTurn(gomock.Any()).
			Return(&game.ActionOutput{Message: "CPU_abcde: looked around from Hall", Advanced: true}, nil),
		s.mockWorld.EXPECT().Phase(gomock.Any()).Return(game.PhaseInProgress),
		s.mockWorld.EXPECT().IsCurrentTurnCPU(gomock.Any()).Return(false, nil),
		s.mockWorld.EXPECT().GetResult(gomock.Any()).
			Return(s.snapshot("Target is at Kitchen   Ann's turn   Turn:3/10"), nil),
	)

	quit, err := s.session.execute(s.ctx, "move 2")
	s.Require().NoError(err)
	s.Assert().False(quit)

	output := s.out.String()
	s.Assert().Contains(output, "Ann moved to Library")
	s.Assert().Contains(output, "CPU_abcde: looked around from Hall")
	s.Assert().Contains(output, "Turn:3/10")
	s.Assert().Contains(output, "Knife")
}

func (s *SessionTestSuite) TestCpuTurnsStopWhenTheGameIsOver() {
	gomock.InOrder(
		s.mockWorld.EXPECT().Start(gomock.Any()).
			Return(&game.ActionOutput{Message: "The game has started"}, nil),
		s.mockWorld.EXPECT().Phase(gomock.Any()).Return(game.PhaseInProgress),
		s.mockWorld.EXPECT().IsCurrentTurnCPU(gomock.Any()).Return(true, nil),
		s.mockWorld.EXPECT().TakeCpuTurn(gomock.Any()).
			Return(&game.ActionOutput{Message: "CPU_abcde: attacked Doctor Lucky with an eye poke"}, nil),
		s.mockWorld.EXPECT().Phase(gomock.Any()).Return(game.PhaseOver),
		s.mockWorld.EXPECT().GetResult(gomock.Any()).
			Return(s.snapshot("Game Over! CPU_abcde wins"), nil),
	)

	_, err := s.session.execute(s.ctx, "start")
	s.Require().NoError(err)
	s.Assert().Contains(s.out.String(), "Game Over! CPU_abcde wins")
}

func (s *SessionTestSuite) TestKillDefaultsToEyePoke() {
	s.mockWorld.EXPECT().
		AttemptKill(gomock.Any(), &game.AttemptKillInput{ItemID: entities.EyePokeItemID}).
		Return(nil, errors.InvalidState("Doctor Lucky is not in Hall"))

	_, err := s.session.execute(s.ctx, "kill")
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidState(err))
}

func (s *SessionTestSuite) TestLookPrintsTheView() {
	snapshot := s.snapshot("Target is at Hall   Ann's turn   Turn:2/10")
	gomock.InOrder(
		s.mockWorld.EXPECT().Look(gomock.Any()).
			Return(&game.ActionOutput{Message: "Ann looked around from Hall", Advanced: true, Result: snapshot.Result}, nil),
		s.mockWorld.EXPECT().Phase(gomock.Any()).Return(game.PhaseInProgress),
		s.mockWorld.EXPECT().IsCurrentTurnCPU(gomock.Any()).Return(false, nil),
		s.mockWorld.EXPECT().GetResult(gomock.Any()).Return(snapshot, nil),
	)

	_, err := s.session.execute(s.ctx, "look")
	s.Require().NoError(err)
	s.Assert().Contains(s.out.String(), "Looking around from Hall-0")
}

func (s *SessionTestSuite) TestAddJoinsTheRestOfTheLineAsName() {
	s.mockWorld.EXPECT().
		AddHumanPlayer(gomock.Any(), &game.AddHumanPlayerInput{Name: "Miss Scarlet", RoomID: 1}).
		Return(&game.AddPlayerOutput{Message: "Player 1, Miss Scarlet, has joined in Kitchen"}, nil)

	_, err := s.session.execute(s.ctx, "add 1 Miss Scarlet")
	s.Require().NoError(err)
	s.Assert().Contains(s.out.String(), "has joined in Kitchen")
}

func (s *SessionTestSuite) TestReloadReadsTheFile() {
	s.mockWorld.EXPECT().
		Reload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *game.ReloadInput) (*game.ActionOutput, error) {
			s.Assert().Equal("Tiny Manor", input.Spec.Name)
			s.Assert().Len(input.Spec.Rooms, 2)
			return &game.ActionOutput{Message: "Welcome to Tiny Manor"}, nil
		})
	s.mockWorld.EXPECT().GetResult(gomock.Any()).
		Return(s.snapshot("Add up to 10 players and start the game (0 joined)"), nil)

	_, err := s.session.execute(s.ctx, "reload tiny.txt")
	s.Require().NoError(err)
	s.Assert().Contains(s.out.String(), "Welcome to Tiny Manor")

	_, err = s.session.execute(s.ctx, "reload missing.txt")
	s.Assert().True(errors.IsNotFound(err))
}

func (s *SessionTestSuite) TestBadArgumentsNeverReachTheWorld() {
	for _, line := range []string{
		"move",
		"move north",
		"goto 1",
		"pick knife",
		"pet",
		"kill sword",
		"add 0",
		"add Ann",
		"info",
		"room x",
		"reload",
		"dance",
	} {
		_, err := s.session.execute(s.ctx, line)
		s.Assert().Error(err, line)
	}
}

func (s *SessionTestSuite) TestRunStopsAtQuitAndReportsErrors() {
	s.mockWorld.EXPECT().GetResult(gomock.Any()).
		Return(s.snapshot("Add up to 10 players and start the game (0 joined)"), nil)

	err := s.session.run(s.ctx, strings.NewReader("\nmove north\nquit\nlook\n"))
	s.Require().NoError(err)

	output := s.out.String()
	s.Assert().Contains(output, "Commands:")
	s.Assert().Contains(output, `Error: room id must be a number, got "north"`)
}
