package worldspec_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/manor-hunt/internal/clients/worldspec"
	"github.com/KirkDiggler/manor-hunt/internal/entities"
	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

func smallManor() *entities.WorldSpec {
	return &entities.WorldSpec{
		Rows:         6,
		Cols:         12,
		Name:         "Small Manor",
		TargetName:   "Doctor Lucky",
		TargetHealth: 5,
		PetName:      "Fortune the Cat",
		RoomCount:    4,
		ItemCount:    2,
		Rooms: []entities.RoomSpec{
			{Name: "Hall", Bounds: entities.Rect{Top: 0, Left: 0, Bottom: 2, Right: 2}},
			{Name: "Kitchen", Bounds: entities.Rect{Top: 0, Left: 3, Bottom: 2, Right: 5}},
			{Name: "Billiard Room", Bounds: entities.Rect{Top: 0, Left: 6, Bottom: 2, Right: 8}},
			{Name: "Study", Bounds: entities.Rect{Top: 0, Left: 9, Bottom: 2, Right: 11}},
		},
		Items: []entities.ItemSpec{
			{RoomID: 0, Damage: 2, Name: "Kitchen Knife"},
			{RoomID: 2, Damage: 3, Name: "Billiard Cue"},
		},
	}
}

type ClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	client worldspec.Client
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()

	var err error
	s.client, err = worldspec.New(&worldspec.Config{FS: os.DirFS("testdata")})
	s.Require().NoError(err)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TestLoadText() {
	out, err := s.client.Load(s.ctx, &worldspec.LoadInput{Path: "small_manor.txt"})
	s.Require().NoError(err)
	s.Assert().Equal(worldspec.FormatText, out.Format)
	s.Assert().Equal(smallManor(), out.Spec)
	s.Assert().NoError(out.Spec.Validate())
}

func (s *ClientTestSuite) TestLoadYAML() {
	out, err := s.client.Load(s.ctx, &worldspec.LoadInput{Path: "small_manor.yaml"})
	s.Require().NoError(err)
	s.Assert().Equal(worldspec.FormatYAML, out.Format)

	expected := smallManor()
	expected.RoomCount = 0
	expected.ItemCount = 0
	s.Assert().Equal(expected, out.Spec)
}

func (s *ClientTestSuite) TestLoadMissingFile() {
	_, err := s.client.Load(s.ctx, &worldspec.LoadInput{Path: "nowhere.txt"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestLoadRequiresPath() {
	_, err := s.client.Load(s.ctx, &worldspec.LoadInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.client.Load(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestLoadMalformedFile() {
	client, err := worldspec.New(&worldspec.Config{FS: fstest.MapFS{
		"broken.txt": &fstest.MapFile{Data: []byte("6 twelve Small Manor\n")},
	}})
	s.Require().NoError(err)

	_, err = client.Load(s.ctx, &worldspec.LoadInput{Path: "broken.txt"})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestFormatFor() {
	s.Assert().Equal(worldspec.FormatYAML, worldspec.FormatFor("worlds/manor.YML"))
	s.Assert().Equal(worldspec.FormatYAML, worldspec.FormatFor("manor.yaml"))
	s.Assert().Equal(worldspec.FormatText, worldspec.FormatFor("manor.txt"))
	s.Assert().Equal(worldspec.FormatText, worldspec.FormatFor("manor"))
}

func (s *ClientTestSuite) TestParseErrors() {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{name: "empty", input: "", message: "line 1: missing world header"},
		{name: "header without name", input: "6 12\n", message: "line 1: world header needs 2 numbers and a name"},
		{name: "bad number", input: "6 x Manor\n", message: `line 1: world header field 2 "x" is not a number`},
		{name: "missing target", input: "6 12 Manor\n", message: "line 2: missing target"},
		{name: "missing pet", input: "6 12 Manor\n5 Lucky\n", message: "line 3: missing pet"},
		{name: "bad room count", input: "6 12 Manor\n5 Lucky\nCat\nfour\n", message: `room count "four" is not a non-negative number`},
		{name: "missing room", input: "6 12 Manor\n5 Lucky\nCat\n2\n0 0 2 2 hall\n", message: "missing room"},
		{name: "missing item count", input: "6 12 Manor\n5 Lucky\nCat\n1\n0 0 2 2 hall\n", message: "missing item count"},
		{name: "bad item", input: "6 12 Manor\n5 Lucky\nCat\n1\n0 0 2 2 hall\n1\n0 sharp knife\n", message: `line 7: item field 2 "sharp" is not a number`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := worldspec.Parse(strings.NewReader(tc.input))
			s.Require().Error(err)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.message)
		})
	}
}

func (s *ClientTestSuite) TestParseLeavesSemanticChecksToTheWorld() {
	spec, err := worldspec.Parse(strings.NewReader("6 12 Manor\n5 Lucky\nCat\n1\n0 0 2 2 hall\n3\n0 2 knife\n"))
	s.Require().NoError(err)
	s.Assert().Len(spec.Items, 1)

	err = spec.Validate()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "declared 3 items but found 1")
}

func (s *ClientTestSuite) TestParseYAMLErrors() {
	_, err := worldspec.ParseYAML(strings.NewReader(""))
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = worldspec.ParseYAML(strings.NewReader("rows: 6\ncolour: red\n"))
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = worldspec.ParseYAML(strings.NewReader("rows: [1, 2]\n"))
	s.Assert().True(errors.IsInvalidArgument(err))
}
