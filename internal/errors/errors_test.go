package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/manor-hunt/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "room 12 does not exist",
			expected: "INVALID_ARGUMENT: room 12 does not exist",
		},
		{
			name:     "failed precondition error",
			code:     errors.CodeFailedPrecondition,
			message:  "game has not started",
			expected: "FAILED_PRECONDITION: game has not started",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.InvalidState("not your turn").
		WithMeta("player", "Ann").
		WithMeta("turn", 3)

	s.Assert().Equal("Ann", err.Meta["player"])
	s.Assert().Equal(3, err.Meta["turn"])

	err2 := errors.Internal("random source failed").
		WithMetaMap(map[string]interface{}{
			"session_id": "abc",
			"draw":       "cpu_action",
		})

	s.Assert().Equal("abc", err2.Meta["session_id"])
	s.Assert().Equal("cpu_action", err2.Meta["draw"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("file vanished")
	wrapped := errors.Wrap(baseErr, "failed to load world")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load world", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.InvalidArgument("duplicate room name")
	wrapped := errors.Wrap(baseErr, "invalid world specification")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("invalid world specification", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("unexpected token")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInvalidArgument, "malformed specification")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("malformed specification", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name        string
		constructor func() *errors.Error
		code        errors.Code
	}{
		{"NotFound", func() *errors.Error { return errors.NotFound("test") }, errors.CodeNotFound},
		{"InvalidArgument", func() *errors.Error { return errors.InvalidArgument("test") }, errors.CodeInvalidArgument},
		{"AlreadyExists", func() *errors.Error { return errors.AlreadyExists("test") }, errors.CodeAlreadyExists},
		{"FailedPrecondition", func() *errors.Error { return errors.FailedPrecondition("test") }, errors.CodeFailedPrecondition},
		{"InvalidState", func() *errors.Error { return errors.InvalidState("test") }, errors.CodeFailedPrecondition},
		{"Internal", func() *errors.Error { return errors.Internal("test") }, errors.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.constructor()
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal("test", err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	err := errors.NotFoundf("player %s not found", "Ann")
	s.Assert().Equal(errors.CodeNotFound, err.Code)
	s.Assert().Equal("player Ann not found", err.Message)

	err2 := errors.InvalidStatef("%s cannot act on a cpu turn", "Ann")
	s.Assert().Equal(errors.CodeFailedPrecondition, err2.Code)
	s.Assert().Equal("Ann cannot act on a cpu turn", err2.Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.InvalidState("test")
	err2 := errors.FailedPrecondition("other")
	err3 := errors.InvalidArgument("test")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	stateErr := errors.InvalidState("test")
	invalidErr := errors.InvalidArgument("test")
	wrappedErr := errors.Wrap(stateErr, "wrapped")

	s.Assert().True(errors.IsInvalidState(stateErr))
	s.Assert().True(errors.IsInvalidState(wrappedErr))
	s.Assert().True(errors.IsFailedPrecondition(wrappedErr))
	s.Assert().False(errors.IsInvalidState(invalidErr))

	s.Assert().True(errors.IsInvalidArgument(invalidErr))
	s.Assert().False(errors.IsInvalidArgument(stateErr))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	err := errors.NotFound("test").WithMeta("key", "value")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal("value", errors.GetMeta(err)["key"])
	s.Assert().Equal("value", errors.GetMeta(wrapped)["key"])
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.InvalidState("game is over")
	wrapped := errors.Wrap(err, "cannot look around")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("game is over", errors.GetMessage(err))
	s.Assert().Equal("cannot look around", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
}

func (s *ErrorsTestSuite) TestRecoverable() {
	testCases := []struct {
		code     errors.Code
		expected bool
	}{
		{errors.CodeOK, true},
		{errors.CodeInvalidArgument, true},
		{errors.CodeFailedPrecondition, true},
		{errors.CodeNotFound, true},
		{errors.CodeInternal, false},
		{errors.Code("SOMETHING_ELSE"), false},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.Recoverable())
		})
	}
}
