package card

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewError(ErrInsufficientCards, "cannot deal %d cards", 3),
			expected: "INSUFFICIENT_CARDS: cannot deal 3 cards",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrInvalidOrder, "rank_order", errors.New("bad rank")),
			expected: "INVALID_ORDER: rank_order (bad rank)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error())
		})
	}
}

func (s *ErrorTestSuite) TestIsError() {
	cardErr := NewError(ErrPositionOutOfRange, "position 4 out of range")
	nested := WrapError(ErrInvalidOrder, "suit_order", NewError(ErrInvalidCardIdentity, "unknown suit"))

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{name: "Matching error", err: cardErr, code: ErrPositionOutOfRange, expected: true},
		{name: "Non-matching error", err: cardErr, code: ErrInsufficientCards, expected: false},
		{name: "Wrapped with fmt", err: fmt.Errorf("pick: %w", cardErr), code: ErrPositionOutOfRange, expected: true},
		{name: "Nested cause", err: nested, code: ErrInvalidCardIdentity, expected: true},
		{name: "Nested outer", err: nested, code: ErrInvalidOrder, expected: true},
		{name: "Regular error", err: errors.New("regular error"), code: ErrInvalidForm, expected: false},
		{name: "Nil error", err: nil, code: ErrInvalidForm, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, IsError(tc.err, tc.code))
		})
	}
}

func (s *ErrorTestSuite) TestUnwrap() {
	cause := errors.New("connection failed")
	err := WrapError(ErrInvalidOrder, "config", cause)
	s.ErrorIs(err, cause)
}
