package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failure paths cannot be observed without mocking *testing.T, so these
// tests cover the success paths and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e4", "e4")
	AssertEqual(t, 20, 20)
	AssertEqual(t, []string{"a1", "h8"}, []string{"a1", "h8"})
	AssertEqual(t, 8902, 8902, "perft(%d)", 3)
}

func TestAssertSameStrings_IgnoresOrder(t *testing.T) {
	AssertSameStrings(t, []string{"e2e4", "d2d4", "g1f3"}, []string{"g1f3", "e2e4", "d2d4"})
	AssertSameStrings(t, nil, []string{})
}

func TestAssertErrorIs(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertNoError(t, nil, "no error expected")
}

func TestAssertPanics(t *testing.T) {
	sentinel := errors.New("boom")
	AssertPanics(t, sentinel, func() {
		panic(fmt.Errorf("context: %w", sentinel))
	})
}

func TestAssertBooleansAndContains(t *testing.T) {
	AssertTrue(t, len("O-O-O") == 5)
	AssertFalse(t, len("O-O") == 5)
	AssertContains(t, "1. e4 e5", "e5")
}

func TestSorted(t *testing.T) {
	in := []string{"c", "a", "b"}
	AssertEqual(t, Sorted(in), []string{"a", "b", "c"})
	AssertEqual(t, in, []string{"c", "a", "b"}, "input must not be reordered")
}

func TestSquares(t *testing.T) {
	squares := Squares("a8", "h1", "e4")
	AssertEqual(t, []int{int(squares[0]), int(squares[1]), int(squares[2])}, []int{0, 63, 36})
	AssertEqual(t, SquareNames(squares), []string{"a8", "h1", "e4"})
	AssertEqual(t, int(MustSquare(t, "d5")), 27)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"move %s", "e4"}, "move e4"},
		{"format multiple", []interface{}{"%s %d", "depth", 3}, "depth 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
