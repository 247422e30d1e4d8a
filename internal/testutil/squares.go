package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MustSquare parses an algebraic square name, failing the test on error.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// Squares parses a list of algebraic square names. It panics on bad input,
// so it suits table literals.
func Squares(names ...string) []chess.Square {
	squares := make([]chess.Square, len(names))
	for i, name := range names {
		squares[i] = chess.MustParseSquare(name)
	}
	return squares
}

// SquareNames converts squares back to their algebraic names.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}
