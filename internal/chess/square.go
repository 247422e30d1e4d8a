package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a board index in [0, 64), row-major with a8 at 0 and h1 at 63.
type Square int

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// Constants for board dimensions.
const (
	NumTiles       = 64
	NumTilesPerRow = 8
)

// Column and rank membership tables, indexed by square.
var (
	FirstColumn   = initColumn(0)
	SecondColumn  = initColumn(1)
	SeventhColumn = initColumn(6)
	EighthColumn  = initColumn(7)

	EighthRank  = initRow(0)
	SeventhRank = initRow(8)
	SixthRank   = initRow(16)
	SecondRank  = initRow(48)
	FirstRank   = initRow(56)
)

var (
	algebraicNotation = initAlgebraicNotation()
	squareByName      = initSquareByName()
)

func initColumn(col int) [NumTiles]bool {
	var column [NumTiles]bool
	for sq := col; sq < NumTiles; sq += NumTilesPerRow {
		column[sq] = true
	}
	return column
}

func initRow(start int) [NumTiles]bool {
	var row [NumTiles]bool
	for sq := start; sq < start+NumTilesPerRow; sq++ {
		row[sq] = true
	}
	return row
}

func initAlgebraicNotation() [NumTiles]string {
	var names [NumTiles]string
	for sq := 0; sq < NumTiles; sq++ {
		col := byte('a' + sq%NumTilesPerRow)
		rank := byte('8' - sq/NumTilesPerRow)
		names[sq] = string([]byte{col, rank})
	}
	return names
}

func initSquareByName() map[string]Square {
	m := make(map[string]Square, NumTiles)
	for sq, name := range algebraicNotation {
		m[name] = Square(sq)
	}
	return m
}

// IsValid reports whether sq is on the board.
func IsValid(sq int) bool {
	return sq >= 0 && sq < NumTiles
}

// Valid reports whether the square is on the board.
func (sq Square) Valid() bool {
	return IsValid(int(sq))
}

// Col returns the zero-based file, 0 for the a-file.
func (sq Square) Col() int {
	return int(sq) % NumTilesPerRow
}

// Row returns the zero-based row from the top, 0 for rank 8.
func (sq Square) Row() int {
	return int(sq) / NumTilesPerRow
}

// File returns the file letter of the square.
func (sq Square) File() byte {
	return byte('a' + sq.Col())
}

// Rank returns the rank digit of the square.
func (sq Square) Rank() byte {
	return byte('8' - sq.Row())
}

// Offset returns the square reached by adding delta to sq. The result may be
// off the board; callers check Valid.
func (sq Square) Offset(delta int) Square {
	return sq + Square(delta)
}

// String returns the algebraic name of the square ("a8".."h1"), or "-" when
// the square is off the board.
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return algebraicNotation[sq]
}

// ParseSquare converts algebraic notation such as "e4" to a square.
func ParseSquare(name string) (Square, error) {
	if sq, ok := squareByName[name]; ok {
		return sq, nil
	}
	return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for package-level tables and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// SquareAt returns the square for a zero-based column and row (row 0 = rank 8).
func SquareAt(col, row int) Square {
	if col < 0 || col >= NumTilesPerRow || row < 0 || row >= NumTilesPerRow {
		return NoSquare
	}
	return Square(row*NumTilesPerRow + col)
}
