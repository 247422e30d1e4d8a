// Package chess provides the leaf types of the rules engine: sides, squares,
// piece values and tiles. Nothing in this package knows how pieces move.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns the square-index step of a forward pawn move.
// White moves towards index 0 because rank 8 occupies indices 0..7.
func (c Colour) Direction() int {
	if c == White {
		return -1
	}
	return 1
}

// OppositeDirection returns the step pointing back towards this side's own rank.
func (c Colour) OppositeDirection() int {
	return -c.Direction()
}

// IsPromotionSquare reports whether sq lies on the far rank for this side.
func (c Colour) IsPromotionSquare(sq Square) bool {
	if !sq.Valid() {
		return false
	}
	if c == White {
		return EighthRank[sq]
	}
	return FirstRank[sq]
}

// PawnStartRank reports whether sq is on the rank this side's pawns start on.
func (c Colour) PawnStartRank(sq Square) bool {
	if !sq.Valid() {
		return false
	}
	if c == White {
		return SecondRank[sq]
	}
	return SeventhRank[sq]
}

// Select returns white or black depending on c.
func Select[T any](c Colour, white, black T) T {
	if c == White {
		return white
	}
	return black
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single upper case letter used in move text.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter in either case to a Kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// IsPromotionChoice reports whether a pawn may promote to k.
func (k Kind) IsPromotionChoice() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}
