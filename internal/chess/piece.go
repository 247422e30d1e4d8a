package chess

// Piece is an immutable piece value. Two pieces are the same logical piece
// only if every field matches, so the struct is compared with ==.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square

	// FirstMove is true until the piece has moved.
	FirstMove bool

	// King only.
	Castled         bool
	KingSideCastle  bool
	QueenSideCastle bool
}

// NewPiece creates a piece that has not moved yet.
func NewPiece(kind Kind, colour Colour, sq Square) Piece {
	return Piece{Kind: kind, Colour: colour, Square: sq, FirstMove: true}
}

// NewKing creates an unmoved king with the given castling rights.
func NewKing(colour Colour, sq Square, kingSide, queenSide bool) Piece {
	return Piece{
		Kind:            King,
		Colour:          colour,
		Square:          sq,
		FirstMove:       true,
		KingSideCastle:  kingSide,
		QueenSideCastle: queenSide,
	}
}

// Moved returns a copy of the piece placed on sq that is no longer on its
// first move. King castling rights are dropped; castled records whether the
// relocation was a castle.
func (p Piece) Moved(sq Square, castled bool) Piece {
	np := Piece{Kind: p.Kind, Colour: p.Colour, Square: sq}
	if p.Kind == King {
		np.Castled = castled
	}
	return np
}

// Letter returns the board letter: upper case for White, lower case for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns the board letter of the piece.
func (p Piece) String() string {
	return string(p.Letter())
}
