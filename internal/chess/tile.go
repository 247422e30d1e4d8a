package chess

// Tile is a single square of a position, either empty or holding a piece.
type Tile struct {
	square   Square
	piece    Piece
	occupied bool
}

// Empty tiles carry no state beyond their square, so one per square is shared.
var emptyTiles = initEmptyTiles()

func initEmptyTiles() [NumTiles]Tile {
	var tiles [NumTiles]Tile
	for sq := range tiles {
		tiles[sq] = Tile{square: Square(sq)}
	}
	return tiles
}

// NewTile returns the tile for sq. A nil piece yields the shared empty tile.
func NewTile(sq Square, piece *Piece) Tile {
	if piece == nil {
		return emptyTiles[sq]
	}
	return Tile{square: sq, piece: *piece, occupied: true}
}

// EmptyTile returns the shared empty tile for sq.
func EmptyTile(sq Square) Tile {
	return emptyTiles[sq]
}

// Square returns the tile's square.
func (t Tile) Square() Square {
	return t.square
}

// Occupied reports whether a piece stands on the tile.
func (t Tile) Occupied() bool {
	return t.occupied
}

// Piece returns the occupying piece, if any.
func (t Tile) Piece() (Piece, bool) {
	return t.piece, t.occupied
}

// String returns "-" for an empty tile or the piece letter.
func (t Tile) String() string {
	if !t.occupied {
		return "-"
	}
	return t.piece.String()
}
