package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveKind tags the variants of Move.
type MoveKind int

const (
	NullMove MoveKind = iota
	QuietMove
	CaptureMove
	PawnJump
	EnPassantMove
	PromotionMove
	KingSideCastle
	QueenSideCastle
)

// String returns the name of a move kind.
func (k MoveKind) String() string {
	names := []string{"Null", "Quiet", "Capture", "PawnJump", "EnPassant", "Promotion", "KingSideCastle", "QueenSideCastle"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move describes a transition from the position it was generated in.
// It never changes that position; Execute builds a new one.
type Move struct {
	kind  MoveKind
	board *Position
	piece chess.Piece
	dest  chess.Square

	// Capture and EnPassant.
	attacked chess.Piece

	// Castles.
	rook     chess.Piece
	rookDest chess.Square

	// Promotion.
	inner     *Move
	promoteTo chess.Kind
}

// MoveKey identifies a move independently of the position it came from.
type MoveKey struct {
	From  chess.Square
	To    chess.Square
	Piece chess.Piece
}

// nullMove is the sentinel returned when no move matches a request.
var nullMove = Move{kind: NullMove, dest: chess.NoSquare}

// Null returns the null move sentinel.
func Null() Move {
	return nullMove
}

func newQuiet(pos *Position, piece chess.Piece, dest chess.Square) Move {
	return Move{kind: QuietMove, board: pos, piece: piece, dest: dest}
}

func newCapture(pos *Position, piece chess.Piece, dest chess.Square, attacked chess.Piece) Move {
	return Move{kind: CaptureMove, board: pos, piece: piece, dest: dest, attacked: attacked}
}

func newPawnJump(pos *Position, piece chess.Piece, dest chess.Square) Move {
	return Move{kind: PawnJump, board: pos, piece: piece, dest: dest}
}

func newEnPassant(pos *Position, piece chess.Piece, dest chess.Square, attacked chess.Piece) Move {
	return Move{kind: EnPassantMove, board: pos, piece: piece, dest: dest, attacked: attacked}
}

func newPromotion(inner Move, promoteTo chess.Kind) Move {
	return Move{
		kind:      PromotionMove,
		board:     inner.board,
		piece:     inner.piece,
		dest:      inner.dest,
		inner:     &inner,
		promoteTo: promoteTo,
	}
}

func newCastle(kind MoveKind, pos *Position, king chess.Piece, dest chess.Square, rook chess.Piece, rookDest chess.Square) Move {
	return Move{kind: kind, board: pos, piece: king, dest: dest, rook: rook, rookDest: rookDest}
}

// Kind returns the variant tag.
func (m Move) Kind() MoveKind {
	return m.kind
}

// Board returns the position the move was generated in (nil for the null move).
func (m Move) Board() *Position {
	return m.board
}

// Origin returns the square the moved piece starts on.
func (m Move) Origin() chess.Square {
	if m.kind == NullMove {
		return chess.NoSquare
	}
	return m.piece.Square
}

// Destination returns the square the moved piece lands on.
func (m Move) Destination() chess.Square {
	return m.dest
}

// MovedPiece returns the piece being moved, as it stands before the move.
func (m Move) MovedPiece() chess.Piece {
	return m.piece
}

// IsNull reports whether m is the null move sentinel.
func (m Move) IsNull() bool {
	return m.kind == NullMove
}

// IsAttack reports whether the move captures a piece.
func (m Move) IsAttack() bool {
	switch m.kind {
	case CaptureMove, EnPassantMove:
		return true
	case PromotionMove:
		return m.inner.IsAttack()
	default:
		return false
	}
}

// IsCastling reports whether the move is a castle.
func (m Move) IsCastling() bool {
	return m.kind == KingSideCastle || m.kind == QueenSideCastle
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.kind == PromotionMove
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.kind == EnPassantMove
}

// AttackedPiece returns the captured piece, if any. For en passant this is
// the en-passant pawn, which does not stand on the destination square.
func (m Move) AttackedPiece() (chess.Piece, bool) {
	switch m.kind {
	case CaptureMove, EnPassantMove:
		return m.attacked, true
	case PromotionMove:
		return m.inner.AttackedPiece()
	default:
		return chess.Piece{}, false
	}
}

// CastleRook returns the rook relocated by a castle and its destination.
func (m Move) CastleRook() (chess.Piece, chess.Square, bool) {
	if !m.IsCastling() {
		return chess.Piece{}, chess.NoSquare, false
	}
	return m.rook, m.rookDest, true
}

// PromotionKind returns the piece a promotion produces, or NoKind.
func (m Move) PromotionKind() chess.Kind {
	if m.kind != PromotionMove {
		return chess.NoKind
	}
	return m.promoteTo
}

// Inner returns the move wrapped by a promotion.
func (m Move) Inner() (Move, bool) {
	if m.kind != PromotionMove {
		return Move{}, false
	}
	return *m.inner, true
}

// WithPromotion returns a copy of a promotion move that promotes to kind.
// Non-promotion moves and invalid choices are returned unchanged.
func (m Move) WithPromotion(kind chess.Kind) Move {
	if m.kind != PromotionMove || !kind.IsPromotionChoice() {
		return m
	}
	m.promoteTo = kind
	return m
}

// Key returns the position-independent identity of the move.
func (m Move) Key() MoveKey {
	return MoveKey{From: m.Origin(), To: m.dest, Piece: m.piece}
}

// Equal reports whether two moves have the same origin, destination and
// moved piece. The board they were generated on is not compared.
func (m Move) Equal(o Move) bool {
	return m.Key() == o.Key()
}

// Coordinates returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) Coordinates() string {
	if m.kind == NullMove {
		return "0000"
	}
	s := m.Origin().String() + m.dest.String()
	if m.kind == PromotionMove {
		s += string(m.promoteTo.Letter() + ('a' - 'A'))
	}
	return s
}
