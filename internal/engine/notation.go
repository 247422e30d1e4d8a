package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// String returns the move in standard algebraic notation without check
// suffixes, e.g. "e4", "exd5", "Nbd7", "O-O" or "e8=Q". Origin
// disambiguation is computed against the mover's playable moves.
func (m Move) String() string {
	if m.kind == NullMove {
		return "--"
	}
	return m.notation(m.board.Player(m.piece.Colour).PlayableMoves())
}

// Notate returns the move text with "+" or "#" appended when the move gives
// check or mate.
func Notate(m Move) string {
	if m.kind == NullMove {
		return m.String()
	}
	return m.String() + checkSuffix(m.Execute())
}

// checkSuffix returns the suffix describing the state of the side to move.
func checkSuffix(next *Position) string {
	current := next.CurrentPlayer()
	switch {
	case current.IsInCheckmate():
		return "#"
	case current.IsInCheck():
		return "+"
	default:
		return ""
	}
}

// notation renders m, disambiguating against candidates.
func (m Move) notation(candidates []Move) string {
	switch m.kind {
	case KingSideCastle:
		return "O-O"
	case QueenSideCastle:
		return "O-O-O"
	case PromotionMove:
		return m.inner.notation(candidates) + "=" + string(m.promoteTo.Letter())
	}

	var sb strings.Builder
	if m.piece.Kind == chess.Pawn {
		if m.IsAttack() {
			sb.WriteByte(m.piece.Square.File())
			sb.WriteByte('x')
		}
		sb.WriteString(m.dest.String())
		return sb.String()
	}

	sb.WriteByte(m.piece.Kind.Letter())
	sb.WriteString(m.disambiguation(candidates))
	if m.IsAttack() {
		sb.WriteByte('x')
	}
	sb.WriteString(m.dest.String())
	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other moves of the same kind of piece to the same square.
func (m Move) disambiguation(candidates []Move) string {
	origin := m.piece.Square
	ambiguous, sameFile, sameRank := false, false, false
	for _, other := range candidates {
		if other.piece.Kind != m.piece.Kind || other.dest != m.dest || other.piece.Square == origin || other.IsCastling() {
			continue
		}
		ambiguous = true
		if other.piece.Square.Col() == origin.Col() {
			sameFile = true
		}
		if other.piece.Square.Row() == origin.Row() {
			sameRank = true
		}
	}
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return string(origin.File())
	case !sameRank:
		return string(origin.Rank())
	default:
		return origin.String()
	}
}
