package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CreateMove finds the move from one square to another among the legal moves
// of both sides of pos. It returns the null move when nothing matches.
// A promotion found this way promotes to a queen.
func CreateMove(pos *Position, from, to chess.Square) Move {
	for _, m := range pos.AllLegalMoves() {
		if m.Origin() == from && m.dest == to {
			return m
		}
	}
	return nullMove
}

// CreateMoveWithPromotion is like CreateMove but sets the promotion piece
// when the move turns out to be a promotion. NoKind keeps the queen; any
// other kind that is not a valid promotion choice yields the null move.
func CreateMoveWithPromotion(pos *Position, from, to chess.Square, kind chess.Kind) Move {
	m := CreateMove(pos, from, to)
	if !m.IsPromotion() || kind == chess.NoKind {
		return m
	}
	if !kind.IsPromotionChoice() {
		return nullMove
	}
	return m.WithPromotion(kind)
}
