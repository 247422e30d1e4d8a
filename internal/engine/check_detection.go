package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// squareAttacked reports whether sq is attacked by the side that owns
// attackerMoves. A pawn push never attacks, so pawn non-captures are skipped
// and pawn diagonals are checked by geometry instead: the diagonal of a pawn
// only appears in its move list when something stands there to capture.
func squareAttacked(pos *Position, sq chess.Square, by chess.Colour, attackerMoves []Move) bool {
	for _, m := range attackerMoves {
		if m.dest != sq {
			continue
		}
		if m.piece.Kind == chess.Pawn && !m.IsAttack() {
			continue
		}
		return true
	}
	return pawnAttacks(pos, sq, by)
}

// pawnAttacks reports whether a pawn of colour by covers sq diagonally.
func pawnAttacks(pos *Position, sq chess.Square, by chess.Colour) bool {
	for _, piece := range pos.ActivePieces(by) {
		if piece.Kind != chess.Pawn {
			continue
		}
		for _, offset := range []int{7, 9} {
			if pawnCaptureExcluded(piece, offset) {
				continue
			}
			if piece.Square.Offset(offset*by.Direction()) == sq {
				return true
			}
		}
	}
	return false
}
