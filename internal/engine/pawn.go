package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Pawn offsets before scaling by the side's direction: single step, double
// step, and the two diagonals.
var pawnOffsets = []int{8, 16, 7, 9}

// pawnMoves generates pushes, jumps, captures, en passant and promotions.
func pawnMoves(pawn chess.Piece, pos *Position) []Move {
	var moves []Move
	colour := pawn.Colour
	dir := colour.Direction()

	for _, offset := range pawnOffsets {
		dest := pawn.Square.Offset(offset * dir)
		if !dest.Valid() {
			continue
		}

		switch offset {
		case 8:
			if !pos.IsOccupied(dest) {
				moves = append(moves, promoteIfDue(newQuiet(pos, pawn, dest)))
			}

		case 16:
			behind := pawn.Square.Offset(8 * dir)
			if pawn.FirstMove && colour.PawnStartRank(pawn.Square) &&
				!pos.IsOccupied(behind) && !pos.IsOccupied(dest) {
				moves = append(moves, newPawnJump(pos, pawn, dest))
			}

		case 7, 9:
			if pawnCaptureExcluded(pawn, offset) {
				continue
			}
			if occupant, occupied := pos.PieceAt(dest); occupied {
				if occupant.Colour != colour {
					moves = append(moves, promoteIfDue(newCapture(pos, pawn, dest, occupant)))
				}
				continue
			}
			if victim, ok := enPassantVictim(pawn, pos, offset); ok {
				moves = append(moves, newEnPassant(pos, pawn, dest, victim))
			}
		}
	}
	return moves
}

// pawnCaptureExcluded applies the file-wrap exclusions for the diagonals.
// Offset 7 heads towards the h-file for White and the a-file for Black;
// offset 9 the other way round.
func pawnCaptureExcluded(pawn chess.Piece, offset int) bool {
	white := pawn.Colour == chess.White
	switch offset {
	case 7:
		return (white && chess.EighthColumn[pawn.Square]) || (!white && chess.FirstColumn[pawn.Square])
	case 9:
		return (white && chess.FirstColumn[pawn.Square]) || (!white && chess.EighthColumn[pawn.Square])
	}
	return false
}

// enPassantVictim returns the opposing en-passant pawn when it stands beside
// pawn on the side the diagonal offset points to.
func enPassantVictim(pawn chess.Piece, pos *Position, offset int) (chess.Piece, bool) {
	victim, ok := pos.EnPassantPawn()
	if !ok || victim.Colour == pawn.Colour || victim.Kind != chess.Pawn {
		return chess.Piece{}, false
	}
	side := pawn.Colour.OppositeDirection()
	if offset == 9 {
		side = -side
	}
	if victim.Square != pawn.Square.Offset(side) {
		return chess.Piece{}, false
	}
	return victim, true
}

// promoteIfDue wraps a pawn move landing on the far rank in a promotion to
// a queen. Other promotion pieces are chosen through Move.WithPromotion.
func promoteIfDue(m Move) Move {
	if m.piece.Colour.IsPromotionSquare(m.dest) {
		return newPromotion(m, chess.Queen)
	}
	return m
}
