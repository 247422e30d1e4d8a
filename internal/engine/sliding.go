package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// slidingMoves generates moves for bishops, rooks and queens. Each ray stops
// at the board edge, before a friendly piece, or on an enemy piece.
func slidingMoves(piece chess.Piece, pos *Position, offsets []int, excluded exclusion) []Move {
	var moves []Move
	for _, offset := range offsets {
		sq := piece.Square
		for {
			// The exclusion applies to the square being stepped from.
			if excluded(sq, offset) {
				break
			}
			sq = sq.Offset(offset)
			if !sq.Valid() {
				break
			}
			occupant, occupied := pos.PieceAt(sq)
			if !occupied {
				moves = append(moves, newQuiet(pos, piece, sq))
				continue
			}
			if occupant.Colour != piece.Colour {
				moves = append(moves, newCapture(pos, piece, sq, occupant))
			}
			break
		}
	}
	return moves
}

func bishopExcluded(sq chess.Square, offset int) bool {
	if chess.FirstColumn[sq] && (offset == -9 || offset == 7) {
		return true
	}
	return chess.EighthColumn[sq] && (offset == -7 || offset == 9)
}

func rookExcluded(sq chess.Square, offset int) bool {
	if chess.FirstColumn[sq] && offset == -1 {
		return true
	}
	return chess.EighthColumn[sq] && offset == 1
}

func queenExcluded(sq chess.Square, offset int) bool {
	return bishopExcluded(sq, offset) || rookExcluded(sq, offset)
}
