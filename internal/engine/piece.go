package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Offset tables. Square indices run row-major from a8, so -8 is one rank
// towards rank 8 and -1 is one file towards the a-file.
var (
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
	bishopOffsets = []int{-9, -7, 7, 9}
	rookOffsets   = []int{-8, -1, 1, 8}
	queenOffsets  = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// exclusion reports whether applying offset from sq would wrap around the
// board edge onto the wrong file.
type exclusion func(sq chess.Square, offset int) bool

// pieceMoves returns the pseudo-legal standard moves of piece in pos.
// Castles are computed by the player, not here.
func pieceMoves(piece chess.Piece, pos *Position) []Move {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(piece, pos)
	case chess.Knight:
		return leaperMoves(piece, pos, knightOffsets, knightExcluded)
	case chess.Bishop:
		return slidingMoves(piece, pos, bishopOffsets, bishopExcluded)
	case chess.Rook:
		return slidingMoves(piece, pos, rookOffsets, rookExcluded)
	case chess.Queen:
		return slidingMoves(piece, pos, queenOffsets, queenExcluded)
	case chess.King:
		return leaperMoves(piece, pos, kingOffsets, kingExcluded)
	default:
		return nil
	}
}

// movePiece returns the piece as it stands after m: same kind and colour on
// the destination square, no longer on its first move.
func movePiece(piece chess.Piece, m Move) chess.Piece {
	return piece.Moved(m.dest, m.IsCastling())
}

// leaperMoves generates single-step moves for knights and kings.
func leaperMoves(piece chess.Piece, pos *Position, offsets []int, excluded exclusion) []Move {
	var moves []Move
	for _, offset := range offsets {
		if excluded(piece.Square, offset) {
			continue
		}
		dest := piece.Square.Offset(offset)
		if !dest.Valid() {
			continue
		}
		occupant, occupied := pos.PieceAt(dest)
		switch {
		case !occupied:
			moves = append(moves, newQuiet(pos, piece, dest))
		case occupant.Colour != piece.Colour:
			moves = append(moves, newCapture(pos, piece, dest, occupant))
		}
	}
	return moves
}

func knightExcluded(sq chess.Square, offset int) bool {
	switch {
	case chess.FirstColumn[sq] && (offset == -17 || offset == -10 || offset == 6 || offset == 15):
		return true
	case chess.SecondColumn[sq] && (offset == -10 || offset == 6):
		return true
	case chess.SeventhColumn[sq] && (offset == -6 || offset == 10):
		return true
	case chess.EighthColumn[sq] && (offset == -15 || offset == -6 || offset == 10 || offset == 17):
		return true
	}
	return false
}

func kingExcluded(sq chess.Square, offset int) bool {
	if chess.FirstColumn[sq] && (offset == -9 || offset == -1 || offset == 7) {
		return true
	}
	return chess.EighthColumn[sq] && (offset == -7 || offset == 1 || offset == 9)
}
