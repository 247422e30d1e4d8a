package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Execute builds the position that results from playing m. The originating
// position is left untouched. Executing the null move panics: callers must
// check the result of CreateMove before executing it.
func (m Move) Execute() *Position {
	switch m.kind {
	case NullMove:
		panic(errors.Wrap(errors.ErrNullMove, "execute"))
	case PromotionMove:
		return m.executePromotion()
	case KingSideCastle, QueenSideCastle:
		return m.executeCastle()
	default:
		return m.executeStandard()
	}
}

// executeStandard covers quiet moves, captures, pawn jumps and en passant.
func (m Move) executeStandard() *Position {
	mover := m.board.Player(m.piece.Colour)
	captured, isCapture := m.AttackedPiece()

	builder := NewBuilder()
	for _, piece := range mover.ActivePieces() {
		if piece != m.piece {
			builder.SetPiece(piece)
		}
	}
	for _, piece := range mover.Opponent().ActivePieces() {
		// For en passant the captured pawn is not on the destination square,
		// so it has to be dropped explicitly.
		if isCapture && piece == captured {
			continue
		}
		builder.SetPiece(piece)
	}

	moved := movePiece(m.piece, m)
	builder.SetPiece(moved)
	if m.kind == PawnJump {
		builder.SetEnPassantPawn(moved)
	}
	builder.SetMoveMaker(m.piece.Colour.Opposite())
	return builder.Build()
}

// executePromotion plays the wrapped pawn move, then swaps the pawn for the
// promotion piece in the resulting position.
func (m Move) executePromotion() *Position {
	pawnMoved := m.inner.Execute()
	pawn := movePiece(m.piece, *m.inner)

	builder := NewBuilder()
	for _, piece := range pawnMoved.AllPieces() {
		if piece != pawn {
			builder.SetPiece(piece)
		}
	}
	builder.SetPiece(chess.Piece{Kind: m.promoteTo, Colour: m.piece.Colour, Square: m.dest})
	builder.SetMoveMaker(pawnMoved.SideToMove())
	return builder.Build()
}

// executeCastle relocates king and rook. The rook is not the moved piece of
// record, so it is placed directly rather than through movePiece.
func (m Move) executeCastle() *Position {
	builder := NewBuilder()
	for _, piece := range m.board.AllPieces() {
		if piece != m.piece && piece != m.rook {
			builder.SetPiece(piece)
		}
	}
	builder.SetPiece(movePiece(m.piece, m))
	builder.SetPiece(m.rook.Moved(m.rookDest, false))
	builder.SetMoveMaker(m.piece.Colour.Opposite())
	return builder.Build()
}
