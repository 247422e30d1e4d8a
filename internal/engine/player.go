package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Player is one side's view of a position: its king, its pseudo-legal moves
// (castles included) and whether it is in check.
type Player struct {
	pos           *Position
	colour        chess.Colour
	king          chess.Piece
	legalMoves    []Move
	opponentMoves []Move
	inCheck       bool
}

func newPlayer(pos *Position, colour chess.Colour, standardMoves, opponentMoves []Move) *Player {
	p := &Player{
		pos:           pos,
		colour:        colour,
		king:          establishKing(pos, colour),
		opponentMoves: opponentMoves,
	}
	p.inCheck = squareAttacked(pos, p.king.Square, colour.Opposite(), opponentMoves)

	castles := p.calculateCastles()
	p.legalMoves = make([]Move, 0, len(standardMoves)+len(castles))
	p.legalMoves = append(p.legalMoves, standardMoves...)
	p.legalMoves = append(p.legalMoves, castles...)
	return p
}

// establishKing finds the king of colour. A position without one cannot be
// played, so its absence is fatal.
func establishKing(pos *Position, colour chess.Colour) chess.Piece {
	for _, piece := range pos.ActivePieces(colour) {
		if piece.Kind == chess.King {
			return piece
		}
	}
	panic(errors.Wrapf(errors.ErrMissingKing, "%s has no king", colour))
}

// Colour returns the side this player moves.
func (p *Player) Colour() chess.Colour {
	return p.colour
}

// King returns the player's king.
func (p *Player) King() chess.Piece {
	return p.king
}

// ActivePieces returns the player's pieces on the board.
func (p *Player) ActivePieces() []chess.Piece {
	return p.pos.ActivePieces(p.colour)
}

// Opponent returns the other player of the same position.
func (p *Player) Opponent() *Player {
	return p.pos.Player(p.colour.Opposite())
}

// LegalMoves returns the pseudo-legal moves, castles included. Some of them
// may leave the king in check; MakeMove filters those out.
func (p *Player) LegalMoves() []Move {
	return p.legalMoves
}

// PlayableMoves returns the moves whose submission would succeed.
func (p *Player) PlayableMoves() []Move {
	var playable []Move
	for _, m := range p.legalMoves {
		if p.MakeMove(m).Status.IsDone() {
			playable = append(playable, m)
		}
	}
	return playable
}

// IsInCheck reports whether the king is attacked.
func (p *Player) IsInCheck() bool {
	return p.inCheck
}

// IsInCheckmate reports whether the king is in check with no way out.
func (p *Player) IsInCheckmate() bool {
	return p.inCheck && !p.hasEscapeMoves()
}

// IsInStalemate reports whether the player is not in check but has no
// playable move.
func (p *Player) IsInStalemate() bool {
	return !p.inCheck && !p.hasEscapeMoves()
}

func (p *Player) hasEscapeMoves() bool {
	for _, m := range p.legalMoves {
		if p.MakeMove(m).Status.IsDone() {
			return true
		}
	}
	return false
}

// IsCastled reports whether the king reached its square by castling.
func (p *Player) IsCastled() bool {
	return p.king.Castled
}

// IsKingSideCastleCapable reports whether the king keeps its king-side right.
func (p *Player) IsKingSideCastleCapable() bool {
	return p.king.KingSideCastle
}

// IsQueenSideCastleCapable reports whether the king keeps its queen-side right.
func (p *Player) IsQueenSideCastleCapable() bool {
	return p.king.QueenSideCastle
}

// HasCastleOpportunities reports whether castling is still possible in
// principle: not in check, not yet castled, and at least one right left.
func (p *Player) HasCastleOpportunities() bool {
	return !p.inCheck && !p.king.Castled && (p.king.KingSideCastle || p.king.QueenSideCastle)
}

// MakeMove attempts m on behalf of this player. The move must match one of
// the player's legal moves by origin, destination and moved piece; a
// promotion keeps the piece chosen on m. The position is never modified.
func (p *Player) MakeMove(m Move) Transition {
	legal, ok := p.findLegal(m)
	if !ok {
		return Transition{From: p.pos, To: p.pos, Move: m, Status: IllegalMove}
	}

	next := legal.Execute()
	if next.CurrentPlayer().Opponent().IsInCheck() {
		return Transition{From: p.pos, To: p.pos, Move: legal, Status: LeavesPlayerInCheck}
	}
	return Transition{From: p.pos, To: next, Move: legal, Status: Done}
}

func (p *Player) findLegal(m Move) (Move, bool) {
	if m.IsNull() {
		return Move{}, false
	}
	key := m.Key()
	for _, candidate := range p.legalMoves {
		if candidate.Key() != key {
			continue
		}
		if m.IsPromotion() {
			candidate = candidate.WithPromotion(m.promoteTo)
		}
		return candidate, true
	}
	return Move{}, false
}
