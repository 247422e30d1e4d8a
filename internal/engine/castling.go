package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castleLayout describes one castle for one side.
type castleLayout struct {
	kind     MoveKind
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	// empty must be unoccupied; safe must also be unattacked.
	empty []chess.Square
	safe  []chess.Square
}

var (
	whiteCastles = []castleLayout{
		{
			kind: KingSideCastle, kingFrom: 60, kingTo: 62, rookFrom: 63, rookTo: 61,
			empty: []chess.Square{61, 62}, safe: []chess.Square{61, 62},
		},
		{
			kind: QueenSideCastle, kingFrom: 60, kingTo: 58, rookFrom: 56, rookTo: 59,
			empty: []chess.Square{59, 58, 57}, safe: []chess.Square{59, 58},
		},
	}
	blackCastles = []castleLayout{
		{
			kind: KingSideCastle, kingFrom: 4, kingTo: 6, rookFrom: 7, rookTo: 5,
			empty: []chess.Square{5, 6}, safe: []chess.Square{5, 6},
		},
		{
			kind: QueenSideCastle, kingFrom: 4, kingTo: 2, rookFrom: 0, rookTo: 3,
			empty: []chess.Square{3, 2, 1}, safe: []chess.Square{3, 2},
		},
	}
)

// calculateCastles returns the castles available to p. The king must be on
// its first move and not in check, the rook on its home square on its first
// move, the squares between them empty, and the squares the king crosses or
// lands on unattacked.
func (p *Player) calculateCastles() []Move {
	king := p.king
	if !king.FirstMove || p.inCheck {
		return nil
	}

	var castles []Move
	for _, layout := range chess.Select(p.colour, whiteCastles, blackCastles) {
		if king.Square != layout.kingFrom || !p.hasCastleRight(layout.kind) {
			continue
		}
		rook, ok := p.pos.PieceAt(layout.rookFrom)
		if !ok || rook.Kind != chess.Rook || rook.Colour != p.colour || !rook.FirstMove {
			continue
		}
		if !p.castlePathClear(layout) {
			continue
		}
		castles = append(castles, newCastle(layout.kind, p.pos, king, layout.kingTo, rook, layout.rookTo))
	}
	return castles
}

func (p *Player) hasCastleRight(kind MoveKind) bool {
	if kind == KingSideCastle {
		return p.king.KingSideCastle
	}
	return p.king.QueenSideCastle
}

func (p *Player) castlePathClear(layout castleLayout) bool {
	for _, sq := range layout.empty {
		if p.pos.IsOccupied(sq) {
			return false
		}
	}
	for _, sq := range layout.safe {
		if squareAttacked(p.pos, sq, p.colour.Opposite(), p.opponentMoves) {
			return false
		}
	}
	return true
}
