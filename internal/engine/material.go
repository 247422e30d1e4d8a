package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// HasInsufficientMaterial reports whether neither side can possibly mate:
// K vs K, K+B vs K, K+N vs K, or K+B vs K+B with bishops on the same colour.
// It is informational only; the rules layer never ends a game on it.
func HasInsufficientMaterial(pos *Position) bool {
	var minors [2][]chess.Piece
	for _, piece := range pos.AllPieces() {
		switch piece.Kind {
		case chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		minors[piece.Colour] = append(minors[piece.Colour], piece)
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0].Kind == chess.Bishop && black[0].Kind == chess.Bishop &&
			isLightSquare(white[0].Square) == isLightSquare(black[0].Square)
	}
	return false
}

// isLightSquare reports whether sq is a light square. a8 is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.Col()+sq.Row())%2 == 0
}

// HasStandardMaterial reports whether both sides still have the full
// starting complement of pieces.
func HasStandardMaterial(pos *Position) bool {
	expected := map[chess.Kind]int{
		chess.Pawn: 8, chess.Knight: 2, chess.Bishop: 2,
		chess.Rook: 2, chess.Queen: 1, chess.King: 1,
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		counts := make(map[chess.Kind]int)
		for _, piece := range pos.ActivePieces(colour) {
			counts[piece.Kind]++
		}
		for kind, want := range expected {
			if counts[kind] != want {
				return false
			}
		}
	}
	return true
}
