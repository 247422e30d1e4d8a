package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// coords renders moves in coordinate form.
func coords(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Coordinates())
	}
	return out
}

// movesFrom returns the coordinate form of the legal moves starting on sq.
func movesFrom(pos *Position, sq chess.Square) []string {
	var out []string
	for _, m := range pos.AllLegalMoves() {
		if m.Origin() == sq {
			out = append(out, m.Coordinates())
		}
	}
	return out
}

// kingsAndPieces builds a position from pieces, adding a king on e1 or e8
// for each side that has none.
func kingsAndPieces(toMove chess.Colour, pieces ...chess.Piece) *Position {
	b := NewBuilder().SetMoveMaker(toMove)
	hasKing := map[chess.Colour]bool{}
	for _, p := range pieces {
		b.SetPiece(p)
		if p.Kind == chess.King {
			hasKing[p.Colour] = true
		}
	}
	if !hasKing[chess.White] {
		b.SetPiece(chess.NewKing(chess.White, chess.MustParseSquare("e1"), false, false))
	}
	if !hasKing[chess.Black] {
		b.SetPiece(chess.NewKing(chess.Black, chess.MustParseSquare("e8"), false, false))
	}
	return b.Build()
}

func piece(kind chess.Kind, colour chess.Colour, sq string) chess.Piece {
	return chess.NewPiece(kind, colour, chess.MustParseSquare(sq))
}

func TestStandardPositionMoves(t *testing.T) {
	pos := NewStandardPosition()

	testutil.AssertEqual(t, len(pos.WhitePlayer().LegalMoves()), 20, "white moves")
	testutil.AssertEqual(t, len(pos.BlackPlayer().LegalMoves()), 20, "black moves")
	testutil.AssertEqual(t, len(pos.AllLegalMoves()), 40, "all moves")
	testutil.AssertEqual(t, pos.SideToMove(), chess.White)
	testutil.AssertEqual(t, len(pos.ActivePieces(chess.White)), 16)
	testutil.AssertEqual(t, len(pos.ActivePieces(chess.Black)), 16)
	testutil.AssertEqual(t, len(pos.AllPieces()), 32)

	_, hasEP := pos.EnPassantPawn()
	testutil.AssertFalse(t, hasEP, "no en-passant pawn at the start")
}

func TestPieceMoves(t *testing.T) {
	tests := []struct {
		name  string
		piece chess.Piece
		extra []chess.Piece
		want  []string
	}{
		{
			name:  "knight in a1 corner",
			piece: piece(chess.Knight, chess.White, "a1"),
			want:  []string{"a1b3", "a1c2"},
		},
		{
			name:  "knight in h8 corner",
			piece: piece(chess.Knight, chess.White, "h8"),
			want:  []string{"h8f7", "h8g6"},
		},
		{
			name:  "knight on b1 does not wrap",
			piece: piece(chess.Knight, chess.White, "b1"),
			want:  []string{"b1a3", "b1c3", "b1d2"},
		},
		{
			name:  "knight on g5 captures enemy, skips friend",
			piece: piece(chess.Knight, chess.White, "g5"),
			extra: []chess.Piece{piece(chess.Pawn, chess.Black, "f7"), piece(chess.Pawn, chess.White, "h7")},
			want:  []string{"g5f7", "g5e6", "g5e4", "g5f3", "g5h3"},
		},
		{
			name:  "king on h-file",
			piece: piece(chess.King, chess.Black, "h4"),
			want:  []string{"h4g5", "h4h5", "h4g4", "h4g3", "h4h3"},
		},
		{
			name:  "rook on a-file",
			piece: piece(chess.Rook, chess.White, "a4"),
			want: []string{
				"a4a5", "a4a6", "a4a7", "a4a8", "a4a3", "a4a2", "a4a1",
				"a4b4", "a4c4", "a4d4", "a4e4", "a4f4", "a4g4", "a4h4",
			},
		},
		{
			name:  "rook blocked and capturing",
			piece: piece(chess.Rook, chess.White, "d4"),
			extra: []chess.Piece{piece(chess.Pawn, chess.White, "d6"), piece(chess.Knight, chess.Black, "f4")},
			want: []string{
				"d4d5", "d4d3", "d4d2", "d4d1",
				"d4c4", "d4b4", "d4a4", "d4e4", "d4f4",
			},
		},
		{
			name:  "bishop on long diagonal",
			piece: piece(chess.Bishop, chess.White, "a1"),
			want:  []string{"a1b2", "a1c3", "a1d4", "a1e5", "a1f6", "a1g7", "a1h8"},
		},
		{
			name:  "bishop on h-file does not wrap",
			piece: piece(chess.Bishop, chess.Black, "h3"),
			want:  []string{"h3g4", "h3f5", "h3e6", "h3d7", "h3c8", "h3g2", "h3f1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := kingsAndPieces(tt.piece.Colour, append([]chess.Piece{tt.piece}, tt.extra...)...)
			testutil.AssertSameStrings(t, movesFrom(pos, tt.piece.Square), tt.want)
		})
	}
}

func TestQueenMoveCount(t *testing.T) {
	pos := NewBuilder().
		SetPiece(chess.NewKing(chess.White, chess.MustParseSquare("h2"), false, false)).
		SetPiece(chess.NewKing(chess.Black, chess.MustParseSquare("b8"), false, false)).
		SetPiece(piece(chess.Queen, chess.White, "d4")).
		Build()

	testutil.AssertEqual(t, len(movesFrom(pos, chess.MustParseSquare("d4"))), 27)
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name  string
		pawn  chess.Piece
		extra []chess.Piece
		want  []string
	}{
		{
			name: "white pawn on start rank",
			pawn: piece(chess.Pawn, chess.White, "d2"),
			want: []string{"d2d3", "d2d4"},
		},
		{
			name: "black pawn on start rank",
			pawn: piece(chess.Pawn, chess.Black, "d7"),
			want: []string{"d7d6", "d7d5"},
		},
		{
			name:  "blocked directly",
			pawn:  piece(chess.Pawn, chess.White, "d2"),
			extra: []chess.Piece{piece(chess.Knight, chess.Black, "d3")},
			want:  nil,
		},
		{
			name:  "double step blocked",
			pawn:  piece(chess.Pawn, chess.White, "d2"),
			extra: []chess.Piece{piece(chess.Knight, chess.Black, "d4")},
			want:  []string{"d2d3"},
		},
		{
			name: "no double step after moving",
			pawn: chess.Piece{Kind: chess.Pawn, Colour: chess.White, Square: chess.MustParseSquare("d3")},
			want: []string{"d3d4"},
		},
		{
			name:  "captures both diagonals",
			pawn:  chess.Piece{Kind: chess.Pawn, Colour: chess.White, Square: chess.MustParseSquare("d4")},
			extra: []chess.Piece{piece(chess.Pawn, chess.Black, "c5"), piece(chess.Pawn, chess.Black, "e5")},
			want:  []string{"d4d5", "d4c5", "d4e5"},
		},
		{
			name:  "does not capture own piece",
			pawn:  chess.Piece{Kind: chess.Pawn, Colour: chess.White, Square: chess.MustParseSquare("d4")},
			extra: []chess.Piece{piece(chess.Knight, chess.White, "c5")},
			want:  []string{"d4d5"},
		},
		{
			name: "white a-file pawn does not wrap",
			pawn: chess.Piece{Kind: chess.Pawn, Colour: chess.White, Square: chess.MustParseSquare("a4")},
			extra: []chess.Piece{
				piece(chess.Knight, chess.Black, "b5"),
				piece(chess.Knight, chess.Black, "h6"),
			},
			want: []string{"a4a5", "a4b5"},
		},
		{
			name: "black h-file pawn does not wrap",
			pawn: chess.Piece{Kind: chess.Pawn, Colour: chess.Black, Square: chess.MustParseSquare("h5")},
			extra: []chess.Piece{
				piece(chess.Knight, chess.White, "g4"),
				piece(chess.Knight, chess.White, "a3"),
			},
			want: []string{"h5h4", "h5g4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := kingsAndPieces(tt.pawn.Colour, append([]chess.Piece{tt.pawn}, tt.extra...)...)
			testutil.AssertSameStrings(t, movesFrom(pos, tt.pawn.Square), tt.want)
		})
	}
}

func TestPawnJumpKind(t *testing.T) {
	pos := NewStandardPosition()
	m := CreateMove(pos, chess.MustParseSquare("e2"), chess.MustParseSquare("e4"))
	testutil.AssertEqual(t, m.Kind(), PawnJump)

	m = CreateMove(pos, chess.MustParseSquare("e2"), chess.MustParseSquare("e3"))
	testutil.AssertEqual(t, m.Kind(), QuietMove)
}

func TestEnPassantGeneration(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "white captures towards the d-file",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			from: "e5",
			want: []string{"e5e6", "e5d6"},
		},
		{
			name: "white captures towards the f-file",
			fen:  "4k3/8/8/4Pp2/8/8/8/4K3 w - f6 0 1",
			from: "e5",
			want: []string{"e5e6", "e5f6"},
		},
		{
			name: "black captures towards the c-file",
			fen:  "4k3/8/8/8/2Pp4/8/8/4K3 b - c3 0 1",
			from: "d4",
			want: []string{"d4d3", "d4c3"},
		},
		{
			name: "no target, no capture",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1",
			from: "e5",
			want: []string{"e5e6"},
		},
		{
			name: "pawn not adjacent",
			fen:  "4k3/8/8/2p1P3/8/8/8/4K3 w - c6 0 1",
			from: "e5",
			want: []string{"e5e6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := MustParseFEN(tt.fen)
			testutil.AssertSameStrings(t, movesFrom(pos, chess.MustParseSquare(tt.from)), tt.want)
		})
	}
}

func TestPromotionGeneration(t *testing.T) {
	pos := MustParseFEN("r1r4k/1P6/8/8/8/8/8/7K w - - 0 1")
	b7 := chess.MustParseSquare("b7")

	var kinds []MoveKind
	var promoted []chess.Kind
	for _, m := range pos.CurrentPlayer().LegalMoves() {
		if m.Origin() != b7 {
			continue
		}
		kinds = append(kinds, m.Kind())
		promoted = append(promoted, m.PromotionKind())
	}

	testutil.AssertSameStrings(t, movesFrom(pos, b7), []string{"b7b8q", "b7a8q", "b7c8q"})
	testutil.AssertEqual(t, kinds, []MoveKind{PromotionMove, PromotionMove, PromotionMove})
	testutil.AssertEqual(t, promoted, []chess.Kind{chess.Queen, chess.Queen, chess.Queen})
}

func TestBuildWithoutKingPanics(t *testing.T) {
	testutil.AssertPanics(t, errors.ErrMissingKing, func() {
		NewBuilder().
			SetPiece(chess.NewKing(chess.White, chess.MustParseSquare("e1"), false, false)).
			Build()
	})
}

func TestPositionString(t *testing.T) {
	want := "" +
		"  r  n  b  q  k  b  n  r\n" +
		"  p  p  p  p  p  p  p  p\n" +
		"  -  -  -  -  -  -  -  -\n" +
		"  -  -  -  -  -  -  -  -\n" +
		"  -  -  -  -  -  -  -  -\n" +
		"  -  -  -  -  -  -  -  -\n" +
		"  P  P  P  P  P  P  P  P\n" +
		"  R  N  B  Q  K  B  N  R\n"
	testutil.AssertEqual(t, NewStandardPosition().String(), want)
}

func TestPositionQueries(t *testing.T) {
	pos := NewStandardPosition()

	p, ok := pos.PieceAt(chess.MustParseSquare("e1"))
	testutil.AssertTrue(t, ok, "e1 occupied")
	testutil.AssertEqual(t, p.Kind, chess.King)
	testutil.AssertEqual(t, p.Colour, chess.White)

	_, ok = pos.PieceAt(chess.MustParseSquare("e4"))
	testutil.AssertFalse(t, ok, "e4 empty")
	_, ok = pos.PieceAt(chess.NoSquare)
	testutil.AssertFalse(t, ok, "off-board square")

	testutil.AssertEqual(t, pos.Tile(chess.MustParseSquare("d8")).String(), "q")
	testutil.AssertTrue(t, pos.Player(chess.Black) == pos.BlackPlayer())
	testutil.AssertTrue(t, pos.CurrentPlayer() == pos.WhitePlayer())
}
