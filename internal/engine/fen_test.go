package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*testing.T, *Position)
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(t *testing.T, pos *Position) {
				testutil.AssertEqual(t, pos.SideToMove(), chess.White)
				testutil.AssertEqual(t, mustPiece(t, pos, "e1"), chess.NewKing(chess.White, chess.MustParseSquare("e1"), true, true))
				testutil.AssertEqual(t, mustPiece(t, pos, "h8"), chess.NewPiece(chess.Rook, chess.Black, chess.MustParseSquare("h8")))
				testutil.AssertEqual(t, len(pos.AllPieces()), 32)
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(t *testing.T, pos *Position) {
				testutil.AssertEqual(t, pos.SideToMove(), chess.Black)
				ep, ok := pos.EnPassantPawn()
				testutil.AssertTrue(t, ok, "en-passant pawn")
				testutil.AssertEqual(t, ep.Square, chess.MustParseSquare("e4"))
				testutil.AssertFalse(t, mustPiece(t, pos, "e4").FirstMove, "pawn off its start rank")
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(t *testing.T, pos *Position) {
				testutil.AssertFalse(t, pos.WhitePlayer().HasCastleOpportunities())
				testutil.AssertFalse(t, pos.BlackPlayer().HasCastleOpportunities())
				testutil.AssertFalse(t, mustPiece(t, pos, "a1").FirstMove)
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(t *testing.T, pos *Position) {
				testutil.AssertEqual(t, pos.SideToMove(), chess.White)
				testutil.AssertEqual(t, len(pos.AllPieces()), 2)
			},
		},
		{
			name: "en-passant target without pawn is ignored",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - e3 0 1",
			checkFn: func(t *testing.T, pos *Position) {
				_, ok := pos.EnPassantPawn()
				testutil.AssertFalse(t, ok)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error = %v", tt.fen, err)
			}
			tt.checkFn(t, pos)
		})
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"empty string", "", errors.ErrInvalidFEN},
		{"too few ranks", "8/8/8 w - - 0 1", errors.ErrInvalidFEN},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1", errors.ErrInvalidFEN},
		{"rank too long", "4k3/8/8/8/8/8/8/4K4 w - - 0 1", errors.ErrInvalidFEN},
		{"rank too short", "4k3/8/8/8/8/8/8/4K2 w - - 0 1", errors.ErrInvalidFEN},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", errors.ErrInvalidFEN},
		{"bad castling field", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1", errors.ErrInvalidFEN},
		{"bad en-passant square", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1", errors.ErrInvalidFEN},
		{"non-ascii piece letter", "4k3/8/8/8/8/8/8/ŐK6 w - - 0 1", errors.ErrInvalidFEN},
		{"en-passant target on wrong rank", "4k3/8/8/3pP3/8/8/8/4K3 b - e4 0 1", errors.ErrInvalidFEN},
		{"en-passant target for wrong side", "4k3/8/8/3pP3/8/8/8/4K3 b - d6 0 1", errors.ErrInvalidFEN},
		{"en-passant target occupied", "4k3/8/3n4/3pP3/8/8/8/4K3 w - d6 0 1", errors.ErrInvalidFEN},
		{"missing black king", "8/8/8/8/8/8/8/4K3 w - - 0 1", errors.ErrMissingKing},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", errors.ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos, err := ParseFEN(tt.fen)
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertTrue(t, pos == nil, "no position on error")
		})
	}
}

func TestParseFENErrorContext(t *testing.T) {
	_, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 x - - 0 1")

	var parseErr *errors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	testutil.AssertEqual(t, parseErr.Field, 2)
	testutil.AssertEqual(t, parseErr.Got, "x")
}

func TestParseFENEnPassantContext(t *testing.T) {
	_, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 b - e4 0 1")

	var parseErr *errors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %v is not a *ParseError", err)
	}
	testutil.AssertEqual(t, parseErr.Field, 4)
	testutil.AssertEqual(t, parseErr.Got, "e4")
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 1",
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, FEN(MustParseFEN(fen)), fen)
		})
	}
}

func TestFENOutput(t *testing.T) {
	testutil.AssertEqual(t, FEN(NewStandardPosition()), InitialFEN)

	next := mustCreate(t, NewStandardPosition(), "e2", "e4").Execute()
	testutil.AssertEqual(t, FEN(next), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	// Moving a rook drops that side's right only.
	pos := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	next = mustCreate(t, pos, "h1", "h2").Execute()
	testutil.AssertEqual(t, FEN(next), "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 0 1")

	// Castling rights naming a missing rook are dropped on input.
	testutil.AssertEqual(t, FEN(MustParseFEN("4k3/8/8/8/8/8/8/4K2R w KQ - 0 1")), "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
}

func TestMustParseFENPanics(t *testing.T) {
	testutil.AssertPanics(t, errors.ErrInvalidFEN, func() {
		MustParseFEN("not a fen")
	})
}
