package chess

import "testing"

func TestPieceMoved(t *testing.T) {
	e1, g1 := MustParseSquare("e1"), MustParseSquare("g1")

	t.Run("king drops rights", func(t *testing.T) {
		king := NewKing(White, e1, true, true)
		moved := king.Moved(g1, true)
		want := Piece{Kind: King, Colour: White, Square: g1, Castled: true}
		if moved != want {
			t.Errorf("Moved() = %+v; want %+v", moved, want)
		}
		if king.Square != e1 || !king.FirstMove {
			t.Error("Moved() changed the original piece")
		}
	})

	t.Run("non-king ignores castled", func(t *testing.T) {
		rook := NewPiece(Rook, White, MustParseSquare("h1"))
		moved := rook.Moved(MustParseSquare("f1"), true)
		if moved.Castled || moved.FirstMove {
			t.Errorf("Moved() = %+v; want plain moved rook", moved)
		}
	})
}

func TestPieceEquality(t *testing.T) {
	a := NewPiece(Knight, Black, MustParseSquare("g8"))
	b := NewPiece(Knight, Black, MustParseSquare("g8"))
	if a != b {
		t.Error("identical pieces compare unequal")
	}
	if a == a.Moved(a.Square, false) {
		t.Error("first move flag ignored by equality")
	}
}

func TestPieceLetter(t *testing.T) {
	sq := MustParseSquare("d4")
	tests := []struct {
		piece Piece
		want  string
	}{
		{NewPiece(Pawn, White, sq), "P"},
		{NewPiece(Knight, Black, sq), "n"},
		{NewPiece(Queen, White, sq), "Q"},
		{NewKing(Black, sq, false, false), "k"},
	}
	for _, tt := range tests {
		if got := tt.piece.String(); got != tt.want {
			t.Errorf("%v %v String() = %q; want %q", tt.piece.Colour, tt.piece.Kind, got, tt.want)
		}
	}
}

func TestTile(t *testing.T) {
	sq := MustParseSquare("c3")

	empty := NewTile(sq, nil)
	if empty.Occupied() {
		t.Error("NewTile(nil).Occupied() = true")
	}
	if _, ok := empty.Piece(); ok {
		t.Error("empty tile returned a piece")
	}
	if empty != EmptyTile(sq) {
		t.Error("NewTile(nil) is not the shared empty tile")
	}
	if empty.Square() != sq || empty.String() != "-" {
		t.Errorf("empty tile = %v %q", empty.Square(), empty.String())
	}

	bishop := NewPiece(Bishop, Black, sq)
	tile := NewTile(sq, &bishop)
	got, ok := tile.Piece()
	if !ok || got != bishop {
		t.Errorf("Piece() = %+v, %v; want %+v, true", got, ok, bishop)
	}
	if tile.String() != "b" {
		t.Errorf("String() = %q; want b", tile.String())
	}
}
