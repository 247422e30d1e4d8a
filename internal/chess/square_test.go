package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestSquareNames(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{0, "a8"},
		{7, "h8"},
		{8, "a7"},
		{36, "e4"},
		{52, "e2"},
		{56, "a1"},
		{60, "e1"},
		{63, "h1"},
		{NoSquare, "-"},
		{64, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.sq.String(); got != tt.want {
				t.Errorf("Square(%d).String() = %q; want %q", int(tt.sq), got, tt.want)
			}
		})
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for i := 0; i < NumTiles; i++ {
		sq := Square(i)
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error = %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %d; want %d", sq.String(), int(got), i)
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, name := range []string{"", "e", "e9", "i1", "E4", "e44", "-"} {
		t.Run(name, func(t *testing.T) {
			sq, err := ParseSquare(name)
			if !errors.Is(err, chesserrors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", name, err)
			}
			if sq != NoSquare {
				t.Errorf("ParseSquare(%q) = %d; want NoSquare", name, int(sq))
			}
		})
	}
}

func TestMustParseSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseSquare(\"z9\") did not panic")
		}
	}()
	MustParseSquare("z9")
}

func TestSquareCoordinates(t *testing.T) {
	e4 := MustParseSquare("e4")
	if e4.Col() != 4 || e4.Row() != 4 {
		t.Errorf("e4 Col/Row = %d/%d; want 4/4", e4.Col(), e4.Row())
	}
	if e4.File() != 'e' || e4.Rank() != '4' {
		t.Errorf("e4 File/Rank = %c/%c; want e/4", e4.File(), e4.Rank())
	}
	if got := SquareAt(4, 4); got != e4 {
		t.Errorf("SquareAt(4, 4) = %v; want e4", got)
	}
	if got := SquareAt(8, 0); got != NoSquare {
		t.Errorf("SquareAt(8, 0) = %d; want NoSquare", int(got))
	}
	if got := e4.Offset(-8); got != MustParseSquare("e5") {
		t.Errorf("e4.Offset(-8) = %v; want e5", got)
	}
}

func TestMembershipTables(t *testing.T) {
	tests := []struct {
		name  string
		table [NumTiles]bool
		want  []string
	}{
		{"first column", FirstColumn, []string{"a8", "a7", "a6", "a5", "a4", "a3", "a2", "a1"}},
		{"second column", SecondColumn, []string{"b8", "b7", "b6", "b5", "b4", "b3", "b2", "b1"}},
		{"seventh column", SeventhColumn, []string{"g8", "g7", "g6", "g5", "g4", "g3", "g2", "g1"}},
		{"eighth column", EighthColumn, []string{"h8", "h7", "h6", "h5", "h4", "h3", "h2", "h1"}},
		{"eighth rank", EighthRank, []string{"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8"}},
		{"seventh rank", SeventhRank, []string{"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7"}},
		{"sixth rank", SixthRank, []string{"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6"}},
		{"second rank", SecondRank, []string{"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2"}},
		{"first rank", FirstRank, []string{"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := make(map[Square]bool)
			for _, name := range tt.want {
				want[MustParseSquare(name)] = true
			}
			for i := 0; i < NumTiles; i++ {
				if tt.table[i] != want[Square(i)] {
					t.Errorf("%s[%v] = %v; want %v", tt.name, Square(i), tt.table[i], want[Square(i)])
				}
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	for _, tt := range []struct {
		sq   int
		want bool
	}{{-1, false}, {0, true}, {63, true}, {64, false}} {
		if got := IsValid(tt.sq); got != tt.want {
			t.Errorf("IsValid(%d) = %v; want %v", tt.sq, got, tt.want)
		}
	}
}
