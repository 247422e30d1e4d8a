package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Home squares consulted when mapping the FEN castling field onto pieces.
var castleCorners = []struct {
	letter   byte
	colour   chess.Colour
	king     chess.Square
	rook     chess.Square
	kingSide bool
}{
	{'K', chess.White, 60, 63, true},
	{'Q', chess.White, 60, 56, false},
	{'k', chess.Black, 4, 7, true},
	{'q', chess.Black, 4, 0, false},
}

// ParseFEN builds a position from a FEN string. Only the placement field is
// required; side to move defaults to White and the castling and en-passant
// fields to "-". The clock fields are accepted and ignored.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "piece placement"}
	}

	pieces, err := parsePiecePlacement(fen, parts[0])
	if err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(fen, parts)
	if err != nil {
		return nil, err
	}

	if err := applyCastlingField(fen, parts, pieces); err != nil {
		return nil, err
	}

	builder := NewBuilder().SetMoveMaker(toMove)
	for _, piece := range pieces {
		builder.SetPiece(piece)
	}
	if err := applyEnPassantField(fen, parts, pieces, toMove, builder); err != nil {
		return nil, err
	}
	return builder.Build(), nil
}

// MustParseFEN is like ParseFEN but panics on error. Intended for fixtures.
func MustParseFEN(fen string) *Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePlacement parses the first FEN field. Pawns start on their first
// move only from their start rank; castling flags are applied afterwards.
func parsePiecePlacement(fen, placement string) (map[chess.Square]chess.Piece, error) {
	pieces := make(map[chess.Square]chess.Piece)
	kings := map[chess.Colour]int{}

	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.NumTilesPerRow {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1,
			Expected: "8 ranks", Got: fmt.Sprintf("%d", len(ranks))}
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind := chess.NoKind
			if c <= unicode.MaxASCII {
				kind = chess.KindFromLetter(byte(c))
			}
			if kind == chess.NoKind {
				return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1,
					Expected: "piece letter", Got: string(c)}
			}
			if col >= chess.NumTilesPerRow {
				return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1,
					Expected: "8 squares per rank", Got: rank}
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			sq := chess.SquareAt(col, row)
			piece := chess.Piece{Kind: kind, Colour: colour, Square: sq}
			switch kind {
			case chess.Pawn:
				piece.FirstMove = colour.PawnStartRank(sq)
			case chess.Knight, chess.Bishop, chess.Queen:
				piece.FirstMove = true
			case chess.King:
				kings[colour]++
			}
			pieces[sq] = piece
			col++
		}
		if col != chess.NumTilesPerRow {
			return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1,
				Expected: "8 squares per rank", Got: rank}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		switch kings[colour] {
		case 0:
			return nil, fmt.Errorf("%s: %w", colour, errors.ErrMissingKing)
		case 1:
		default:
			return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 1,
				Expected: "one " + colour.String() + " king", Got: fmt.Sprintf("%d", kings[colour])}
		}
	}
	return pieces, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(fen string, parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 2,
			Expected: "w or b", Got: parts[1]}
	}
}

// applyCastlingField maps "KQkq" onto king rights and rook first-move flags.
// A right whose king or rook is not on its home square is dropped.
func applyCastlingField(fen string, parts []string, pieces map[chess.Square]chess.Piece) error {
	field := "-"
	if len(parts) >= 3 {
		field = parts[2]
	}
	if field != "-" {
		for i := 0; i < len(field); i++ {
			if !strings.ContainsRune("KQkq", rune(field[i])) {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 3,
					Expected: "castling letters KQkq or -", Got: field}
			}
		}
	}

	for _, corner := range castleCorners {
		if !strings.ContainsRune(field, rune(corner.letter)) {
			continue
		}
		king, ok := pieces[corner.king]
		if !ok || king.Kind != chess.King || king.Colour != corner.colour {
			continue
		}
		rook, ok := pieces[corner.rook]
		if !ok || rook.Kind != chess.Rook || rook.Colour != corner.colour {
			continue
		}
		if corner.kingSide {
			king.KingSideCastle = true
		} else {
			king.QueenSideCastle = true
		}
		king.FirstMove = true
		rook.FirstMove = true
		pieces[corner.king] = king
		pieces[corner.rook] = rook
	}
	return nil
}

// applyEnPassantField maps the target square onto the pawn that just jumped.
// The target must be an empty square on the jumping side's third rank. A
// target with no such pawn behind it is ignored.
func applyEnPassantField(fen string, parts []string, pieces map[chess.Square]chess.Piece, toMove chess.Colour, builder *Builder) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 4,
			Expected: "square or -", Got: parts[3]}
	}
	wantRank := chess.Select(toMove, byte('6'), byte('3'))
	if target.Rank() != wantRank {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 4,
			Expected: "target on rank " + string(wantRank), Got: parts[3]}
	}
	if _, occupied := pieces[target]; occupied {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: 4,
			Expected: "empty target square", Got: parts[3]}
	}
	jumper := toMove.Opposite()
	pawnSq := target.Offset(8 * jumper.Direction())
	if pawn, ok := pieces[pawnSq]; ok && pawn.Kind == chess.Pawn && pawn.Colour == jumper {
		builder.SetEnPassantPawn(pawn)
	}
	return nil
}

// FEN renders the position as a FEN string. Clocks are not tracked and are
// always written as "0 1".
func FEN(pos *Position) string {
	var sb strings.Builder

	writePiecePlacement(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteByte(chess.Select(pos.SideToMove(), byte('w'), byte('b')))
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	if pawn, ok := pos.EnPassantPawn(); ok {
		sb.WriteString(pawn.Square.Offset(-8 * pawn.Colour.Direction()).String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePlacement writes the placement field, rank 8 first.
func writePiecePlacement(sb *strings.Builder, pos *Position) {
	for row := 0; row < chess.NumTilesPerRow; row++ {
		emptyCount := 0
		for col := 0; col < chess.NumTilesPerRow; col++ {
			piece, ok := pos.PieceAt(chess.SquareAt(col, row))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.NumTilesPerRow-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling field. A right is written only
// while king and rook are both unmoved on their home squares.
func writeCastlingRights(sb *strings.Builder, pos *Position) {
	hasCastling := false
	for _, corner := range castleCorners {
		king, ok := pos.PieceAt(corner.king)
		if !ok || king.Kind != chess.King || king.Colour != corner.colour || !king.FirstMove {
			continue
		}
		if (corner.kingSide && !king.KingSideCastle) || (!corner.kingSide && !king.QueenSideCastle) {
			continue
		}
		rook, ok := pos.PieceAt(corner.rook)
		if !ok || rook.Kind != chess.Rook || rook.Colour != corner.colour || !rook.FirstMove {
			continue
		}
		sb.WriteByte(corner.letter)
		hasCastling = true
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
