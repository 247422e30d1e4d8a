package engine

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

var (
	coordinatePattern = regexp.MustCompile(`^([a-h][1-8])([a-h][1-8])([nbrqNBRQ])?$`)
	sanPattern        = regexp.MustCompile(`^([NBRQK])?([a-h])?([1-8])?(x)?([a-h][1-8])(?:=?([NBRQ]))?$`)
)

// ParseMove resolves move text against the playable moves of the side to
// move. Both coordinate form ("e2e4", "e7e8n") and algebraic move text
// ("Nf3", "exd5", "O-O", "e8=Q") are accepted; check and annotation
// suffixes are ignored.
func ParseMove(pos *Position, text string) (Move, error) {
	cleaned := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	playable := pos.CurrentPlayer().PlayableMoves()

	if m := coordinatePattern.FindStringSubmatch(cleaned); m != nil {
		return matchCoordinates(text, playable, m)
	}

	switch strings.ReplaceAll(cleaned, "0", "O") {
	case "O-O":
		return matchKind(text, playable, KingSideCastle)
	case "O-O-O":
		return matchKind(text, playable, QueenSideCastle)
	}

	if m := sanPattern.FindStringSubmatch(cleaned); m != nil {
		return matchAlgebraic(text, playable, m)
	}
	return nullMove, &errors.ParseError{Err: errors.ErrUnknownMove, Input: text, Expected: "move text"}
}

func matchCoordinates(text string, playable []Move, groups []string) (Move, error) {
	from := chess.MustParseSquare(groups[1])
	to := chess.MustParseSquare(groups[2])
	promotion := chess.NoKind
	if groups[3] != "" {
		promotion = chess.KindFromLetter(groups[3][0])
	}
	for _, m := range playable {
		if m.Origin() != from || m.dest != to {
			continue
		}
		return withPromotionChoice(text, m, promotion)
	}
	return nullMove, &errors.ParseError{Err: errors.ErrUnknownMove, Input: text}
}

func matchKind(text string, playable []Move, kind MoveKind) (Move, error) {
	for _, m := range playable {
		if m.kind == kind {
			return m, nil
		}
	}
	return nullMove, &errors.ParseError{Err: errors.ErrUnknownMove, Input: text}
}

// matchAlgebraic selects the single playable move fitting the piece letter,
// optional origin file and rank, and destination.
func matchAlgebraic(text string, playable []Move, groups []string) (Move, error) {
	kind := chess.Pawn
	if groups[1] != "" {
		kind = chess.KindFromLetter(groups[1][0])
	}
	dest := chess.MustParseSquare(groups[5])
	promotion := chess.NoKind
	if groups[6] != "" {
		promotion = chess.KindFromLetter(groups[6][0])
	}

	var found []Move
	for _, m := range playable {
		if m.piece.Kind != kind || m.dest != dest || m.IsCastling() {
			continue
		}
		if groups[2] != "" && m.piece.Square.File() != groups[2][0] {
			continue
		}
		if groups[3] != "" && m.piece.Square.Rank() != groups[3][0] {
			continue
		}
		found = append(found, m)
	}

	switch len(found) {
	case 0:
		return nullMove, &errors.ParseError{Err: errors.ErrUnknownMove, Input: text}
	case 1:
		return withPromotionChoice(text, found[0], promotion)
	default:
		return nullMove, &errors.ParseError{Err: errors.ErrUnknownMove, Input: text,
			Expected: "unambiguous move", Got: strconv.Itoa(len(found)) + " candidates"}
	}
}

// withPromotionChoice applies a promotion letter. A letter on a move that
// does not promote is rejected; a promotion without a letter keeps the queen.
func withPromotionChoice(text string, m Move, promotion chess.Kind) (Move, error) {
	if promotion == chess.NoKind {
		return m, nil
	}
	if !m.IsPromotion() {
		return nullMove, &errors.ParseError{Err: errors.ErrUnknownMove, Input: text,
			Expected: "no promotion piece", Got: string(promotion.Letter())}
	}
	return m.WithPromotion(promotion), nil
}
