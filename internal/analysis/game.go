package analysis

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// GameAnalysis holds counts and flags gathered from a game's moves.
type GameAnalysis struct {
	Plies      int
	Captures   int
	Checks     int
	Castles    int
	Promotions int

	HasUnderpromotion       bool
	HasInsufficientMaterial bool
	HasMaterialOdds         bool // Started without the full set of pieces

	Status game.Status
	Result string
}

// ValidationResult holds the outcome of replaying move text.
type ValidationResult struct {
	Valid    bool
	ErrorPly int // 1-based ply of the first rejected move
	ErrorMsg string
	Err      error
}

// AnalyzeGame summarizes the moves and final state of g.
func AnalyzeGame(g *game.Game) *GameAnalysis {
	analysis := &GameAnalysis{
		HasMaterialOdds: !engine.HasStandardMaterial(g.Start()),
	}

	for _, played := range g.Moves() {
		analysis.Plies++
		m := played.Move
		if m.IsAttack() {
			analysis.Captures++
		}
		if m.IsCastling() {
			analysis.Castles++
		}
		if m.IsPromotion() {
			analysis.Promotions++
			if m.PromotionKind() != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
		if strings.HasSuffix(played.Text, "+") || strings.HasSuffix(played.Text, "#") {
			analysis.Checks++
		}
	}

	analysis.HasInsufficientMaterial = g.InsufficientMaterial()
	analysis.Status = g.Status()
	analysis.Result = g.Result()
	return analysis
}

// ReplayGame plays texts onto g in order and stops at the first move that is
// rejected. The game keeps every move accepted before that point.
func ReplayGame(g *game.Game, texts []string) *ValidationResult {
	result := &ValidationResult{Valid: true}
	for i, text := range texts {
		if err := g.PlayText(text); err != nil {
			result.Valid = false
			result.ErrorPly = i + 1
			result.ErrorMsg = fmt.Sprintf("illegal move at ply %d: %s", i+1, text)
			result.Err = err
			return result
		}
	}
	return result
}

// SplitMoveText splits a move list into move tokens, dropping move numbers
// ("1.", "12...") and result tokens.
func SplitMoveText(text string) []string {
	var out []string
	for _, field := range strings.FieldsFunc(text, isMoveSeparator) {
		if dot := strings.LastIndexByte(field, '.'); dot >= 0 {
			field = field[dot+1:]
		}
		if field == "" || isResult(field) {
			continue
		}
		out = append(out, field)
	}
	return out
}

func isMoveSeparator(r rune) bool {
	return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
}

// isResult reports whether s is a result token.
func isResult(s string) bool {
	switch s {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}
