// Package analysis provides move-path enumeration (perft), candidate move
// evaluation on the worker pool, and game replay summaries.
package analysis

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// promotionChoices lists every piece a pawn may become, queen first.
var promotionChoices = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  engine.Move
	Nodes uint64
}

// Perft counts the move paths of exactly depth plies from pos. Each
// promotion choice counts as a separate move.
func Perft(pos *engine.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	player := pos.CurrentPlayer()
	var nodes uint64
	for _, m := range candidateMoves(player.LegalMoves()) {
		tr := player.MakeMove(m)
		if !tr.Status.IsDone() {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(tr.To, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each playable root move, sorted by
// coordinate text.
func Divide(pos *engine.Position, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	player := pos.CurrentPlayer()
	var entries []DivideEntry
	for _, m := range candidateMoves(player.LegalMoves()) {
		tr := player.MakeMove(m)
		if !tr.Status.IsDone() {
			continue
		}
		entries = append(entries, DivideEntry{Move: tr.Move, Nodes: Perft(tr.To, depth-1)})
	}
	sortEntries(entries)
	return entries
}

// Total sums the node counts of entries.
func Total(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}

// candidateMoves expands each promotion into one move per promotion piece.
func candidateMoves(moves []engine.Move) []engine.Move {
	out := make([]engine.Move, 0, len(moves))
	for _, m := range moves {
		if !m.IsPromotion() {
			out = append(out, m)
			continue
		}
		for _, kind := range promotionChoices {
			out = append(out, m.WithPromotion(kind))
		}
	}
	return out
}

func sortEntries(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.Coordinates() < entries[j].Move.Coordinates()
	})
}
