package analysis

import (
	"context"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Candidate is the outcome of submitting one of the side to move's legal moves.
type Candidate struct {
	Move   engine.Move
	Text   string // Notated text when accepted, coordinates otherwise
	Status engine.MoveStatus
	Next   *engine.Position // Resulting position; the original when rejected
}

// ParallelDivide is Divide with the root moves spread over a worker pool.
// Every worker reads the same immutable position. Cancelling ctx abandons the
// root moves not yet started; the entries finished so far are returned with
// ctx.Err().
func ParallelDivide(ctx context.Context, pos *engine.Position, depth, workers int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, nil
	}
	moves := candidateMoves(pos.CurrentPlayer().LegalMoves())
	pool := worker.NewPoolWithOptions(divideMove,
		worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))

	results, err := pool.Run(ctx, workItems(moves, depth-1))
	var entries []DivideEntry
	for _, r := range results {
		if !r.Transition.Status.IsDone() {
			continue
		}
		entries = append(entries, DivideEntry{Move: r.Move, Nodes: r.Nodes})
	}
	sortEntries(entries)
	return entries, err
}

// Evaluate submits every legal move of the side to move on a worker pool and
// reports each outcome in generation order.
func Evaluate(pos *engine.Position, workers int) []Candidate {
	moves := pos.CurrentPlayer().LegalMoves()
	pool := worker.NewPoolWithOptions(evaluateMove,
		worker.WithWorkers(workers), worker.WithBufferSize(len(moves)))

	// Single-ply evaluation is never cancelled.
	results, _ := pool.Run(context.Background(), workItems(moves, 0))
	candidates := make([]Candidate, len(results))
	for i, r := range results {
		candidates[i] = Candidate{
			Move:   r.Move,
			Text:   r.Text,
			Status: r.Transition.Status,
			Next:   r.Transition.To,
		}
	}
	return candidates
}

// Playable filters candidates down to the accepted ones.
func Playable(candidates []Candidate) []Candidate {
	var out []Candidate
	for _, c := range candidates {
		if c.Status.IsDone() {
			out = append(out, c)
		}
	}
	return out
}

func workItems(moves []engine.Move, depth int) []worker.WorkItem {
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Move: m, Index: i, Depth: depth}
	}
	return items
}

func divideMove(item worker.WorkItem) worker.ProcessResult {
	tr := item.Move.Board().CurrentPlayer().MakeMove(item.Move)
	result := worker.ProcessResult{Move: tr.Move, Index: item.Index, Transition: tr}
	if tr.Status.IsDone() {
		result.Nodes = Perft(tr.To, item.Depth)
	}
	return result
}

func evaluateMove(item worker.WorkItem) worker.ProcessResult {
	tr := item.Move.Board().CurrentPlayer().MakeMove(item.Move)
	result := worker.ProcessResult{Move: tr.Move, Index: item.Index, Transition: tr, Nodes: 1}
	if tr.Status.IsDone() {
		result.Text = engine.Notate(tr.Move)
	} else {
		result.Text = tr.Move.Coordinates()
	}
	return result
}
