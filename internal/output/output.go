// Package output writes games, positions and analysis results as text.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes the move log of g to cfg.OutputFile.
func OutputGame(g *game.Game, cfg *config.Config) {
	outputMoves(g, cfg, cfg.OutputFile)
}

// outputMoves writes the numbered, line-wrapped move log.
func outputMoves(g *game.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	moveNum := 1
	isWhite := g.Start().SideToMove() == chess.White

	for i, played := range g.Moves() {
		if cfg.Output.KeepMoveNumbers {
			if isWhite {
				ow.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				ow.Write(fmt.Sprintf("%d...", moveNum))
			}
		}

		ow.Write(formatMove(played, cfg.Output))

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	if cfg.Output.KeepResults {
		ow.Write(g.Result())
	}
	ow.NewLine()
}

// formatMove renders a played move in the configured notation.
func formatMove(played game.PlayedMove, out config.OutputConfig) string {
	if out.Format == config.LALG {
		return played.Move.Coordinates()
	}
	if !out.KeepChecks {
		return strings.TrimRight(played.Text, "+#")
	}
	return played.Text
}

// OutputBoard writes a diagram of pos with rank and file labels, White at
// the bottom.
func OutputBoard(pos *engine.Position, w io.Writer) {
	for row := 0; row < chess.NumTilesPerRow; row++ {
		fmt.Fprintf(w, "%c ", '8'-row)
		for col := 0; col < chess.NumTilesPerRow; col++ {
			tile := pos.Tile(chess.SquareAt(col, row))
			if col > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, tile.String())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// OutputStatus writes a one-line summary of the current position, e.g.
// "Black to move: Checkmate (0-1)".
func OutputStatus(g *game.Game, w io.Writer) {
	pos := g.Current()
	status := g.Status()

	line := fmt.Sprintf("%s to move: %s", pos.SideToMove(), status)
	switch {
	case status != game.Ongoing:
		line += fmt.Sprintf(" (%s)", g.Result())
	case pos.CurrentPlayer().IsInCheck():
		line += " (check)"
	}
	if g.InsufficientMaterial() {
		line += ", insufficient material"
	}
	fmt.Fprintln(w, line)
}

// OutputCandidates writes the playable candidates on wrapped lines after a
// count header.
func OutputCandidates(candidates []analysis.Candidate, cfg *config.Config, w io.Writer) {
	playable := analysis.Playable(candidates)
	fmt.Fprintf(w, "Legal moves (%d):\n", len(playable))
	if len(playable) == 0 {
		return
	}

	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	for _, c := range playable {
		if cfg.Output.Format == config.LALG {
			ow.Write(c.Move.Coordinates())
		} else {
			ow.Write(c.Text)
		}
	}
	ow.NewLine()
}

// OutputDivide writes one "move: count" line per root move and a total.
func OutputDivide(entries []analysis.DivideEntry, w io.Writer) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s: %d\n", e.Move.Coordinates(), e.Nodes)
	}
	fmt.Fprintf(w, "\nNodes searched: %d\n", analysis.Total(entries))
}

// OutputPerft writes a perft count.
func OutputPerft(depth int, nodes uint64, w io.Writer) {
	fmt.Fprintf(w, "perft(%d) = %d\n", depth, nodes)
}
