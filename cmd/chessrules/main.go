// chessrules replays chess moves from a position, reports the resulting game
// and optionally lists legal moves or counts the move tree with perft.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(realMain())
}

// realMain runs everything after flag parsing and returns the exit code, so
// the files it opens are closed before the process exits.
func realMain() int {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging and output files
	logOut, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFile(logOut)

	out, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeFile(out)

	text, err := readMoveText(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading moves: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *startFEN, text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile opens the log file named by -l or -L and points cfg at it.
// It returns nil when logging stays on stderr.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	var file *os.File
	var err error

	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	case *logFile != "":
		file, err = os.Create(*logFile)
	default:
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	cfg.LogFile = file
	return file, nil
}

// setupOutputFile opens the file named by -o and points cfg at it. It
// returns nil when output stays on stdout.
func setupOutputFile(cfg *config.Config) (*os.File, error) {
	if *outputFile == "" {
		return nil, nil
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	cfg.OutputFile = file
	return file, nil
}

// closeFile closes f, reporting failures on stderr.
func closeFile(f *os.File) {
	if f == nil {
		return
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", f.Name(), err)
	}
}

// readMoveText joins the -moves flag, the -f file and any positional
// arguments into a single move list.
func readMoveText(args []string) (string, error) {
	parts := []string{*moveText}

	if *movesFile != "" {
		content, err := os.ReadFile(*movesFile) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return "", err
		}
		parts = append(parts, string(content))
	}

	parts = append(parts, args...)
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

// run replays text from fen and writes the game, then any requested legal
// move listing and perft count. A rejected move stops the replay; the game
// up to that point is still written and the error is returned.
func run(ctx context.Context, cfg *config.Config, fen, text string) error {
	g, err := game.NewFromFEN(fen, game.WithPromotion(cfg.PromotionPiece))
	if err != nil {
		return err
	}

	result := analysis.ReplayGame(g, analysis.SplitMoveText(text))
	if !result.Valid {
		cfg.Logf(1, "%s", result.ErrorMsg)
	}
	logSummary(cfg, g)

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := writer.WriteGame(g); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if cfg.Output.ListLegal {
		candidates := analysis.Evaluate(g.Current(), cfg.Analysis.WorkerCount())
		output.OutputCandidates(candidates, cfg, cfg.OutputFile)
	}

	if cfg.Analysis.PerftDepth > 0 {
		if err := runPerft(ctx, cfg, g, cfg.OutputFile); err != nil {
			return err
		}
	}

	if !result.Valid {
		return result.Err
	}
	return nil
}

// runPerft writes the perft count, or the per-move breakdown with -divide.
// Nothing is written when ctx is cancelled before the count completes.
func runPerft(ctx context.Context, cfg *config.Config, g *game.Game, w io.Writer) error {
	depth := cfg.Analysis.PerftDepth
	numWorkers := cfg.Analysis.WorkerCount()

	if numWorkers == 1 && !cfg.Analysis.Divide {
		output.OutputPerft(depth, analysis.Perft(g.Current(), depth), w)
		return nil
	}

	entries, err := analysis.ParallelDivide(ctx, g.Current(), depth, numWorkers)
	if err != nil {
		return fmt.Errorf("perft(%d): %w", depth, err)
	}
	if cfg.Analysis.Divide {
		output.OutputDivide(entries, w)
	} else {
		output.OutputPerft(depth, analysis.Total(entries), w)
	}
	return nil
}

// logSummary reports the replayed game's statistics at verbosity 2.
func logSummary(cfg *config.Config, g *game.Game) {
	if cfg.Verbosity < 2 {
		return
	}
	info := analysis.AnalyzeGame(g)
	cfg.Logf(2, "game %s: %d plies, %d captures, %d checks, %d castles, %d promotions",
		g.ID, info.Plies, info.Captures, info.Checks, info.Castles, info.Promotions)
	if info.HasUnderpromotion {
		cfg.Logf(2, "game %s: contains an underpromotion", g.ID)
	}
	if info.HasMaterialOdds {
		cfg.Logf(2, "game %s: started without the standard material", g.ID)
	}
	cfg.Logf(2, "game %s: %s %s", g.ID, info.Status, info.Result)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess moves and reports the resulting position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notations (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (e2e4)\n")
}
