// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

var (
	// Input options
	startFEN  = flag.String("fen", engine.InitialFEN, "Starting position in FEN")
	moveText  = flag.String("moves", "", "Moves to play, in SAN or coordinate notation")
	movesFile = flag.String("f", "", "File containing move text")
	promote   = flag.String("promote", "q", "Piece chosen when a coordinate move promotes: q, r, b or n")

	// Output options
	outputFile    = flag.String("o", "", "Output file (default: stdout)")
	appendOutput  = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength    = flag.Int("w", 80, "Maximum line length")
	outputFormat  = flag.String("W", "", "Move notation: san, lalg")
	jsonOutput    = flag.Bool("J", false, "Output in JSON format")
	noResults     = flag.Bool("noresults", false, "Don't output the result")
	noChecks      = flag.Bool("nochecks", false, "Don't output check and mate suffixes")
	noMoveNumbers = flag.Bool("nomovenumbers", false, "Don't output move numbers")
	showBoard     = flag.Bool("board", false, "Print the final position as a diagram")
	showFEN       = flag.Bool("showfen", false, "Print the final position in FEN")
	listLegal     = flag.Bool("legal", false, "List the legal moves in the final position")

	// Analysis options
	perftDepth = flag.Int("perft", 0, "Count leaf nodes to this depth from the final position")
	divide     = flag.Bool("divide", false, "Break the perft count down by first move")
	workers    = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Log a summary of the replayed game")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyContentFlags(cfg)
	applyAnalysisFlags(cfg)
	applyPromotionFlag(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}

	return applyOutputFormatFlags(cfg)
}

// applyContentFlags configures content output settings.
func applyContentFlags(cfg *config.Config) {
	cfg.Output.KeepResults = !*noResults
	cfg.Output.KeepChecks = !*noChecks
	cfg.Output.KeepMoveNumbers = !*noMoveNumbers
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.ListLegal = *listLegal
}

// applyOutputFormatFlags configures the move notation.
func applyOutputFormatFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}

// applyAnalysisFlags configures perft and the worker pool.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.PerftDepth = *perftDepth
	cfg.Analysis.Divide = *divide
	cfg.Analysis.Workers = *workers
}

// applyPromotionFlag sets the promotion piece. Anything other than a single
// letter leaves NoKind, which Validate rejects.
func applyPromotionFlag(cfg *config.Config) {
	if len(*promote) != 1 {
		cfg.PromotionPiece = chess.NoKind
		return
	}
	cfg.PromotionPiece = chess.KindFromLetter((*promote)[0])
}
