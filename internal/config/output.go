package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat selects how moves are written.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation (Nf3)
	LALG                     // Long algebraic (g1f3)
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case SAN:
		return "san"
	case LALG:
		return "lalg"
	default:
		return "unknown"
	}
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "san", "":
		return SAN, nil
	case "lalg", "uci":
		return LALG, nil
	}
	return SAN, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// MinLineLength is the shortest accepted move-log line.
const MinLineLength = 20

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the move notation
	Format OutputFormat

	// MaxLineLength is the maximum line length of the move log
	MaxLineLength uint

	// JSONFormat enables JSON output instead of the move log
	JSONFormat bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether the result token ends the move log
	KeepResults bool

	// KeepChecks controls whether check symbols (+, #) are included
	KeepChecks bool

	// ShowBoard prints a diagram of the final position
	ShowBoard bool

	// ShowFEN prints the FEN of the final position
	ShowFEN bool

	// ListLegal prints the playable moves of the final position
	ListLegal bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		KeepChecks:      true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < MinLineLength {
		return fmt.Errorf("line length %d below %d: %w", o.MaxLineLength, MinLineLength, errors.ErrInvalidConfig)
	}
	if o.Format != SAN && o.Format != LALG {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
