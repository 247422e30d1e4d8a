package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds perft requests; deeper counts take hours.
const MaxPerftDepth = 7

// AnalysisConfig holds settings for perft and candidate evaluation.
type AnalysisConfig struct {
	// Workers is the number of worker goroutines (0 = one per CPU)
	Workers int

	// BufferSize is the work channel buffer size (0 = one slot per move)
	BufferSize int

	// PerftDepth is the perft depth to count (0 = none)
	PerftDepth int

	// Divide reports the perft count below each root move
	Divide bool
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 0 {
		return fmt.Errorf("workers %d: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.BufferSize < 0 {
		return fmt.Errorf("buffer size %d: %w", a.BufferSize, errors.ErrInvalidConfig)
	}
	if a.PerftDepth < 0 || a.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", a.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if a.Divide && a.PerftDepth == 0 {
		return fmt.Errorf("divide needs a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// WorkerCount resolves Workers, using one worker per CPU when unset.
func (a *AnalysisConfig) WorkerCount() int {
	if a.Workers > 0 {
		return a.Workers
	}
	return runtime.NumCPU()
}
