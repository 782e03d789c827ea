package config

import (
	"fmt"

	"github.com/lgbarn/bureaucrat-chess/internal/errors"
)

// AnalysisConfig holds settings for batch position analysis.
type AnalysisConfig struct {
	// Workers is the number of analysis goroutines (0 = one per CPU)
	Workers int

	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// JSONIndent is the indent string for JSON output; empty writes compact JSON
	JSONIndent string

	// IncludeEmpty lists pieces that have no legal moves
	IncludeEmpty bool

	// MaxLineLength wraps move lists in text output
	MaxLineLength uint
}

// NewAnalysisConfig creates an AnalysisConfig with default values.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		MaxLineLength: 80,
	}
}

// Validate checks that the analysis configuration is valid.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 0 {
		return fmt.Errorf("workers (%d) < 0: %w", a.Workers, errors.ErrInvalidConfig)
	}
	if a.MaxLineLength > 0 && a.MaxLineLength < 20 {
		return fmt.Errorf("line length (%d) < 20: %w", a.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
