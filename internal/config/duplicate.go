package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/playchess-go/internal/errors"
)

// DuplicateConfig holds settings for detecting scripts that end in the same
// position.
type DuplicateConfig struct {
	// Detect enables duplicate detection
	Detect bool

	// Suppress omits reports for duplicates from the main output
	Suppress bool

	// ExactMatch also requires the same number of plies
	ExactMatch bool

	// MaxCapacity bounds the number of remembered positions (0 = unlimited)
	MaxCapacity int

	// DuplicateFile is the output stream for duplicate reports
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity must not be negative, got %d: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
