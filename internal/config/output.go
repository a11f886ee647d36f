package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/errors"
)

// OutputFormat selects how replay reports are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // Board diagram and move log
	JSONFormat                     // One JSON document per script
	FENFormat                      // Final FEN only
)

var formatNames = map[string]OutputFormat{
	"text": TextFormat,
	"json": JSONFormat,
	"fen":  FENFormat,
}

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	if f, ok := formatNames[strings.ToLower(name)]; ok {
		return f, nil
	}
	return TextFormat, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// String returns the format name.
func (f OutputFormat) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the report format
	Format OutputFormat

	// Orientation is the side drawn at the bottom of text diagrams
	Orientation chess.Orientation

	// ShowMoves lists every applied move with the squares it changed
	ShowMoves bool

	// ShowBoard draws the final position in text output
	ShowBoard bool

	// Coordinates adds file and rank labels to text diagrams
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:      TextFormat,
		Orientation: chess.WhiteBottom,
		ShowBoard:   true,
		Coordinates: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < TextFormat || o.Format > FENFormat {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	if o.Orientation != chess.WhiteBottom && o.Orientation != chess.BlackBottom {
		return fmt.Errorf("orientation %d: %w", o.Orientation, errors.ErrInvalidConfig)
	}
	return nil
}
