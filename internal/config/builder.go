package config

import (
	"io"

	"github.com/lgbarn/playchess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOrientation sets the side drawn at the bottom of diagrams.
func (b *ConfigBuilder) WithOrientation(o chess.Orientation) *ConfigBuilder {
	b.cfg.Output.Orientation = o
	return b
}

// WithShowMoves enables the per-move log.
func (b *ConfigBuilder) WithShowMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = enabled
	return b
}

// WithWorkers sets the number of concurrent script workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithStartFEN sets the position every script starts from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithStopOnError ends scripts at their first rejected command.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.Script.StopOnError = enabled
	return b
}

// WithPlyLimit caps the number of moves applied per script.
func (b *ConfigBuilder) WithPlyLimit(limit int) *ConfigBuilder {
	b.cfg.Script.PlyLimit = limit
	return b
}

// WithDuplicateDetection enables duplicate final-position detection.
func (b *ConfigBuilder) WithDuplicateDetection(enabled, exact bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	b.cfg.Duplicate.ExactMatch = exact
	return b
}

// WithStore sets the game store directory and resume behaviour.
func (b *ConfigBuilder) WithStore(dir string, resume bool) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	b.cfg.Store.Resume = resume
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
