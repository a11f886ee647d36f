package config

import (
	"fmt"

	"github.com/lgbarn/playchess-go/internal/errors"
)

// ScriptConfig holds settings for replaying move scripts.
type ScriptConfig struct {
	// StopOnError ends a script at its first rejected command
	StopOnError bool

	// PlyLimit stops a script after this many applied moves (0 = no limit)
	PlyLimit int
}

// NewScriptConfig creates a ScriptConfig with default values.
func NewScriptConfig() *ScriptConfig {
	return &ScriptConfig{}
}

// Validate checks that the script configuration is valid.
func (s *ScriptConfig) Validate() error {
	if s.PlyLimit < 0 {
		return fmt.Errorf("ply limit must not be negative, got %d: %w", s.PlyLimit, errors.ErrInvalidConfig)
	}
	return nil
}
