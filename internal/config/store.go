package config

import (
	"fmt"

	"github.com/lgbarn/playchess-go/internal/errors"
)

// StoreConfig holds settings for the persistent game store.
type StoreConfig struct {
	// Dir is the database directory; empty disables the store
	Dir string

	// Resume starts each script from its stored position when one exists
	Resume bool
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{}
}

// Enabled reports whether a store directory is configured.
func (s *StoreConfig) Enabled() bool {
	return s.Dir != ""
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	if s.Resume && s.Dir == "" {
		return fmt.Errorf("resume requires a store directory: %w", errors.ErrInvalidConfig)
	}
	return nil
}
