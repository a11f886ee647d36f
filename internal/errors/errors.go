// Package errors provides sentinel errors and error types for playchess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedSquare indicates a string that is not one of the 64
	// algebraic square names.
	ErrMalformedSquare = errors.New("malformed square")

	// ErrInvalidMove indicates a destination outside the candidate set of
	// the piece on the source square.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScriptSyntax indicates an unreadable move-script line.
	ErrScriptSyntax = errors.New("script syntax error")

	// ErrGameNotFound indicates no stored game under the requested id.
	ErrGameNotFound = errors.New("game not found")

	// ErrEmptyGameID indicates an attempt to store a game without an id.
	ErrEmptyGameID = errors.New("empty game id")
)

// MoveError wraps a rejected move with the squares involved and the ply at
// which it was attempted.
type MoveError struct {
	Err  error  // The underlying error
	From string // Source square as given by the caller
	To   string // Destination square as given by the caller
	Ply  int    // Plies already played when the move was attempted
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %s-%s", e.From, e.To)
	if e.Ply > 0 {
		msg += fmt.Sprintf(" at ply %d", e.Ply+1)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ScriptError represents a failure while running a move script, with file
// location context.
type ScriptError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
	Text string // The offending line, trimmed
}

// Error returns a formatted error message with location and context.
func (e *ScriptError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "script error"
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
