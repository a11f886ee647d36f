// Package matching selects replay reports by the positions they reached and
// the moves they played.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// ReportMatcher is the interface for all report matching implementations.
type ReportMatcher interface {
	// Match returns true if the report matches the matcher's criteria.
	Match(report *processing.Report) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple ReportMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []ReportMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...ReportMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements ReportMatcher.
func (c *CompositeMatcher) Match(report *processing.Report) bool {
	if len(c.matchers) == 0 {
		// Empty composite: AND mode is vacuously true, OR mode has no conditions
		return c.mode == MatchAll
	}

	for _, m := range c.matchers {
		matched := m.Match(report)
		if c.mode == MatchAny && matched {
			return true
		}
		if c.mode == MatchAll && !matched {
			return false
		}
	}
	return c.mode == MatchAll
}

// Name implements ReportMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}
	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a matcher to the composite.
func (c *CompositeMatcher) Add(m ReportMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers in this composite.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}

// reportBoards returns the positions a report exposes: every board drawn by
// a show command, then the final board.
func reportBoards(report *processing.Report) []*chess.Board {
	var boards []*chess.Board
	for _, q := range report.Queries {
		if q.Board != nil {
			boards = append(boards, q.Board)
		}
	}
	if report.Final != nil {
		boards = append(boards, report.Final)
	}
	return boards
}
