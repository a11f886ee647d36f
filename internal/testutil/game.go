package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/playchess-go/internal/engine"
)

// MustGame builds a game from a FEN string, or the starting position when
// fen is empty. It calls t.Fatal if the FEN is rejected.
func MustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	if fen == "" {
		return engine.NewGame()
	}
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error: %v", fen, err)
	}
	return g
}

// MustPlay applies moves written as "e2-e4" or "e2e4" in order. It calls
// t.Fatal on the first move that is rejected.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		from, to, ok := SplitMove(m)
		if !ok {
			t.Fatalf("malformed test move %q", m)
		}
		if _, err := g.ApplyMove(from, to); err != nil {
			t.Fatalf("ApplyMove(%s, %s) error: %v", from, to, err)
		}
	}
}

// SplitMove splits "e2-e4" or "e2e4" into its two squares.
func SplitMove(move string) (from, to string, ok bool) {
	move = strings.TrimSpace(move)
	if i := strings.IndexByte(move, '-'); i >= 0 {
		return move[:i], move[i+1:], i > 0 && i < len(move)-1
	}
	if len(move) == 4 {
		return move[:2], move[2:], true
	}
	return "", "", false
}
