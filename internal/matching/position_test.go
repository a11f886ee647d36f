package matching

import (
	"testing"

	"github.com/lgbarn/playchess-go/internal/engine"
)

func TestPositionMatcher_AddFEN(t *testing.T) {
	pm := NewPositionMatcher()
	err := pm.AddFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "king pawn")
	if err != nil {
		t.Fatalf("AddFEN: %v", err)
	}
	if pm.PatternCount() != 1 {
		t.Errorf("PatternCount() = %d, want 1", pm.PatternCount())
	}

	report := replayScript(t, "e2-e4\n")
	match := pm.MatchReport(report)
	if match == nil {
		t.Fatal("expected final position to match")
	}
	if match.Label != "king pawn" || !match.IsExact {
		t.Errorf("match = %+v", match)
	}

	if pm.Match(replayScript(t, "d2-d4\n")) {
		t.Error("queen pawn opening should not match")
	}
}

func TestPositionMatcher_AddFENIgnoresSideToMove(t *testing.T) {
	pm := NewPositionMatcher()
	if err := pm.AddFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w - - 0 9", ""); err != nil {
		t.Fatalf("AddFEN: %v", err)
	}
	if !pm.Match(replayScript(t, "e2-e4\n")) {
		t.Error("placement match should ignore the other FEN fields")
	}
}

func TestPositionMatcher_AddFENInvalid(t *testing.T) {
	pm := NewPositionMatcher()
	if err := pm.AddFEN("not a fen", ""); err == nil {
		t.Error("expected error for malformed FEN")
	}
	if pm.PatternCount() != 0 {
		t.Errorf("PatternCount() = %d, want 0", pm.PatternCount())
	}
}

func TestPositionMatcher_ShownPosition(t *testing.T) {
	pm := NewPositionMatcher()
	if err := pm.AddFEN(engine.InitialFEN, "start"); err != nil {
		t.Fatalf("AddFEN: %v", err)
	}

	if pm.Match(replayScript(t, "e2-e4\n")) {
		t.Error("final position is not the initial one")
	}
	if !pm.Match(replayScript(t, "show\ne2-e4\n")) {
		t.Error("shown initial position should match")
	}
}

func TestPositionMatcher_AddPattern(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		pattern string
		invert  bool
		want    bool
	}{
		{"exact ranks", "e2-e4\n", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR", false, true},
		{"star ranks", "e2-e4\n", "*/*/*/*/4P3/*/*/*", false, true},
		{"star ranks miss", "d2-d4\n", "*/*/*/*/4P3/*/*/*", false, false},
		{"inverted", "d2-d4\ne7-e5\n", "*/*/*/*/4P3/*/*/*", true, true},
		{"inverted not requested", "d2-d4\ne7-e5\n", "*/*/*/*/4P3/*/*/*", false, false},
		{"white pieces", "", "*/*/*/*/*/*/*/AAAAAAAA", false, true},
		{"black pieces", "", "aaaaaaaa/*/*/*/*/*/*/*", false, true},
		{"any occupied", "e2-e4\n", "*/*/*/*/4!3/*/*/*", false, true},
		{"any square", "", "*/*/*/*/????????/*/*/*", false, true},
		{"empty marker", "e2-e4\n", "*/*/*/*/*/*/PPPP_PPP/*", false, true},
		{"partial star", "g1-f3\n", "*/*/*/*/*/5N*/*/*", false, true},
		{"leading ranks only", "", "rnbqkbnr/pppppppp", false, true},
		{"rank too short", "", "*/*/*/*/*/*/*/RNBQKBN", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPositionMatcher()
			pm.AddPattern(tt.pattern, tt.name, tt.invert)
			if got := pm.Match(replayScript(t, tt.script)); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestInvertPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4P3/8", "8/4p3"},
		{"Aa?/!_*", "!_*/aA?"},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"},
	}

	for _, tt := range tests {
		if got := invertPattern(tt.in); got != tt.want {
			t.Errorf("invertPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMatchRank(t *testing.T) {
	tests := []struct {
		board   string
		pattern string
		want    bool
	}{
		{"________", "8", true},
		{"________", "7", false},
		{"____P___", "4P3", true},
		{"____P___", "4p3", false},
		{"R___K__R", "R3K2R", true},
		{"R___K__R", "R*R", true},
		{"R___K__R", "*K*", true},
		{"R___K__R", "*Q*", false},
		{"R___K__R", "*", true},
		{"rnbqkbnr", "aaaaaaaa", true},
		{"rnbqkbnr", "AAAAAAAA", false},
	}

	for _, tt := range tests {
		if got := matchRank(tt.board, tt.pattern); got != tt.want {
			t.Errorf("matchRank(%q, %q) = %v, want %v", tt.board, tt.pattern, got, tt.want)
		}
	}
}

func TestPositionMatcher_Name(t *testing.T) {
	if NewPositionMatcher().Name() != "PositionMatcher" {
		t.Error("unexpected name")
	}
}
