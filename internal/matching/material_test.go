package matching

import (
	"testing"

	"github.com/lgbarn/playchess-go/internal/engine"
	"github.com/lgbarn/playchess-go/internal/processing"
)

func TestMaterialMatcher_MatchBoard(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		pattern string
		exact   bool
		want    bool
	}{
		{"initial minimum", engine.InitialFEN, "QRRBBNN:qrrbbnn", false, true},
		{"initial exact", engine.InitialFEN, "KQRRBBNNPPPPPPPP:kqrrbbnnpppppppp", true, true},
		{"initial exact missing pawns", engine.InitialFEN, "KQRRBBNN:kqrrbbnn", true, false},
		{"rook ending", "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1", "KR:k", true, true},
		{"rook ending wants black rook", "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1", "KR:kr", false, false},
		{"lower case white side", "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1", "kr:K", true, true},
		{"no colon means white only", "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1", "R", false, true},
		{"empty pattern", "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1", "", false, true},
		{"empty pattern exact", "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := engine.NewGameFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewGameFromFEN: %v", err)
			}
			mm := NewMaterialMatcher(tt.pattern, tt.exact)
			if got := mm.MatchBoard(g.Board()); got != tt.want {
				t.Errorf("MatchBoard(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMaterialMatcher_Match(t *testing.T) {
	// White wins a pawn; a show before the capture records the full set.
	report := replayScript(t, "1. e2-e4 d7-d5\nshow\n2. e4-d5\n")

	full := NewMaterialMatcher("PPPPPPPP:pppppppp", false)
	if !full.Match(report) {
		t.Error("shown position has every pawn")
	}

	exact := NewMaterialMatcher("KQRRBBNNPPPPPPPP:kqrrbbnnppppppp", true)
	if !exact.Match(report) {
		t.Error("final position has seven black pawns")
	}

	if NewMaterialMatcher("QQ:", false).Match(report) {
		t.Error("no position has two white queens")
	}
	if NewMaterialMatcher("", false).Match(&processing.Report{}) {
		t.Error("report without boards should not match")
	}
}

func TestMaterialMatcher_HasCriteriaAndName(t *testing.T) {
	if NewMaterialMatcher("", false).HasCriteria() {
		t.Error("empty pattern has no criteria")
	}
	mm := NewMaterialMatcher("Q:q", false)
	if !mm.HasCriteria() {
		t.Error("expected criteria")
	}
	if mm.Name() != "MaterialMatcher(Q:q)" {
		t.Errorf("Name() = %q", mm.Name())
	}
}
