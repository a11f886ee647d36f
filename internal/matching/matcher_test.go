package matching

import (
	"strings"
	"testing"

	"github.com/lgbarn/playchess-go/internal/config"
	"github.com/lgbarn/playchess-go/internal/engine"
	"github.com/lgbarn/playchess-go/internal/parser"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// replayScript runs a move script from the initial position and returns its
// report.
func replayScript(t *testing.T, text string) *processing.Report {
	t.Helper()
	script, err := parser.ParseString(text, "test.moves")
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	cfg := config.NewConfig()
	cfg.LogFile = nil
	return processing.Replay(engine.NewGame(), script, cfg)
}

type fixedMatcher struct {
	result bool
	name   string
}

func (f fixedMatcher) Match(*processing.Report) bool { return f.result }
func (f fixedMatcher) Name() string                  { return f.name }

func TestCompositeMatcher(t *testing.T) {
	yes := fixedMatcher{true, "yes"}
	no := fixedMatcher{false, "no"}
	report := replayScript(t, "e2-e4\n")

	tests := []struct {
		name     string
		mode     MatchMode
		matchers []ReportMatcher
		want     bool
	}{
		{"empty AND", MatchAll, nil, true},
		{"empty OR", MatchAny, nil, false},
		{"AND all true", MatchAll, []ReportMatcher{yes, yes}, true},
		{"AND one false", MatchAll, []ReportMatcher{yes, no}, false},
		{"OR one true", MatchAny, []ReportMatcher{no, yes}, true},
		{"OR all false", MatchAny, []ReportMatcher{no, no}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompositeMatcher(tt.mode, tt.matchers...)
			if got := c.Match(report); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompositeMatcher_AddAndName(t *testing.T) {
	c := NewCompositeMatcher(MatchAny)
	if got := c.Name(); got != "CompositeMatcher(empty)" {
		t.Errorf("Name() = %q", got)
	}

	c.Add(fixedMatcher{true, "first"})
	c.Add(fixedMatcher{false, "second"})
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if got := c.Name(); got != "CompositeMatcher(OR: first, second)" {
		t.Errorf("Name() = %q", got)
	}
}

func TestCompositeMatcher_Nested(t *testing.T) {
	report := replayScript(t, "1. e2-e4 e7-e5\n2. g1-f3\n")

	vm := NewVariationMatcher()
	vm.AddMoveSequence([]string{"e7-e5", "g1-f3"})
	mm := NewMaterialMatcher("QRRBBNN:qrrbbnn", false)

	all := NewCompositeMatcher(MatchAll, vm, mm)
	if !all.Match(report) {
		t.Error("expected nested AND to match")
	}
	if !strings.Contains(all.Name(), "VariationMatcher") {
		t.Errorf("Name() = %q", all.Name())
	}

	none := NewCompositeMatcher(MatchAny, NewMaterialMatcher("QQ:", false))
	all.Add(none)
	if all.Match(report) {
		t.Error("two white queens should not match")
	}
}

func TestReportBoards(t *testing.T) {
	report := replayScript(t, "e2-e4\nshow\nd7-d5\nshow\n")
	boards := reportBoards(report)
	if len(boards) != 3 {
		t.Fatalf("len(boards) = %d, want 3", len(boards))
	}
	if boards[2] != report.Final {
		t.Error("final board should come last")
	}

	if got := reportBoards(&processing.Report{}); len(got) != 0 {
		t.Errorf("empty report gave %d boards", len(got))
	}
}
