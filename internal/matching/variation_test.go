package matching

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/playchess-go/internal/testutil"
)

func TestVariationMatcher_Match(t *testing.T) {
	report := replayScript(t, "1. e2-e4 e7-e5\n2. g1-f3 b8-c6\n3. f1-b5\n")

	tests := []struct {
		name string
		seq  []string
		want bool
	}{
		{"opening prefix", []string{"e2-e4", "e7-e5"}, true},
		{"middle run", []string{"g1-f3", "b8-c6", "f1-b5"}, true},
		{"compact notation", []string{"g1f3", "B8C6"}, true},
		{"capture and check marks", []string{"f1xb5+"}, true},
		{"gap", []string{"e2-e4", "g1-f3"}, false},
		{"absent", []string{"d2-d4"}, false},
		{"longer than game", []string{"e2-e4", "e7-e5", "g1-f3", "b8-c6", "f1-b5", "a7-a6"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := NewVariationMatcher()
			vm.AddMoveSequence(tt.seq)
			if got := vm.Match(report); got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

func TestVariationMatcher_NoCriteria(t *testing.T) {
	vm := NewVariationMatcher()
	testutil.AssertFalse(t, vm.HasCriteria())
	testutil.AssertTrue(t, vm.Match(replayScript(t, "")))
	testutil.AssertEqual(t, vm.Name(), "VariationMatcher")
}

func TestVariationMatcher_AnySequence(t *testing.T) {
	vm := NewVariationMatcher()
	vm.AddMoveSequence([]string{"d2-d4"})
	vm.AddMoveSequence([]string{"c2-c4"})

	testutil.AssertTrue(t, vm.HasCriteria())
	testutil.AssertTrue(t, vm.Match(replayScript(t, "c2-c4\n")))
	testutil.AssertFalse(t, vm.Match(replayScript(t, "e2-e4\n")))
}

func TestVariationMatcher_Load(t *testing.T) {
	input := "# king pawn lines\n\n1. e2-e4 e7-e5\n1... c7-c5\n"
	vm := NewVariationMatcher()
	testutil.AssertNoError(t, vm.Load(strings.NewReader(input)))

	testutil.AssertEqual(t, vm.moveSequences, [][]string{{"e2-e4", "e7-e5"}, {"c7-c5"}})
	testutil.AssertTrue(t, vm.Match(replayScript(t, "e2-e4\nc7-c5\n")))
}

func TestVariationMatcher_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("d2-d4 d7-d5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	vm := NewVariationMatcher()
	testutil.AssertNoError(t, vm.LoadFromFile(path))
	testutil.AssertTrue(t, vm.Match(replayScript(t, "d2-d4\nd7-d5\n")))

	if err := vm.LoadFromFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestNormalizeMove(t *testing.T) {
	for _, in := range []string{"e2-e4", "e2e4", "E2E4", "e2xe4", " e2-e4+ ", "e2-e4#", "e2e4!?"} {
		testutil.AssertEqual(t, normalizeMove(in), "e2e4", in)
	}
}

func TestParseMoveSequence(t *testing.T) {
	testutil.AssertEqual(t, ParseMoveSequence("1. e2-e4 e7-e5 2. g1-f3"), []string{"e2-e4", "e7-e5", "g1-f3"})
	testutil.AssertEqual(t, len(ParseMoveSequence("1. 2...")), 0)
}
