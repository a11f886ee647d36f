package matching

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/playchess-go/internal/processing"
)

// VariationMatcher matches reports that played a given run of consecutive
// moves.
type VariationMatcher struct {
	moveSequences [][]string
}

// NewVariationMatcher creates a new variation matcher.
func NewVariationMatcher() *VariationMatcher {
	return &VariationMatcher{}
}

// LoadFromFile loads move sequences from a file, one per line, such as
// "1. e2-e4 e7-e5 2. g1-f3". Blank lines and # comments are skipped.
func (vm *VariationMatcher) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()
	return vm.Load(file)
}

// Load reads move sequences from r.
func (vm *VariationMatcher) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if moves := ParseMoveSequence(line); len(moves) > 0 {
			vm.moveSequences = append(vm.moveSequences, moves)
		}
	}
	return scanner.Err()
}

// AddMoveSequence adds a move sequence to match.
func (vm *VariationMatcher) AddMoveSequence(moves []string) {
	vm.moveSequences = append(vm.moveSequences, moves)
}

// Match implements ReportMatcher. A matcher without sequences matches
// everything.
func (vm *VariationMatcher) Match(report *processing.Report) bool {
	if len(vm.moveSequences) == 0 {
		return true
	}

	played := make([]string, len(report.MoveLog))
	for i, m := range report.MoveLog {
		played[i] = normalizeMove(m)
	}
	for _, seq := range vm.moveSequences {
		if containsSequence(played, seq) {
			return true
		}
	}
	return false
}

// containsSequence reports whether seq occurs as a contiguous run in
// played.
func containsSequence(played, seq []string) bool {
	if len(seq) == 0 {
		return true
	}
	for start := 0; start+len(seq) <= len(played); start++ {
		matched := true
		for i, m := range seq {
			if played[start+i] != normalizeMove(m) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// ParseMoveSequence splits a line of moves, dropping move numbers.
func ParseMoveSequence(line string) []string {
	var moves []string
	for _, part := range strings.Fields(line) {
		if strings.HasSuffix(part, ".") {
			continue
		}
		moves = append(moves, part)
	}
	return moves
}

// normalizeMove reduces "e2-e4", "e2xe4", "e2e4+" and "E2E4" to "e2e4".
func normalizeMove(text string) string {
	text = strings.ToLower(strings.TrimRight(strings.TrimSpace(text), "+#!?"))
	return strings.NewReplacer("-", "", "x", "").Replace(text)
}

// HasCriteria returns true if any sequences are set.
func (vm *VariationMatcher) HasCriteria() bool {
	return len(vm.moveSequences) > 0
}

// Name implements ReportMatcher.
func (vm *VariationMatcher) Name() string {
	return "VariationMatcher"
}
