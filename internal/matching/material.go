package matching

import (
	"strings"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	want       [2][chess.NumKinds]int // indexed by side (0 white, 1 black) and kind
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces).
// Letters are K, Q, R, B, N and P in either case; the colon decides the
// side. Other characters are ignored.
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{pattern: pattern, exactMatch: exact}

	parts := strings.SplitN(pattern, ":", 2)
	for side, part := range parts {
		for i := 0; i < len(part); i++ {
			if kind := chess.KindFromLetter(part[i]); kind != chess.None {
				mm.want[side][kind]++
			}
		}
	}
	return mm
}

// MatchBoard checks a single position against the pattern.
func (mm *MaterialMatcher) MatchBoard(board *chess.Board) bool {
	var have [2][chess.NumKinds]int
	for _, sq := range chess.AllSquares() {
		p := board.Get(sq)
		switch p.Colour {
		case chess.White:
			have[0][p.Kind]++
		case chess.Black:
			have[1][p.Kind]++
		}
	}

	for side := 0; side < 2; side++ {
		for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
			want, got := mm.want[side][kind], have[side][kind]
			if got < want || (mm.exactMatch && got != want) {
				return false
			}
		}
	}
	return true
}

// Match implements ReportMatcher: any shown position or the final position
// may satisfy the pattern.
func (mm *MaterialMatcher) Match(report *processing.Report) bool {
	for _, board := range reportBoards(report) {
		if mm.MatchBoard(board) {
			return true
		}
	}
	return false
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Name implements ReportMatcher.
func (mm *MaterialMatcher) Name() string {
	return "MaterialMatcher(" + mm.pattern + ")"
}
