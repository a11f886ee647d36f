package matching

import (
	"strings"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/engine"
	"github.com/lgbarn/playchess-go/internal/hashing"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// FENPattern represents a piece-placement pattern to match.
// Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type FENPattern struct {
	Pattern string
	Label   string // optional label for matched position
	Hash    uint64 // placement hash for exact FEN matches
	IsExact bool   // true if this is an exact FEN (no wildcards)
	ranks   []string
}

// PositionMatcher matches reports by the positions they show or end in.
type PositionMatcher struct {
	patterns    []*FENPattern
	exactHashes map[uint64]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exactHashes: make(map[uint64]*FENPattern),
	}
}

// AddFEN adds an exact position to match. Only the piece placement is
// compared; side to move and castling rights are ignored.
func (pm *PositionMatcher) AddFEN(fen string, label string) error {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return err
	}

	hash := hashing.GenerateZobristHash(g.Board())
	pattern := &FENPattern{
		Pattern: fen,
		Label:   label,
		Hash:    hash,
		IsExact: true,
	}

	pm.patterns = append(pm.patterns, pattern)
	pm.exactHashes[hash] = pattern
	return nil
}

// AddPattern adds a placement pattern with wildcards. With includeInvert
// the colour-swapped pattern, read from the other side, is added as well.
func (pm *PositionMatcher) AddPattern(pattern string, label string, includeInvert bool) {
	pm.patterns = append(pm.patterns, &FENPattern{
		Pattern: pattern,
		Label:   label,
		ranks:   strings.Split(pattern, "/"),
	})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
}

// MatchReport returns the first pattern matched by a shown or final
// position of the report, or nil.
func (pm *PositionMatcher) MatchReport(report *processing.Report) *FENPattern {
	for _, board := range reportBoards(report) {
		if match := pm.MatchBoard(board); match != nil {
			return match
		}
	}
	return nil
}

// MatchBoard checks if a position matches any pattern.
func (pm *PositionMatcher) MatchBoard(board *chess.Board) *FENPattern {
	// First check exact hash matches (fast)
	if pattern, ok := pm.exactHashes[hashing.GenerateZobristHash(board)]; ok {
		return pattern
	}

	boardRanks := boardToRanks(board)
	for _, pattern := range pm.patterns {
		if !pattern.IsExact && matchPattern(boardRanks, pattern) {
			return pattern
		}
	}
	return nil
}

// matchPattern checks rank strings against a pattern, rank 8 first.
func matchPattern(boardRanks [8]string, pattern *FENPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}
	for i, patternRank := range pattern.ranks {
		if i >= 8 {
			break
		}
		if !matchRank(boardRanks[i], patternRank) {
			return false
		}
	}
	return true
}

// boardToRanks converts a board to rank strings (rank 8 first) using FEN
// letters and '_' for empty squares.
func boardToRanks(board *chess.Board) [8]string {
	var ranks [8]string
	for row := 0; row < 8; row++ {
		buf := make([]byte, 8)
		for col := 0; col < 8; col++ {
			p := board.GetByIndex(row, col)
			if p.IsEmpty() {
				buf[col] = '_'
			} else {
				buf[col] = p.Letter()
			}
		}
		ranks[row] = string(buf)
	}
	return ranks
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		c := patternRank[pi]
		if c == '*' {
			pi++
			if pi >= len(patternRank) {
				return true // * at end matches rest
			}
			for ; bi <= len(boardRank); bi++ {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
			}
			return false
		}

		if c >= '1' && c <= '8' {
			// N empty squares
			for n := int(c - '0'); n > 0; n-- {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++
			continue
		}

		if bi >= len(boardRank) || !matchSquare(boardRank[bi], c) {
			return false
		}
		bi++
		pi++
	}

	return bi == len(boardRank)
}

// matchSquare matches one square against a single-square pattern character.
func matchSquare(square, c byte) bool {
	switch c {
	case '?':
		return true
	case '!':
		return square != '_'
	case 'A':
		return square >= 'A' && square <= 'Z'
	case 'a':
		return square >= 'a' && square <= 'z'
	default:
		return square == c
	}
}

// invertPattern swaps colours in a pattern and reverses the rank order.
func invertPattern(pattern string) string {
	var result strings.Builder
	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32)
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32)
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}

// Match implements ReportMatcher.
func (pm *PositionMatcher) Match(report *processing.Report) bool {
	return pm.MatchReport(report) != nil
}

// Name implements ReportMatcher.
func (pm *PositionMatcher) Name() string {
	return "PositionMatcher"
}
