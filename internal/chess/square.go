package chess

import (
	"fmt"

	"github.com/lgbarn/playchess-go/internal/errors"
)

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// Square is a board coordinate. Its canonical external form is the
// two-character algebraic name, e.g. "e4".
type Square struct {
	File Col
	Rank Rank
}

// ParseSquare converts an algebraic square name into a Square. Only the 64
// names "a1".."h8" are accepted.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrMalformedSquare)
	}
	sq := Square{File: Col(s[0]), Rank: Rank(s[1])}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: %w", s, errors.ErrMalformedSquare)
	}
	return sq, nil
}

// MustSquare is like ParseSquare but panics on malformed input. It is meant
// for package-level tables and tests.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= FirstCol && s.File <= LastCol &&
		s.Rank >= FirstRank && s.Rank <= LastRank
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	return string([]byte{byte(s.File), byte(s.Rank)})
}

// Index returns the grid position of the square. Row 0 is rank 8 and
// column 0 is file a.
func (s Square) Index() (row, col int) {
	return int(LastRank - s.Rank), int(s.File - ColBase)
}

// SquareAt is the inverse of Square.Index. ok is false when the indices are
// off the board.
func SquareAt(row, col int) (sq Square, ok bool) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Square{}, false
	}
	return Square{File: Col(ColBase + col), Rank: Rank(LastRank - row)}, true
}

// Offset returns the square dRow rows and dCol columns away, following the
// grid convention of Index.
func (s Square) Offset(dRow, dCol int) (Square, bool) {
	row, col := s.Index()
	return SquareAt(row+dRow, col+dCol)
}

// AllSquares returns the 64 squares in grid order, a8 first and h1 last.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq, _ := SquareAt(row, col)
			squares = append(squares, sq)
		}
	}
	return squares
}

// SquareNames converts squares to their algebraic names, preserving order.
func SquareNames(squares []Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}
