package engine

import (
	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/errors"
)

// Status is the outcome state of a game.
type Status int

const (
	// Ongoing is the only status the rules core reports: check, mate and
	// draws are not detected.
	Ongoing Status = iota
)

// String returns the status name.
func (s Status) String() string {
	return "ongoing"
}

// Game owns one board together with its special-rules state and ply count.
// A Game is not safe for concurrent use; callers serialise access per game.
type Game struct {
	board *chess.Board
	rules Rules
	ply   int

	// Side to move and full-move number at ply 0. Informational; turns are
	// not enforced.
	first     chess.Colour
	startMove int
}

// NewGame creates a game in the standard starting position.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset restores the starting position and clears all special-rules state.
func (g *Game) Reset() {
	if g.board == nil {
		g.board = chess.NewBoard()
	}
	g.board.Reset()
	g.rules = NewRules()
	g.ply = 0
	g.first = chess.White
	g.startMove = 1
}

// LegalMoves returns the algebraic names of the candidate destinations of
// the piece on square, in generation order.
func (g *Game) LegalMoves(square string) ([]string, error) {
	from, err := chess.ParseSquare(square)
	if err != nil {
		return nil, err
	}
	return chess.SquareNames(g.Moves(from)), nil
}

// Moves returns the candidate destinations of the piece on from.
func (g *Game) Moves(from chess.Square) []chess.Square {
	return GenerateMoves(g.board, &g.rules, from)
}

// ApplyMove validates and plays the move from-to given in algebraic names.
// A malformed square yields an error wrapping errors.ErrMalformedSquare; a
// destination outside LegalMoves(from) yields a *errors.MoveError wrapping
// errors.ErrInvalidMove. The game is unchanged whenever an error is
// returned.
func (g *Game) ApplyMove(from, to string) (*MoveResult, error) {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return nil, err
	}
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return nil, err
	}
	return g.Apply(fromSq, toSq)
}

// Apply is ApplyMove for parsed squares.
func (g *Game) Apply(from, to chess.Square) (*MoveResult, error) {
	result, err := applyMove(g.board, &g.rules, from, to)
	if err != nil {
		return nil, &errors.MoveError{Err: err, From: from.String(), To: to.String(), Ply: g.ply}
	}
	g.ply++
	return result, nil
}

// Occupant returns the piece standing on square.
func (g *Game) Occupant(square string) (chess.Piece, error) {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return chess.Empty, err
	}
	return g.board.Get(sq), nil
}

// Snapshot returns a copy of the board grid.
func (g *Game) Snapshot() chess.Snapshot {
	return g.board.Snapshot()
}

// Board returns a copy of the board for presentation adapters.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Rules returns a copy of the special-rules state.
func (g *Game) Rules() Rules {
	return g.rules
}

// Ply returns the number of moves applied since the position was set up.
func (g *Game) Ply() int {
	return g.ply
}

// ToMove returns the side whose turn it nominally is, from ply parity.
// ApplyMove does not enforce it.
func (g *Game) ToMove() chess.Colour {
	if g.ply%2 == 0 {
		return g.first
	}
	return g.first.Opposite()
}

// Status always reports Ongoing.
func (g *Game) Status() Status {
	return Ongoing
}

// Flip toggles the board orientation used by presentation adapters.
func (g *Game) Flip() {
	g.board.Flip()
}

// Orientation returns the current board orientation.
func (g *Game) Orientation() chess.Orientation {
	return g.board.Orientation
}
