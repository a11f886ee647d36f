package engine

import (
	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/errors"
)

// MoveKind classifies an applied move.
type MoveKind int

const (
	QuietMove MoveKind = iota
	CaptureMove
	DoublePawnStep
	EnPassantCapture
	KingsideCastle
	QueensideCastle
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	names := []string{"quiet", "capture", "double-step", "en-passant", "castle-kingside", "castle-queenside"}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// MoveResult describes an applied move.
type MoveResult struct {
	From     chess.Square
	To       chess.Square
	Piece    chess.Piece // The piece that moved
	Captured chess.Piece // Empty if nothing was taken
	Kind     MoveKind

	// Changed lists, in order, every square whose occupant changed.
	Changed []chess.Square
}

// applyMove validates and executes a move on board, updating rules. On an
// invalid move neither board nor rules are touched.
func applyMove(board *chess.Board, rules *Rules, from, to chess.Square) (*MoveResult, error) {
	if !contains(GenerateMoves(board, rules, from), to) {
		return nil, errors.ErrInvalidMove
	}

	piece := board.Get(from)
	epTarget, epValid := rules.EnPassantTarget()

	rules.noteMove(board, from, to)

	result := &MoveResult{
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: board.Get(to),
	}

	switch {
	case piece.Kind == chess.King && isCastle(from, to):
		c, _ := findCastle(from, to)
		applyCastle(board, c)
		rules.markCastled(piece.Colour)
		result.Kind = QueensideCastle
		if c.kingside {
			result.Kind = KingsideCastle
		}
		result.Changed = []chess.Square{c.kingFrom, c.kingTo, c.rookFrom, c.rookTo}

	case piece.Kind == chess.Pawn && epValid && to == epTarget:
		victim := enPassantVictim(epTarget)
		result.Captured = board.Get(victim)
		board.Clear(victim)
		board.Move(from, to)
		result.Kind = EnPassantCapture
		result.Changed = []chess.Square{from, to, victim}

	default:
		board.Move(from, to)
		switch {
		case !result.Captured.IsEmpty():
			result.Kind = CaptureMove
		case piece.Kind == chess.Pawn && abs(int(to.Rank)-int(from.Rank)) == 2:
			result.Kind = DoublePawnStep
		}
		result.Changed = []chess.Square{from, to}
	}

	rules.advance()
	return result, nil
}

// isCastle reports whether a king move between from and to is one of the
// four castling moves.
func isCastle(from, to chess.Square) bool {
	_, ok := findCastle(from, to)
	return ok
}

// applyCastle moves the king and then the rook.
func applyCastle(board *chess.Board, c castle) {
	board.Move(c.kingFrom, c.kingTo)
	board.Move(c.rookFrom, c.rookTo)
}

// enPassantVictim returns the square of the pawn taken by an en-passant
// capture onto target: rank 5 for a target on rank 6, rank 4 for rank 3.
func enPassantVictim(target chess.Square) chess.Square {
	if target.Rank == '6' {
		return chess.Square{File: target.File, Rank: '5'}
	}
	return chess.Square{File: target.File, Rank: '4'}
}
