package engine

import "github.com/lgbarn/playchess-go/internal/chess"

// direction is a grid step. Rows grow towards rank 1, columns towards the
// h-file.
type direction struct {
	dRow, dCol int
}

var (
	dirLeft        = direction{0, -1}
	dirRight       = direction{0, 1}
	dirTop         = direction{-1, 0}
	dirBottom      = direction{1, 0}
	dirBottomLeft  = direction{1, -1}
	dirBottomRight = direction{1, 1}
	dirTopLeft     = direction{-1, -1}
	dirTopRight    = direction{-1, 1}
)

// Scan order is part of the contract: callers and tests rely on it.
var (
	orthogonalDirs = []direction{dirLeft, dirRight, dirTop, dirBottom}
	diagonalDirs   = []direction{dirBottomLeft, dirBottomRight, dirTopLeft, dirTopRight}
)

var knightOffsets = []direction{
	{2, 1}, {-2, 1}, {2, -1}, {-2, -1},
	{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
}

// unlimited lets a ray run to the edge of the board.
const unlimited = 0

// GenerateMoves returns the pseudo-legal destination squares of the piece on
// from, in a fixed order. Whether the move leaves the mover's king attacked
// is not considered. An empty square yields no moves.
func GenerateMoves(board *chess.Board, rules *Rules, from chess.Square) []chess.Square {
	piece := board.Get(from)
	var moves []chess.Square

	switch piece.Kind {
	case chess.King:
		moves = scanRays(board, from, piece.Colour, orthogonalDirs, 1, moves)
		moves = scanRays(board, from, piece.Colour, diagonalDirs, 1, moves)
		moves = castlingMoves(board, rules, from, piece.Colour, moves)
	case chess.Queen:
		moves = scanRays(board, from, piece.Colour, diagonalDirs, unlimited, moves)
		moves = scanRays(board, from, piece.Colour, orthogonalDirs, unlimited, moves)
	case chess.Rook:
		moves = scanRays(board, from, piece.Colour, orthogonalDirs, unlimited, moves)
	case chess.Bishop:
		moves = scanRays(board, from, piece.Colour, diagonalDirs, unlimited, moves)
	case chess.Knight:
		moves = knightMoves(board, from, piece.Colour, moves)
	case chess.Pawn:
		moves = pawnMoves(board, rules, from, piece.Colour, moves)
	}
	return moves
}

// scanRays runs scanRay for each direction in order.
func scanRays(board *chess.Board, from chess.Square, colour chess.Colour, dirs []direction, limit int, moves []chess.Square) []chess.Square {
	for _, d := range dirs {
		moves = scanRay(board, from, colour, d, limit, moves)
	}
	return moves
}

// scanRay walks from the source square in one direction. It stops before a
// friendly piece, includes and stops on an enemy piece and includes empty
// squares. A positive limit caps the number of steps.
func scanRay(board *chess.Board, from chess.Square, colour chess.Colour, d direction, limit int, moves []chess.Square) []chess.Square {
	sq := from
	for steps := 0; limit == unlimited || steps < limit; steps++ {
		next, ok := sq.Offset(d.dRow, d.dCol)
		if !ok {
			break
		}
		target := board.Get(next)
		if target.Colour == colour {
			break
		}
		moves = append(moves, next)
		if !target.IsEmpty() {
			break
		}
		sq = next
	}
	return moves
}

// knightMoves adds every on-board knight jump not landing on a friendly piece.
func knightMoves(board *chess.Board, from chess.Square, colour chess.Colour, moves []chess.Square) []chess.Square {
	for _, off := range knightOffsets {
		to, ok := from.Offset(off.dRow, off.dCol)
		if !ok {
			continue
		}
		if board.Get(to).Colour != colour {
			moves = append(moves, to)
		}
	}
	return moves
}

// pawnMoves adds forward steps and diagonal captures. Forward movement is
// blocked by any piece. A diagonal square is a capture if it holds an enemy
// piece or is the en-passant target left by an enemy pawn.
func pawnMoves(board *chess.Board, rules *Rules, from chess.Square, colour chess.Colour, moves []chess.Square) []chess.Square {
	dRow := chess.ColourOffset(colour)

	steps := 1
	if from.Rank == chess.PawnRank(colour) {
		steps = 2
	}
	sq := from
	for i := 0; i < steps; i++ {
		next, ok := sq.Offset(dRow, 0)
		if !ok || !board.Get(next).IsEmpty() {
			break
		}
		moves = append(moves, next)
		sq = next
	}

	// White looks right then left, Black left then right.
	sides := [2]int{1, -1}
	if colour == chess.Black {
		sides = [2]int{-1, 1}
	}
	target, hasTarget := rules.EnPassantTarget()
	hasTarget = hasTarget && target.Rank == enPassantRank(colour)
	for _, dCol := range sides {
		to, ok := from.Offset(dRow, dCol)
		if !ok {
			continue
		}
		if hasTarget && to == target {
			moves = append(moves, to)
			continue
		}
		if occupant := board.Get(to); occupant.Colour == colour.Opposite() {
			moves = append(moves, to)
		}
	}
	return moves
}

// enPassantRank is the rank on which a pawn of the given colour can capture
// en passant.
func enPassantRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return '6'
	}
	return '3'
}

// castle describes one of the four castling moves.
type castle struct {
	colour   chess.Colour
	kingside bool
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	between  []chess.Square // squares that must be empty
}

var castles = []castle{
	{chess.White, true, mustSquare("e1"), mustSquare("g1"), mustSquare("h1"), mustSquare("f1"), []chess.Square{mustSquare("f1"), mustSquare("g1")}},
	{chess.White, false, mustSquare("e1"), mustSquare("c1"), mustSquare("a1"), mustSquare("d1"), []chess.Square{mustSquare("d1"), mustSquare("c1")}},
	{chess.Black, true, mustSquare("e8"), mustSquare("g8"), mustSquare("h8"), mustSquare("f8"), []chess.Square{mustSquare("f8"), mustSquare("g8")}},
	{chess.Black, false, mustSquare("e8"), mustSquare("c8"), mustSquare("a8"), mustSquare("d8"), []chess.Square{mustSquare("d8"), mustSquare("c8")}},
}

func mustSquare(name string) chess.Square {
	return chess.MustSquare(name)
}

// findCastle returns the castling move a king makes between from and to.
func findCastle(from, to chess.Square) (castle, bool) {
	for _, c := range castles {
		if c.kingFrom == from && c.kingTo == to {
			return c, true
		}
	}
	return castle{}, false
}

// castlingMoves adds the castling destinations of a king on its home square.
// Attacked squares are not considered.
func castlingMoves(board *chess.Board, rules *Rules, from chess.Square, colour chess.Colour, moves []chess.Square) []chess.Square {
	if !rules.CanCastle(colour) {
		return moves
	}
	rights := rules.Rights(colour)
	for _, c := range castles {
		if c.colour != colour || c.kingFrom != from {
			continue
		}
		if (c.kingside && rights.HRookMoved) || (!c.kingside && rights.ARookMoved) {
			continue
		}
		if board.Get(c.rookFrom) != chess.NewPiece(colour, chess.Rook) {
			continue
		}
		if !allEmpty(board, c.between) {
			continue
		}
		moves = append(moves, c.kingTo)
	}
	return moves
}

// allEmpty reports whether none of the squares is occupied.
func allEmpty(board *chess.Board, squares []chess.Square) bool {
	for _, s := range squares {
		if !board.Get(s).IsEmpty() {
			return false
		}
	}
	return true
}

// contains reports whether squares includes target.
func contains(squares []chess.Square, target chess.Square) bool {
	for _, s := range squares {
		if s == target {
			return true
		}
	}
	return false
}
