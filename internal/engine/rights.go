package engine

import "github.com/lgbarn/playchess-go/internal/chess"

// CastlingRights tracks, for one colour, whether the pieces involved in
// castling have left their home squares.
type CastlingRights struct {
	KingMoved  bool
	ARookMoved bool // rook that started on the a-file
	HRookMoved bool // rook that started on the h-file
	Castled    bool
}

// CanCastle reports whether the side may still castle at all. The flag is
// (Castled XOR KingMoved) XOR (ARookMoved AND HRookMoved) and castling is
// allowed while it is false. The per-side rook flags are checked separately
// by the move generator.
func (r CastlingRights) CanCastle() bool {
	blocked := (r.Castled != r.KingMoved) != (r.ARookMoved && r.HRookMoved)
	return !blocked
}

// EnPassant is the en-passant target square together with its life counter.
// The target is created with Life 0 by a pawn double step next to an enemy
// pawn, survives exactly one reply and is then cleared.
type EnPassant struct {
	Target chess.Square
	Valid  bool
	Life   int
}

// Rules holds the state beyond piece placement that move generation and
// execution depend on.
type Rules struct {
	White     CastlingRights
	Black     CastlingRights
	EnPassant EnPassant
}

// NewRules returns the special-rules state of a fresh game.
func NewRules() Rules {
	return Rules{}
}

// Rights returns the castling record of a colour, or nil for NoColour.
func (r *Rules) Rights(colour chess.Colour) *CastlingRights {
	switch colour {
	case chess.White:
		return &r.White
	case chess.Black:
		return &r.Black
	}
	return nil
}

// CanCastle reports whether the colour may still castle.
func (r *Rules) CanCastle(colour chess.Colour) bool {
	rights := r.Rights(colour)
	return rights != nil && rights.CanCastle()
}

// EnPassantTarget returns the current en-passant target square, if any.
func (r *Rules) EnPassantTarget() (chess.Square, bool) {
	return r.EnPassant.Target, r.EnPassant.Valid
}

// noteMove updates the flags for a validated move before the board is
// changed. It reads the pre-move placement of board.
func (r *Rules) noteMove(board *chess.Board, from, to chess.Square) {
	mover := board.Get(from)

	if mover.Kind == chess.Pawn && abs(int(to.Rank)-int(from.Rank)) == 2 {
		r.noteDoubleStep(board, mover, from, to)
	}

	if !r.CanCastle(mover.Colour) {
		return
	}
	rights := r.Rights(mover.Colour)
	home := chess.HomeRank(mover.Colour)
	switch mover.Kind {
	case chess.King:
		rights.KingMoved = true
	case chess.Rook:
		if from == (chess.Square{File: 'a', Rank: home}) {
			rights.ARookMoved = true
		} else if from == (chess.Square{File: 'h', Rank: home}) {
			rights.HRookMoved = true
		}
	}
}

// noteDoubleStep creates the en-passant target when a pawn lands beside an
// enemy pawn after advancing two squares.
func (r *Rules) noteDoubleStep(board *chess.Board, pawn chess.Piece, from, to chess.Square) {
	for _, dCol := range [2]int{1, -1} {
		side, ok := to.Offset(0, dCol)
		if !ok {
			continue
		}
		neighbour := board.Get(side)
		if neighbour.Kind == chess.Pawn && neighbour.Colour != pawn.Colour {
			passed := chess.Square{File: to.File, Rank: chess.Rank((int(from.Rank) + int(to.Rank)) / 2)}
			r.EnPassant = EnPassant{Target: passed, Valid: true}
			return
		}
	}
}

// markCastled records that the colour has castled.
func (r *Rules) markCastled(colour chess.Colour) {
	if rights := r.Rights(colour); rights != nil {
		rights.Castled = true
	}
}

// advance ages the en-passant target by one ply, clearing it once its reply
// has been played.
func (r *Rules) advance() {
	if !r.EnPassant.Valid {
		return
	}
	if r.EnPassant.Life >= 1 {
		r.EnPassant = EnPassant{}
		return
	}
	r.EnPassant.Life++
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
