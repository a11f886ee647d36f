// Package engine provides move generation, move execution and the game
// state a rules oracle needs between moves.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	g := NewGame()
	if err := g.LoadFEN(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadFEN replaces the position with the one described by fen. Missing
// trailing fields take their starting-position defaults. On error the game
// is left unchanged.
//
// The castling field maps onto the rook flags: a missing K marks the h-rook
// as moved, a missing Q the a-rook. An en-passant square becomes a target
// valid for the next move only. The half-move clock is accepted and ignored.
func (g *Game) LoadFEN(fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return err
	}

	first, err := parseSideToMove(parts)
	if err != nil {
		return err
	}

	rules := NewRules()
	if err := parseCastlingRights(&rules, parts); err != nil {
		return err
	}
	if err := parseEnPassant(&rules, parts); err != nil {
		return err
	}

	startMove, err := parseClocks(parts)
	if err != nil {
		return err
	}

	if g.board != nil {
		board.Orientation = g.board.Orientation
	}
	g.board = board
	g.rules = rules
	g.ply = 0
	g.first = first
	g.startMove = startMove
	return nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("%d ranks in piece placement: %w", len(ranks), errors.ErrInvalidFEN)
	}

	for row, text := range ranks {
		col := 0
		for i := 0; i < len(text); i++ {
			c := text[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece := chess.PieceFromLetter(c)
			if piece.IsEmpty() {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq, ok := chess.SquareAt(row, col)
			if !ok {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			board.Set(sq, piece)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.NoColour, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(rules *Rules, parts []string) error {
	if len(parts) < 3 {
		return nil
	}

	rules.White = CastlingRights{ARookMoved: true, HRookMoved: true}
	rules.Black = CastlingRights{ARookMoved: true, HRookMoved: true}
	if parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			rules.White.HRookMoved = false
		case 'Q':
			rules.White.ARookMoved = false
		case 'k':
			rules.Black.HRookMoved = false
		case 'q':
			rules.Black.ARookMoved = false
		default:
			return fmt.Errorf("invalid castling field: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(rules *Rules, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil || (target.Rank != '3' && target.Rank != '6') {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	// The move that created the target has already been played.
	rules.EnPassant = EnPassant{Target: target, Valid: true, Life: 1}
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields and
// returns the fullmove number.
func parseClocks(parts []string) (int, error) {
	if len(parts) >= 5 {
		if _, err := strconv.Atoi(parts[4]); err != nil {
			return 0, fmt.Errorf("invalid halfmove clock: %s: %w", parts[4], errors.ErrInvalidFEN)
		}
	}
	if len(parts) < 6 {
		return 1, nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid fullmove number: %s: %w", parts[5], errors.ErrInvalidFEN)
	}
	return n, nil
}

// FEN returns the position as a FEN string. The half-move clock is not
// tracked and is always written as 0.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, g.board)
	sb.WriteByte(' ')
	if g.ToMove() == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, &g.rules)
	sb.WriteByte(' ')
	if target, ok := g.rules.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " 0 %d", g.MoveNumber())

	return sb.String()
}

// MoveNumber returns the current full-move number.
func (g *Game) MoveNumber() int {
	plies := g.ply
	if g.first == chess.Black {
		plies++
	}
	return g.startMove + plies/2
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.GetByIndex(row, col)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder. A
// side whose king has moved or castled writes no letters even when the
// combined castling predicate would still allow it.
func writeCastlingRights(sb *strings.Builder, rules *Rules) {
	n := 0
	n += writeSideCastling(sb, rules, chess.White, 'K', 'Q')
	n += writeSideCastling(sb, rules, chess.Black, 'k', 'q')
	if n == 0 {
		sb.WriteByte('-')
	}
}

// writeSideCastling writes the castling letters of one colour and returns
// how many were written.
func writeSideCastling(sb *strings.Builder, rules *Rules, colour chess.Colour, kingside, queenside byte) int {
	rights := rules.Rights(colour)
	if !rules.CanCastle(colour) || rights.KingMoved || rights.Castled {
		return 0
	}
	n := 0
	if !rights.HRookMoved {
		sb.WriteByte(kingside)
		n++
	}
	if !rights.ARookMoved {
		sb.WriteByte(queenside)
		n++
	}
	return n
}
