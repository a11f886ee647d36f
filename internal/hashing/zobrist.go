package hashing

import (
	"github.com/lgbarn/playchess-go/internal/chess"
	"github.com/lgbarn/playchess-go/internal/engine"
)

// Key layout: 64 squares x 12 coloured pieces, then side to move, then the
// eight castling flags, then one key per en-passant file.
const (
	pieceKeys    = 64 * 12
	sideKey      = pieceKeys
	castlingBase = sideKey + 1
	epBase       = castlingBase + 8
	numKeys      = epBase + chess.BoardSize
)

var zobristKeys = generateKeys(0x9E3779B97F4A7C15)

// generateKeys fills the key table from a fixed seed so hashes are stable
// between runs.
func generateKeys(seed uint64) [numKeys]uint64 {
	var keys [numKeys]uint64
	state := seed
	for i := range keys {
		// splitmix64
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		keys[i] = z ^ (z >> 31)
	}
	return keys
}

// pieceIndex maps a non-empty piece to 0..11.
func pieceIndex(p chess.Piece) int {
	idx := int(p.Kind) - int(chess.Pawn)
	if p.Colour == chess.Black {
		idx += 6
	}
	return idx
}

// GenerateZobristHash hashes the piece placement of a board.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.GetByIndex(row, col)
			if p.IsEmpty() {
				continue
			}
			hash ^= zobristKeys[(row*chess.BoardSize+col)*12+pieceIndex(p)]
		}
	}
	return hash
}

// PositionHash hashes everything that affects the moves available in a
// game: placement, side to move, castling flags and the en-passant target.
func PositionHash(g *engine.Game) uint64 {
	hash := GenerateZobristHash(g.Board())
	if g.ToMove() == chess.Black {
		hash ^= zobristKeys[sideKey]
	}

	rules := g.Rules()
	flags := []bool{
		rules.White.KingMoved, rules.White.ARookMoved, rules.White.HRookMoved, rules.White.Castled,
		rules.Black.KingMoved, rules.Black.ARookMoved, rules.Black.HRookMoved, rules.Black.Castled,
	}
	for i, set := range flags {
		if set {
			hash ^= zobristKeys[castlingBase+i]
		}
	}

	if target, ok := rules.EnPassantTarget(); ok {
		hash ^= zobristKeys[epBase+int(target.File-chess.FirstCol)]
	}
	return hash
}

// WeakHash is a cheap additive hash of material and placement. Equal boards
// always agree; it is used as a second check behind the Zobrist hash.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	for i, sq := range chess.AllSquares() {
		p := board.Get(sq)
		if p.IsEmpty() {
			continue
		}
		hash += uint64(i+1) * uint64(pieceIndex(p)+1) * 0x100000001B3
	}
	return hash
}
