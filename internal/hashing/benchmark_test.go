package hashing

import (
	"testing"

	"github.com/lgbarn/playchess-go/internal/engine"
)

var benchFENPositions = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
}

func BenchmarkGenerateZobristHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			g, _ := engine.NewGameFromFEN(fen)
			board := g.Board()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				GenerateZobristHash(board)
			}
		})
	}
}

func BenchmarkPositionHash(b *testing.B) {
	for name, fen := range benchFENPositions {
		b.Run(name, func(b *testing.B) {
			g, _ := engine.NewGameFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				PositionHash(g)
			}
		})
	}
}

func BenchmarkDuplicateDetector(b *testing.B) {
	g := engine.NewGame()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := NewDuplicateDetector(false, 0)
		d.CheckAndAdd(g)
		d.CheckAndAdd(g)
	}
}
