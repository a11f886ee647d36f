package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/playchess-go/internal/engine"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	const numGames = 100
	const numWorkers = 10
	gamesPerWorker := numGames / numWorkers

	games := make([]*engine.Game, numGames)
	for i := range games {
		games[i] = engine.NewGame()
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * gamesPerWorker
			end := start + gamesPerWorker
			for j := start; j < end; j++ {
				detector.CheckAndAdd(games[j])
			}
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 99 {
		t.Errorf("Expected 99 duplicates, got %d", detector.DuplicateCount())
	}

	if detector.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique, got %d", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq - 0 1",
	}

	games := make([]*engine.Game, len(fens))
	for i, fen := range fens {
		games[i] = mustGame(t, fen)
	}

	var wg sync.WaitGroup
	for i := range games {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			detector.CheckAndAdd(games[idx])
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}

	if detector.UniqueCount() != len(fens) {
		t.Errorf("Expected %d unique, got %d", len(fens), detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_LoadFromDetector(t *testing.T) {
	regular := NewDuplicateDetector(false, 0)
	game := engine.NewGame()
	regular.CheckAndAdd(game)

	threadSafe := NewThreadSafeDuplicateDetector(false, 0)
	threadSafe.LoadFromDetector(regular)

	if threadSafe.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique after load, got %d", threadSafe.UniqueCount())
	}

	if !threadSafe.CheckAndAdd(game) {
		t.Error("Expected duplicate after loading from regular detector")
	}

	if threadSafe.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate, got %d", threadSafe.DuplicateCount())
	}
}

func TestThreadSafeDuplicateDetector_MaxCapacity(t *testing.T) {
	const capacity = 3
	detector := NewThreadSafeDuplicateDetector(false, capacity)

	moves := [][2]string{{"a2", "a3"}, {"b2", "b3"}, {"c2", "c3"}, {"d2", "d3"}, {"e2", "e3"}}
	var wg sync.WaitGroup
	for _, m := range moves {
		g := engine.NewGame()
		play(t, g, m)
		wg.Add(1)
		go func() {
			defer wg.Done()
			detector.CheckAndAdd(g)
		}()
	}
	wg.Wait()

	if !detector.IsFull() {
		t.Error("Expected detector to be full")
	}
	if got := detector.UniqueCount(); got != capacity {
		t.Errorf("UniqueCount() = %d, want %d", got, capacity)
	}
	if detector.CheckAndAdd(nil) {
		t.Error("nil game should never be a duplicate")
	}
}

func TestDuplicateCheckerInterface(t *testing.T) {
	checkers := []DuplicateChecker{
		NewDuplicateDetector(false, 0),
		NewThreadSafeDuplicateDetector(false, 0),
	}
	for _, c := range checkers {
		g := engine.NewGame()
		if c.CheckAndAdd(g) {
			t.Errorf("%T: first game reported as duplicate", c)
		}
		if !c.CheckAndAdd(engine.NewGame()) {
			t.Errorf("%T: identical game not reported as duplicate", c)
		}
		if c.DuplicateCount() != 1 || c.UniqueCount() != 1 {
			t.Errorf("%T: counts = %d/%d, want 1/1", c, c.DuplicateCount(), c.UniqueCount())
		}
	}
}
