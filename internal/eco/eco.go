// Package eco provides ECO (Encyclopaedia of Chess Openings) classification
// of replayed move scripts.
package eco

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/playchess-go/internal/engine"
	"github.com/lgbarn/playchess-go/internal/hashing"
	"github.com/lgbarn/playchess-go/internal/parser"
	"github.com/lgbarn/playchess-go/internal/processing"
)

// ECOHalfMoveLimit is the maximum distance from an ECO line for a match.
const ECOHalfMoveLimit = 6

// ECOTableSize is the size of the ECO hash table.
const ECOTableSize = 4096

// ECOEntry represents a single ECO classification entry.
type ECOEntry struct {
	ECOCode        string // e.g., "B33"
	Opening        string // e.g., "Sicilian"
	Variation      string // e.g., "Sveshnikov"
	RequiredHash   uint64 // Placement hash of the line's final position
	CumulativeHash uint64 // XOR of the placement hashes along the line
	HalfMoves      int    // Number of half-moves to reach this position
	Next           *ECOEntry
}

// Name joins the opening and variation names.
func (e *ECOEntry) Name() string {
	if e.Variation == "" {
		return e.Opening
	}
	return e.Opening + ": " + e.Variation
}

// ECOClassifier provides ECO classification for replay reports.
type ECOClassifier struct {
	table         [ECOTableSize]*ECOEntry
	maxHalfMoves  int
	entriesLoaded int
}

// NewECOClassifier creates a new ECO classifier.
func NewECOClassifier() *ECOClassifier {
	return &ECOClassifier{
		maxHalfMoves: ECOHalfMoveLimit,
	}
}

// LoadFromFile loads ECO data from a file.
func (ec *ECOClassifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return ec.LoadFromReader(file)
}

// LoadFromReader loads ECO data from a reader. Each line holds four fields
// separated by '|': code, opening, variation (may be empty) and the moves
// from the initial position, e.g.
//
//	C50 | Giuoco Piano | | 1. e2-e4 e7-e5 2. g1-f3 b8-c6 3. f1-c4 f8-c5
//
// Blank lines and lines starting with # are skipped.
func (ec *ECOClassifier) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 4 {
			return fmt.Errorf("error parsing ECO file: line %d: want 4 fields, got %d", lineNum, len(fields))
		}
		if err := ec.addECOEntry(fields, lineNum); err != nil {
			return fmt.Errorf("error parsing ECO file: line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

// addECOEntry replays one line and adds its final position to the table.
func (ec *ECOClassifier) addECOEntry(fields []string, lineNum int) error {
	ecoCode := strings.TrimSpace(fields[0])
	if ecoCode == "" {
		return nil // Skip entries without ECO code
	}

	script, err := parser.ParseString(fields[3], fmt.Sprintf("eco:%d", lineNum))
	if err != nil {
		return err
	}

	g := engine.NewGame()
	var cumulativeHash uint64
	halfMoves := 0
	for _, cmd := range script.Commands {
		if cmd.Kind != parser.MoveCommand {
			continue
		}
		if _, err := g.ApplyMove(cmd.From, cmd.To); err != nil {
			return err
		}
		halfMoves++
		cumulativeHash ^= hashing.GenerateZobristHash(g.Board())
	}

	if halfMoves == 0 {
		return nil // No moves in this entry
	}

	entry := &ECOEntry{
		ECOCode:        ecoCode,
		Opening:        strings.TrimSpace(fields[1]),
		Variation:      strings.TrimSpace(fields[2]),
		RequiredHash:   hashing.GenerateZobristHash(g.Board()),
		CumulativeHash: cumulativeHash,
		HalfMoves:      halfMoves,
	}

	// Check for collision
	ix := entry.RequiredHash % ECOTableSize
	for existing := ec.table[ix]; existing != nil; existing = existing.Next {
		if existing.RequiredHash == entry.RequiredHash &&
			existing.HalfMoves == entry.HalfMoves &&
			existing.CumulativeHash == entry.CumulativeHash {
			// Collision - skip this entry
			return nil
		}
	}

	entry.Next = ec.table[ix]
	ec.table[ix] = entry
	ec.entriesLoaded++

	if halfMoves+ECOHalfMoveLimit > ec.maxHalfMoves {
		ec.maxHalfMoves = halfMoves + ECOHalfMoveLimit
	}
	return nil
}

// Classify finds the best ECO match for a report by replaying its applied
// moves from the report's initial position. Replay stops at the first move
// that no longer applies, which happens after a reset or fen command.
// Returns nil if no line matches.
func (ec *ECOClassifier) Classify(report *processing.Report) *ECOEntry {
	if ec.entriesLoaded == 0 {
		return nil
	}

	g, err := engine.NewGameFromFEN(report.InitialFEN)
	if err != nil {
		g = engine.NewGame()
	}

	var bestMatch *ECOEntry
	var cumulativeHash uint64
	for i, rec := range report.Moves {
		halfMoves := i + 1
		if halfMoves > ec.maxHalfMoves {
			break
		}
		if _, err := g.Apply(rec.Result.From, rec.Result.To); err != nil {
			break
		}

		posHash := hashing.GenerateZobristHash(g.Board())
		cumulativeHash ^= posHash

		if match := ec.findMatch(posHash, cumulativeHash, halfMoves); match != nil {
			bestMatch = match
		}
	}

	return bestMatch
}

// findMatch looks up a position in the ECO table.
func (ec *ECOClassifier) findMatch(posHash, cumulativeHash uint64, halfMoves int) *ECOEntry {
	ix := posHash % ECOTableSize
	var possible *ECOEntry

	for entry := ec.table[ix]; entry != nil; entry = entry.Next {
		if entry.RequiredHash == posHash {
			// Exact match on position and cumulative hash
			if entry.HalfMoves == halfMoves && entry.CumulativeHash == cumulativeHash {
				return entry
			}
			// Transposition within limit
			if abs(halfMoves-entry.HalfMoves) <= ECOHalfMoveLimit {
				possible = entry
			}
		}
	}

	return possible
}

// Annotate stores the ECO code and opening name of the best match in the
// report. It returns false when nothing matched.
func (ec *ECOClassifier) Annotate(report *processing.Report) bool {
	match := ec.Classify(report)
	if match == nil {
		return false
	}
	report.ECO = match.ECOCode
	report.Opening = match.Name()
	return true
}

// EntriesLoaded returns the number of ECO entries loaded.
func (ec *ECOClassifier) EntriesLoaded() int {
	return ec.entriesLoaded
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
