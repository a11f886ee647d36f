// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/playchess-go/internal/engine"
)

// DuplicateChecker is the interface shared by DuplicateDetector and
// ThreadSafeDuplicateDetector.
type DuplicateChecker interface {
	CheckAndAdd(g *engine.Game) bool
	DuplicateCount() int
	UniqueCount() int
}

// DuplicateDetector tracks seen final positions.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]Signature
	// useExactMatch also requires the same number of plies
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	uniqueCount int
}

// Signature identifies the position a game ended in.
type Signature struct {
	// Hash is the Zobrist hash of the position including rules state
	Hash uint64
	// Ply is the number of moves played to reach it
	Ply int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
}

// SignatureOf computes the signature of a game's current position.
func SignatureOf(g *engine.Game) Signature {
	return Signature{
		Hash:     PositionHash(g),
		Ply:      g.Ply(),
		WeakHash: WeakHash(g.Board()),
	}
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if the game's position was seen before and records it.
// Returns true if it is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(g *engine.Game) bool {
	if g == nil {
		return false
	}
	return d.checkAndAddSignature(SignatureOf(g))
}

func (d *DuplicateDetector) checkAndAddSignature(sig Signature) bool {
	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if d.signaturesMatch(sig, existingSig) {
				d.duplicateCount++
				return true
			}
		}
	}

	// Once full, new positions are reported as unique but not remembered.
	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.uniqueCount++
	return false
}

// signaturesMatch checks if two signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Ply != b.Ply {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}
