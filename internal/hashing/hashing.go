// Package hashing detects repeated positions in analysis input.
package hashing

import (
	"github.com/lgbarn/bureaucrat-chess/internal/chess"
)

// DuplicateDetector tracks seen positions.
// Not safe for concurrent use.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits unique entries (0 = unlimited)
	maxCapacity int
	unique      int
}

// PositionSignature identifies a position.
type PositionSignature struct {
	// Hash is the Zobrist hash of the placement and side to move
	Hash uint64
	// WeakHash guards against Zobrist collisions
	WeakHash uint64
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd reports whether the position has been seen before and records it
// if not. Once the detector is full new positions are no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, toMove chess.Colour) bool {
	if board == nil {
		return false
	}

	sig := PositionSignature{
		Hash:     GenerateZobristHash(board, toMove),
		WeakHash: WeakHash(board),
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if existing == sig {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.unique++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.unique
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.unique >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.unique = 0
}
