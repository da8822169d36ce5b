// Package tt implements the transposition table described in spec.md §3.7:
// a fixed-size, lock-indexed cache of previously searched positions keyed by
// Zobrist hash, storing bound, score, depth, best move, and an aging
// generation counter.
//
// Grounded on other_examples' herohde-morlock pkg/search/transposition.go
// (power-of-two masked indexing instead of a literal "mod N", a single flat
// slice of fixed-size entries rather than per-bucket chaining, and a
// depth/generation based replacement policy), adapted from morlock's
// pointer-indirected/atomic node design to this module's single-threaded
// search (spec.md §5.3: the table is owned outright by one search, not
// shared across goroutines, so no atomics are needed here).
package tt

import (
	"math/bits"

	"github.com/corvidchess/rivalgo/move"
)

// Bound classifies how score relates to the true minimax value of the node.
type Bound uint8

const (
	NoBound Bound = iota
	Exact
	LowerBound
	UpperBound
)

// Entry is one transposition table slot (spec.md §3.7).
type Entry struct {
	Lock       uint64
	Depth      int8
	Bound      Bound
	Score      int32
	BestMove   move.Move
	Generation uint8
}

// Table is a fixed-size, direct-mapped transposition table.
type Table struct {
	entries    []Entry
	mask       uint64
	generation uint8
}

// New allocates a table sized to hold roughly sizeBytes worth of entries,
// rounded down to the nearest power of two (so lookups can mask instead of
// mod), matching morlock's `1 << (63 - 5 - LeadingZeros64(size))` sizing
// idiom generalized to this package's Entry size.
func New(sizeBytes uint64) *Table {
	const entrySize = uint64(32) // approx sizeof(Entry) rounded up
	n := sizeBytes / entrySize
	if n < 2 {
		n = 2
	}
	shift := bits.Len64(n) - 1
	count := uint64(1) << shift
	return &Table{
		entries: make([]Entry, count),
		mask:    count - 1,
	}
}

// NewGeneration age(advances) the replacement counter; called once per `go`
// command (spec.md §3.7's "generation (aging counter, incremented each go)").
func (t *Table) NewGeneration() {
	t.generation++
}

// Probe looks up lock, returning the stored entry and whether it was found.
// The full lock is compared here, so an entry at the same index that belongs
// to a different position (index collision) is reported as not found.
func (t *Table) Probe(lock uint64) (Entry, bool) {
	e := &t.entries[lock&t.mask]
	if e.Bound != NoBound && e.Lock == lock {
		return *e, true
	}
	return Entry{}, false
}

// Store writes an entry, replacing the current occupant if the new depth is
// at least as deep as the stored one, or the stored entry is from an earlier
// generation (spec.md §3.7 replacement policy).
func (t *Table) Store(lock uint64, depth int8, bound Bound, score int32, best move.Move) {
	slot := &t.entries[lock&t.mask]
	if slot.Bound != NoBound && depth < slot.Depth && slot.Generation == t.generation {
		return
	}
	*slot = Entry{
		Lock:       lock,
		Depth:      depth,
		Bound:      bound,
		Score:      score,
		BestMove:   best,
		Generation: t.generation,
	}
}

// Clear empties the table without reallocating, used by the UCI `ucinewgame`
// handler (spec.md §6.1).
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.generation = 0
}

// Len returns the number of entry slots.
func (t *Table) Len() int { return len(t.entries) }
