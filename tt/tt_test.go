package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/piece"
)

func TestNewRoundsSizeDownToPowerOfTwo(t *testing.T) {
	table := New(1024)
	assert.Equal(t, 1024/32, table.Len())
}

func TestNewNeverBelowTwoEntries(t *testing.T) {
	table := New(1)
	assert.GreaterOrEqual(t, table.Len(), 2)
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := New(4096)
	_, ok := table.Probe(0xdeadbeef)
	assert.False(t, ok)
}

func TestStoreThenProbeRoundTrips(t *testing.T) {
	table := New(4096)
	m := move.New(12, 28, piece.Pawn)
	table.Store(0x123, 5, Exact, 42, m)

	e, ok := table.Probe(0x123)
	assert.True(t, ok)
	assert.Equal(t, int8(5), e.Depth)
	assert.Equal(t, Exact, e.Bound)
	assert.Equal(t, int32(42), e.Score)
	assert.Equal(t, m, e.BestMove)
}

func TestStoreDoesNotReplaceDeeperEntryInSameGeneration(t *testing.T) {
	table := New(4096)
	lock := uint64(1) // collides with index 1 under any reasonably sized mask

	table.Store(lock, 8, Exact, 100, 0)
	table.Store(lock, 3, Exact, 1, 0)

	e, ok := table.Probe(lock)
	assert.True(t, ok)
	assert.Equal(t, int8(8), e.Depth, "a shallower same-generation write must not replace a deeper entry")
}

func TestStoreReplacesOnNewGenerationRegardlessOfDepth(t *testing.T) {
	table := New(4096)
	lock := uint64(1)

	table.Store(lock, 8, Exact, 100, 0)
	table.NewGeneration()
	table.Store(lock, 1, Exact, -5, 0)

	e, ok := table.Probe(lock)
	assert.True(t, ok)
	assert.Equal(t, int8(1), e.Depth)
}

func TestClearEmptiesTable(t *testing.T) {
	table := New(4096)
	table.Store(0x1, 5, Exact, 1, 0)
	table.Clear()

	_, ok := table.Probe(0x1)
	assert.False(t, ok)
}

func TestProbeDetectsIndexCollisionWithDifferentLock(t *testing.T) {
	table := New(4096) // 128 entries, mask 0x7F
	table.Store(0x80, 4, Exact, 1, 0) // same index (0) as lock 0, different lock
	_, ok := table.Probe(0x00)
	assert.False(t, ok, "an entry at the same index but a different lock must not be returned as a hit")
}
