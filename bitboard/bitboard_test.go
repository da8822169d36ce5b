package bitboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLSBEmptyBoard(t *testing.T) {
	assert.Equal(t, -1, Board(0).LSB())
}

func TestLSBFindsLowestSetBit(t *testing.T) {
	b := Board(0b10110000)
	assert.Equal(t, 4, b.LSB())
}

func TestPopLSBRemovesAndReturnsLowestBit(t *testing.T) {
	b := Board(0b10110000)
	sq := b.PopLSB()
	assert.Equal(t, 4, sq)
	assert.Equal(t, Board(0b10100000), b)
}

func TestPopLSBOnEmptyLeavesUnchanged(t *testing.T) {
	b := Board(0)
	sq := b.PopLSB()
	assert.Equal(t, -1, sq)
	assert.Equal(t, Board(0), b)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 0, Board(0).Count())
	assert.Equal(t, 1, Board(1).Count())
	assert.Equal(t, 64, All.Count())
}

func TestHasSetClear(t *testing.T) {
	var b Board
	assert.False(t, b.Has(10))
	b = b.Set(10)
	assert.True(t, b.Has(10))
	b = b.Clear(10)
	assert.False(t, b.Has(10))
}

func TestDirectionalShiftsClearWraparound(t *testing.T) {
	// A pawn-like bit on the H-file must not wrap to the A-file when
	// shifted east.
	h4 := FileH & Rank4
	assert.Equal(t, Board(0), h4.East())

	a4 := FileA & Rank4
	assert.Equal(t, Board(0), a4.West())
}

func TestNorthSouthAreInverse(t *testing.T) {
	rank4 := Rank4
	assert.Equal(t, Rank5, rank4.North())
	assert.Equal(t, Rank4, Rank5.South())
}
