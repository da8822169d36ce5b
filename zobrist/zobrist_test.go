package zobrist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/rivalgo/fen"
	"github.com/corvidchess/rivalgo/makemove"
	"github.com/corvidchess/rivalgo/movegen"
	"github.com/corvidchess/rivalgo/zobrist"
)

func TestInitialized(t *testing.T) {
	assert.False(t, zobrist.Initialized())
	zobrist.Init()
	assert.True(t, zobrist.Initialized())
}

func TestFromScratchMatchesParseSeeded(t *testing.T) {
	zobrist.Init()
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)
	assert.Equal(t, zobrist.FromScratch(p), p.ZobristLock)
}

func TestFromScratchDiffersBetweenDistinctPositions(t *testing.T) {
	zobrist.Init()
	startpos, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)
	other, err := fen.Parse("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	assert.NotEqual(t, zobrist.FromScratch(startpos), zobrist.FromScratch(other))
}

func TestIncrementalLockMatchesFromScratchAfterMakeUnmake(t *testing.T) {
	zobrist.Init()
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)

	var list movegen.List
	movegen.Generate(p, &list)
	require.Greater(t, list.N, 0)

	for i := 0; i < list.N; i++ {
		m := list.Moves[i]
		undo := makemove.Make(p, m)
		assert.Equal(t, zobrist.FromScratch(p), p.ZobristLock, "incremental lock must match a from-scratch recomputation after Make")
		makemove.Unmake(p, m, undo)
		assert.Equal(t, zobrist.FromScratch(p), p.ZobristLock, "and again after Unmake restores the position")
	}
}
