package uci

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/rivalgo/fen"
	"github.com/corvidchess/rivalgo/piece"
)

func TestParseGoDepth(t *testing.T) {
	g := parseGo([]string{"depth", "6"})
	assert.Equal(t, 6, g.depth)
}

func TestParseGoTimeControls(t *testing.T) {
	g := parseGo([]string{"wtime", "60000", "btime", "55000", "winc", "1000", "binc", "500", "movestogo", "20"})
	assert.Equal(t, 60*time.Second, g.wtime)
	assert.Equal(t, 55*time.Second, g.btime)
	assert.Equal(t, time.Second, g.winc)
	assert.Equal(t, 500*time.Millisecond, g.binc)
	assert.Equal(t, 20, g.movestogo)
}

func TestParseGoInfinite(t *testing.T) {
	g := parseGo([]string{"infinite"})
	assert.True(t, g.infinite)
}

func TestDeadlineInfiniteIsZero(t *testing.T) {
	g := goParams{infinite: true}
	assert.True(t, g.deadline(time.Now(), piece.White).IsZero())
}

func TestDeadlineMovetime(t *testing.T) {
	now := time.Now()
	g := goParams{movetime: 500 * time.Millisecond}
	d := g.deadline(now, piece.White)
	assert.Equal(t, now.Add(500*time.Millisecond), d)
}

func TestDeadlineUsesSideToMoveClock(t *testing.T) {
	now := time.Now()
	g := goParams{wtime: 10 * time.Second, btime: 20 * time.Second, movestogo: 10}
	white := g.deadline(now, piece.White)
	black := g.deadline(now, piece.Black)
	assert.True(t, black.After(white))
}

func TestDeadlineDepthOnlyHasNoTimeLimit(t *testing.T) {
	g := goParams{depth: 5}
	assert.True(t, g.deadline(time.Now(), piece.White).IsZero())
}

func TestFindMoveMatchesCoordinateNotation(t *testing.T) {
	pos, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)

	m, ok := findMove(pos, "e2e4")
	require.True(t, ok)
	assert.Equal(t, "e2e4", m.String())

	_, ok = findMove(pos, "e2e5")
	assert.False(t, ok)
}

func TestSetPositionStartposWithMoves(t *testing.T) {
	e := &Engine{}
	err := e.setPosition([]string{"startpos", "moves", "e2e4", "e7e5"})
	require.NoError(t, err)
	assert.Len(t, e.history, 3)
	assert.Equal(t, piece.White, e.pos.Mover)
}

func TestSetPositionFenWithoutMoves(t *testing.T) {
	e := &Engine{}
	err := e.setPosition([]string{"fen", "8/8/8/8/8/8/8/K6k", "w", "-", "-", "0", "1"})
	require.NoError(t, err)
	assert.Len(t, e.history, 1)
}

func TestSetPositionRejectsIllegalMove(t *testing.T) {
	e := &Engine{}
	err := e.setPosition([]string{"startpos", "moves", "e2e5"})
	assert.Error(t, err)
}

func TestSetPositionRejectsMissingArgument(t *testing.T) {
	e := &Engine{}
	err := e.setPosition(nil)
	assert.Error(t, err)
}
