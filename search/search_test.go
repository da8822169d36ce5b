package search

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/rivalgo/fen"
	"github.com/corvidchess/rivalgo/position"
	"github.com/corvidchess/rivalgo/tt"
	"github.com/corvidchess/rivalgo/zobrist"
)

func TestMain(m *testing.M) {
	zobrist.Init()
	os.Exit(m.Run())
}

func newState(p *position.Position) *State {
	st := NewState(context.Background(), tt.New(1<<20), []uint64{p.ZobristLock}, time.Time{})
	return st
}

func TestFindsMateInOne(t *testing.T) {
	// Classic back-rank mate: black king on g8 is boxed in by its own
	// pawns on f7/g7/h7, and Ra1-a8 checks along the empty 8th rank with
	// no escape square or blocker available.
	p, err := fen.Parse("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	require.NoError(t, err)

	st := newState(p)
	result := IterativeDeepening(p, 3, st, nil)

	assert.GreaterOrEqual(t, result.Score, MateStart, "a forced mate must score at or above MateStart")
	assert.Equal(t, "a1a8", result.BestMove.String())
}

func TestStalemateScoresZero(t *testing.T) {
	// Classic stalemate: black king on a8 has no legal move and is not
	// in check.
	p, err := fen.Parse("k7/8/1Q6/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)

	st := newState(p)
	score := Negamax(p, 1, 0, -MaxScore, MaxScore, st)
	assert.Equal(t, Score(0), score)
}

func TestIterativeDeepeningReturnsLegalRootMove(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)

	st := newState(p)
	result := IterativeDeepening(p, 2, st, nil)
	assert.NotEqual(t, 0, int(result.BestMove))
}

func TestIterativeDeepeningLeavesPositionUnchanged(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)
	before := *p

	st := newState(p)
	IterativeDeepening(p, 3, st, nil)

	assert.Equal(t, before, *p, "search must restore the root position exactly (every Make is paired with an Unmake)")
}

func TestStoppedSearchStillReturnsAMove(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	st := NewState(ctx, tt.New(1<<20), []uint64{p.ZobristLock}, time.Time{})
	cancel() // already stopped before the first iteration runs

	result := IterativeDeepening(p, 10, st, nil)
	assert.NotZero(t, result.BestMove, "even an immediately stopped search falls back to a legal root move")
}

func TestQuiesceStableOnQuietPosition(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)

	st := newState(p)
	score1 := Quiesce(p, 0, 0, -MaxScore, MaxScore, st)
	score2 := Quiesce(p, 0, 0, -MaxScore, MaxScore, st)
	assert.Equal(t, score1, score2, "quiescence on a position with no captures must be deterministic and stable")
}

func TestQuiesceWithSEEMatchesWithoutOnQuietPosition(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)

	stSEE := newState(p)
	stSEE.UseSEE = true
	stPlain := newState(p)
	stPlain.UseSEE = false

	assert.Equal(t,
		Quiesce(p, 0, 0, -MaxScore, MaxScore, stSEE),
		Quiesce(p, 0, 0, -MaxScore, MaxScore, stPlain),
	)
}

func TestMateInAdjustedForPlyDistance(t *testing.T) {
	assert.Equal(t, Score(-(Mate)), mateIn(0))
	assert.Greater(t, mateIn(2), mateIn(0), "a mate found further from the root is scored less badly for the side facing it")
}

func TestAdjustMateForStorageRoundTrips(t *testing.T) {
	const ply = 4
	stored := adjustMateForStorage(MateStart+10, ply)
	assert.Equal(t, Score(MateStart+10), adjustMateFromStorage(stored, ply))
}
