package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/rivalgo/fen"
	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/zobrist"
)

func init() { zobrist.Init() }

func TestEvaluateStartposIsSmallAndSymmetric(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)
	score := Evaluate(p)
	assert.Less(t, score, Score(50))
	assert.Greater(t, score, Score(-50))
}

func TestEvaluateKingVsKingIsDraw(t *testing.T) {
	p, err := fen.Parse("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, Score(0), Evaluate(p))
}

func TestEvaluateIsAntisymmetricUnderColourMirror(t *testing.T) {
	white, err := fen.Parse("4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	black, err := fen.Parse("4k3/8/8/4p3/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)

	// A white pawn up, white to move, must score the mirror of a black
	// pawn up, black to move: evaluation is always from the mover's view.
	assert.Equal(t, Evaluate(white), Evaluate(black))
}

func TestEvaluateRewardsExtraMaterial(t *testing.T) {
	up, err := fen.Parse("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	even, err := fen.Parse("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.Greater(t, Evaluate(up), Evaluate(even))
}

func TestCapturedValueReadsOrdinaryCapture(t *testing.T) {
	p, err := fen.Parse("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := move.New(28, 35, piece.Pawn) // e4xd5
	assert.Equal(t, PawnValue, CapturedValue(p, m))
}

func TestCapturedValueReadsEnPassant(t *testing.T) {
	p, err := fen.Parse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)
	m := move.New(36, 43, piece.Pawn) // e5xd6 en passant
	assert.Equal(t, PawnValue, CapturedValue(p, m))
}

func TestCapturedValueZeroForQuietMove(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)
	m := move.New(12, 28, piece.Pawn) // e2e4
	assert.Equal(t, 0, CapturedValue(p, m))
}
