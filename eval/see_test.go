package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/rivalgo/fen"
	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/piece"
)

func TestSeeWinningCaptureIsPositive(t *testing.T) {
	// White pawn takes an undefended black knight.
	p, err := fen.Parse("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := move.New(28, 35, piece.Pawn) // e4xd5
	assert.Greater(t, See(p, m), 0)
}

func TestSeeLosingCaptureIsNegative(t *testing.T) {
	// White queen takes a pawn defended by a black knight on b6: the
	// queen is then recaptured for a net material loss.
	p, err := fen.Parse("4k3/8/1n6/3p4/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	m := move.New(3, 35, piece.Queen) // d1xd5
	assert.Equal(t, PawnValue-QueenValue, See(p, m))
}

func TestSeeUndefendedPawnCaptureWinsPawn(t *testing.T) {
	// A pawn takes a pawn of equal value with no recapture available.
	p, err := fen.Parse("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	m := move.New(28, 35, piece.Pawn) // e4xd5
	assert.Equal(t, PawnValue, See(p, m))
}

func TestSeeRookTakesRookDefendedByRookIsEven(t *testing.T) {
	// Rook takes rook, immediately recaptured by another rook: a level
	// trade nets zero.
	p, err := fen.Parse("3rk3/8/8/3r4/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)
	m := move.New(3, 35, piece.Rook) // d1xd5
	assert.Equal(t, RookValue-RookValue, See(p, m))
}
