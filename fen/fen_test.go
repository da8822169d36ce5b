package fen

import (
	"testing"

	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/square"
	"github.com/corvidchess/rivalgo/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zobrist.Init()
	m.Run()
}

func TestParseStartpos(t *testing.T) {
	p, err := Parse(Startpos)
	require.NoError(t, err)

	assert.Equal(t, piece.White, p.Mover)
	assert.Equal(t, square.None, p.EnPassant)
	assert.Equal(t, 0, p.HalfMoves)
	assert.Equal(t, 1, p.MoveNumber)
	assert.True(t, p.CanCastle(1<<0 | 1<<1 | 1<<2 | 1<<3))
	assert.Equal(t, piece.Pawn, p.Side[piece.White].KindAt(int(square.A2)))
	assert.Equal(t, piece.King, p.Side[piece.White].KindAt(int(square.E1)))
	assert.Equal(t, piece.King, p.Side[piece.Black].KindAt(int(square.E8)))
	assert.NotZero(t, p.ZobristLock)
	assert.Equal(t, zobrist.FromScratch(p), p.ZobristLock)
}

func TestParseSerializeRoundTrip(t *testing.T) {
	cases := []string{
		Startpos,
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/4p3/1PR5/8/4R3/8/4p3/8 b - - 3 17",
		"rnbq1bnr/ppppkppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR w - e6 0 4",
	}
	for _, fenStr := range cases {
		p, err := Parse(fenStr)
		require.NoError(t, err, fenStr)
		assert.Equal(t, fenStr, Serialize(p), "round trip for %q", fenStr)
	}
}

func TestParseEnPassantTarget(t *testing.T) {
	p, err := Parse("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	require.NoError(t, err)
	assert.Equal(t, square.E6, p.EnPassant)
}

func TestParseCastlingRightsSubset(t *testing.T) {
	p, err := Parse("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	require.NoError(t, err)
	assert.True(t, p.CanCastle(1<<0))  // WhiteKingside
	assert.False(t, p.CanCastle(1<<1)) // WhiteQueenside
	assert.False(t, p.CanCastle(1<<2)) // BlackKingside
	assert.True(t, p.CanCastle(1<<3))  // BlackQueenside
}

func TestParseNoCastlingRights(t *testing.T) {
	fenStr := "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	p, err := Parse(fenStr)
	require.NoError(t, err)
	assert.Zero(t, p.CastleFlags)
	assert.Equal(t, fenStr, Serialize(p))
}

func TestParseRejectsTooFewFields(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq")
	assert.Error(t, err)
}

func TestParseRejectsInvalidActiveColor(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsInvalidPieceChar(t *testing.T) {
	_, err := Parse("rnbqkbnz/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsInvalidSquare(t *testing.T) {
	_, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	assert.Error(t, err)
}

func TestParseDefaultsHalfAndFullMoveWhenOmitted(t *testing.T) {
	p, err := Parse("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.NoError(t, err)
	assert.Equal(t, 0, p.HalfMoves)
	assert.Equal(t, 1, p.MoveNumber)
}
