package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/rivalgo/bitboard"
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/square"
)

func TestNewIsEmptyWhiteToMove(t *testing.T) {
	p := New()
	assert.Equal(t, piece.White, p.Mover)
	assert.Equal(t, square.None, p.EnPassant)
	assert.Equal(t, uint8(0), p.CastleFlags)
	assert.Equal(t, 1, p.MoveNumber)
	assert.Equal(t, bitboard.Board(0), p.Occupied())
}

func TestPutRemoveMaintainsOccupancyUnion(t *testing.T) {
	var side Pieces
	side.Put(piece.Knight, 10)
	assert.True(t, side.All.Has(10))
	assert.Equal(t, piece.Knight, side.KindAt(10))

	side.Remove(piece.Knight, 10)
	assert.False(t, side.All.Has(10))
	assert.Equal(t, piece.None, side.KindAt(10))
}

func TestPutKingUpdatesKingSquare(t *testing.T) {
	var side Pieces
	side.Put(piece.King, 4)
	assert.Equal(t, square.Square(4), side.KingSquare)
}

func TestPieceAtFindsEitherSide(t *testing.T) {
	p := New()
	p.Side[piece.White].Put(piece.Pawn, 12)
	p.Side[piece.Black].Put(piece.Rook, 52)

	colour, kind, ok := p.PieceAt(12)
	assert.True(t, ok)
	assert.Equal(t, piece.White, colour)
	assert.Equal(t, piece.Pawn, kind)

	colour, kind, ok = p.PieceAt(52)
	assert.True(t, ok)
	assert.Equal(t, piece.Black, colour)
	assert.Equal(t, piece.Rook, kind)

	_, _, ok = p.PieceAt(0)
	assert.False(t, ok)
}

func TestCloneIsIndependentCopy(t *testing.T) {
	p := New()
	p.Side[piece.White].Put(piece.Pawn, 12)

	cp := p.Clone()
	cp.Side[piece.White].Put(piece.Queen, 60)

	assert.Equal(t, piece.None, p.Side[piece.White].KindAt(60), "mutating the clone must not affect the original")
	assert.Equal(t, piece.Queen, cp.Side[piece.White].KindAt(60))
}

func TestCanCastle(t *testing.T) {
	p := New()
	assert.False(t, p.CanCastle(WhiteKingside))
	p.CastleFlags |= WhiteKingside
	assert.True(t, p.CanCastle(WhiteKingside))
	assert.False(t, p.CanCastle(WhiteQueenside))
}
