package boardfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/rivalgo/fen"
	"github.com/corvidchess/rivalgo/zobrist"
)

func init() { zobrist.Init() }

func TestFormatStartposShowsBothBackRanks(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)

	out := Format(p)
	assert.Contains(t, out, "♔")
	assert.Contains(t, out, "♚")
	assert.Contains(t, out, "Side to move: white")
	assert.Contains(t, out, "Castling rights: KQkq")
	assert.Contains(t, out, "En passant: -")
}

func TestFormatReportsEnPassantTarget(t *testing.T) {
	p, err := fen.Parse("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	out := Format(p)
	assert.Contains(t, out, "En passant: d6")
}

func TestFormatNoCastlingRightsIsDash(t *testing.T) {
	p, err := fen.Parse("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	out := Format(p)
	assert.Contains(t, out, "Castling rights: -")
}

func TestZobristHexIsSixteenLowercaseDigits(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)

	out := Format(p)
	idx := strings.Index(out, "Zobrist: ")
	require.GreaterOrEqual(t, idx, 0)
	line := out[idx+len("Zobrist: "):]
	line = line[:strings.IndexByte(line, '\n')]
	assert.Len(t, line, 16)
}
