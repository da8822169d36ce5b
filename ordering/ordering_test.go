package ordering

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

func TestCaptureScoresAboveQuietMove(t *testing.T) {
	p, err := fen.Parse("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	s := NewState()
	capture := move.New(int(squareOf("e4")), int(squareOf("d5")), piece.Pawn)
	quiet := move.New(int(squareOf("e1")), int(squareOf("d1")), piece.King)

	assert.Greater(t, s.Score(p, capture, 0), s.Score(p, quiet, 0))
}

func TestRecordCutoffPromotesKillerAboveQuiet(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)

	s := NewState()
	killer := move.New(int(squareOf("g1")), int(squareOf("f3")), piece.Knight)
	other := move.New(int(squareOf("b1")), int(squareOf("c3")), piece.Knight)

	before := s.Score(p, killer, 3)
	s.RecordCutoff(p, killer, 3, 4, false)
	after := s.Score(p, killer, 3)

	assert.Greater(t, after, before)
	assert.Greater(t, after, s.Score(p, other, 3))
}

func TestRecordCutoffKeepsTwoMostRecentKillers(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)
	s := NewState()

	m1 := move.New(int(squareOf("g1")), int(squareOf("f3")), piece.Knight)
	m2 := move.New(int(squareOf("b1")), int(squareOf("c3")), piece.Knight)
	m3 := move.New(int(squareOf("g1")), int(squareOf("h3")), piece.Knight)

	s.RecordCutoff(p, m1, 0, 4, false)
	s.RecordCutoff(p, m2, 0, 4, false)
	s.RecordCutoff(p, m3, 0, 4, false)

	assert.Equal(t, m3, s.Killers[0][0])
	assert.Equal(t, m2, s.Killers[0][1], "the oldest killer (m1) must be evicted when a third arrives")
}

func TestPenalizeNeverDrivesHistoryNegative(t *testing.T) {
	p, err := fen.Parse(fen.Startpos)
	require.NoError(t, err)
	s := NewState()

	m := move.New(int(squareOf("e2")), int(squareOf("e4")), piece.Pawn)
	s.Penalize(p, m, 10)
	assert.GreaterOrEqual(t, s.History[p.Mover][m.From()][m.To()], 0)
}

func TestSortOrdersDescendingByScore(t *testing.T) {
	p, err := fen.Parse("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	s := NewState()
	moves := []move.Move{
		move.New(int(squareOf("e1")), int(squareOf("d1")), piece.King),
		move.New(int(squareOf("e4")), int(squareOf("d5")), piece.Pawn),
	}
	s.Sort(p, moves, 0)

	assert.Equal(t, piece.Pawn, moves[0].Kind(), "the capture must sort ahead of the quiet king move")
}

// squareOf is a tiny algebraic-to-index helper kept local to this test file
// so it doesn't need to depend on the square package's full constant list.
func squareOf(name string) int {
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	return rank*8 + file
}
