// Package search implements the iterative-deepening principal-variation
// search described in spec.md §4.4: negamax with alpha-beta, aspiration
// windows, transposition-table cutoffs, null-move pruning, late-move
// reduction, and quiescence.
//
// None of the four candidate teacher repositories implement a search of
// this shape (chego is move-generation-only), so this package is grounded
// directly on original_source/src/search.rs and quiesce.rs — the Rust
// implementation spec.md was distilled from — reshaped into idiomatic Go:
// explicit context.Context/deadline instead of a shared end_time field
// polled through a macro, an atomic stop flag instead of a plain bool, and
// the ordering/tt packages built earlier instead of inline hash-table code.
package search

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/movegen"
	"github.com/corvidchess/rivalgo/ordering"
	"github.com/corvidchess/rivalgo/tt"
)

// Score is the search's signed evaluation type (spec.md §3.8/§4.6).
type Score = int32

// Constants grounded on original_source/src/search.rs and engine_constants.rs.
const (
	MaxScore = 30000
	MateMargin = 1000
	MateStart = MaxScore - MateMargin
	Mate       = MaxScore

	AspirationRadius = 25
	NullMoveReduceDepth = 2
	NumKillerMoves      = 2

	LMRLegalMovesBeforeAttempt = 4
	LMRMinDepth                = 3
	LMRReduction               = 2

	ScoutMinimumDistanceFromLeaf = 2
	MaxDepth                     = 250
	MaxQuiesceDepth              = 100

	BetaPruneMarginPerDepth = 300
	BetaPruneMaxDepth       = 3

	IIDMinDepth    = 5
	IIDSearchDepth = 2
	IIDReduceDepth = 1

	nodesPerDeadlineCheck = 100_000
)

// State is the per-search mutable context of spec.md §3.8: everything that
// lives for the duration of one `go` command but is not per-node.
type State struct {
	TT       *tt.Table
	Ordering *ordering.State

	Nodes     uint64
	Deadline  time.Time
	stop      atomic.Bool
	ctx       context.Context

	RootDepth int
	PV        []move.Move
	PVScore   Score

	// UseSEE gates quiescence's capture filtering between static-exchange
	// evaluation and plain MVV/LVA-ordered delta pruning (spec.md §9 Open
	// Question 2, engopt.Config.UseSEE).
	UseSEE bool

	// History is the sequence of Zobrist locks from the game root through
	// the current search ply, used for threefold-repetition detection
	// (spec.md §3.8, §4.4.2).
	History []uint64

	list [MaxDepth + MaxQuiesceDepth + 2]movegen.List
}

// NewState returns a fresh per-search context sharing table with future
// searches (the TT itself persists across `go` commands; only the
// ordering/history/counters reset).
func NewState(ctx context.Context, table *tt.Table, gameHistory []uint64, deadline time.Time) *State {
	history := make([]uint64, len(gameHistory), len(gameHistory)+MaxDepth)
	copy(history, gameHistory)
	return &State{
		TT:       table,
		Ordering: ordering.NewState(),
		Deadline: deadline,
		ctx:      ctx,
		History:  history,
	}
}

// Stop requests the search to abandon its current iteration as soon as
// possible.
func (s *State) Stop() { s.stop.Store(true) }

// Stopped reports whether the search should abandon the current node.
func (s *State) Stopped() bool {
	if s.stop.Load() {
		return true
	}
	select {
	case <-s.ctx.Done():
		return true
	default:
		return false
	}
}

// tick increments the node counter and checks the deadline every
// nodesPerDeadlineCheck nodes, per spec.md §4.4.2's node preamble.
func (s *State) tick() {
	s.Nodes++
	if s.Nodes%nodesPerDeadlineCheck == 0 && !s.Deadline.IsZero() && time.Now().After(s.Deadline) {
		s.stop.Store(true)
	}
}

// isRepetition reports whether the current lock appears more than once
// within the last halfMoves plies of History (spec.md §4.4.2).
func (s *State) isRepetition(lock uint64, halfMoves int) bool {
	n := len(s.History)
	if n == 0 {
		return false
	}
	start := n - halfMoves
	if start < 0 {
		start = 0
	}
	count := 0
	for i := start; i < n; i++ {
		if s.History[i] == lock {
			count++
			if count > 1 {
				return true
			}
		}
	}
	return false
}

// mateIn returns the mate score for being mated at the given ply from root,
// per spec.md §4.4.4.
func mateIn(ply int) Score { return Score(-(Mate - ply)) }

// adjustMateForStorage shifts a mate score found ply levels below the root
// back to "distance from this node" before writing it to the TT, undone by
// adjustMateFromStorage on read (spec.md §4.4.4).
func adjustMateForStorage(score Score, ply int) Score {
	if score >= MateStart {
		return score + Score(ply)
	}
	if score <= -MateStart {
		return score - Score(ply)
	}
	return score
}

func adjustMateFromStorage(score Score, ply int) Score {
	if score >= MateStart {
		return score - Score(ply)
	}
	if score <= -MateStart {
		return score + Score(ply)
	}
	return score
}
