// Package ordering scores pseudo-legal moves so the search tries the ones
// most likely to cut off first, per spec.md §4.5: MVV/LVA captures, queen
// promotions, killer/mate-killer moves, pawn pushes toward promotion, and a
// history heuristic for everything else.
//
// Grounded directly on original_source/src/move_scores.rs's `score_move`/
// `attacker_bonus`/`attacker_value`/`history_score` (the exact bonus bands
// and the MVV/LVA-plus-bonus-if-favourable-trade formula), reshaped from its
// free functions taking a raw packed `Move` into methods on this module's
// own move.Move/position.Position/State types; the "clamp history ≥ 0 and
// linearly rescale against the highest-observed value" technique is kept
// unchanged, generalized from its hand-rolled `linear_scale` into the
// scaleHistory helper below.
package ordering

import (
	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/position"
)

// Bonus bands, grounded on original_source/src/move_scores.rs's constants
// (concretized in SPEC_FULL.md §4).
const (
	GoodCaptureStart  = 3000
	MateKillerScore   = 1000
	CurrentPlyKiller1 = 750
	CurrentPlyKiller2 = 400
	HistoryTop        = 500
	DistantKiller1    = 300
	DistantKiller2    = 200
	GoodCaptureBonus  = 300
	PawnPush7th       = 250
	PawnPush2Away     = 50

	underPromoRook   = 3
	underPromoBishop = 2
	underPromoKnight = 1
)

func attackerBonus(k piece.Kind) int {
	switch k {
	case piece.Pawn:
		return 300
	case piece.Knight:
		return 250
	case piece.Bishop:
		return 200
	case piece.Rook:
		return 150
	case piece.Queen:
		return 100
	case piece.King:
		return 50
	default:
		return 0
	}
}

func attackerValue(k piece.Kind) int {
	if k == piece.King {
		return 10000
	}
	return k.Value()
}

const maxPly = 250
const numKillers = 2

// State holds the per-search move-ordering memory: killer moves and the
// mate killer per ply, and the history-heuristic table, per spec.md §3.8.
type State struct {
	Killers        [maxPly][numKillers]move.Move
	MateKiller     [maxPly]move.Move
	History        [2][64][64]int
	HighestHistory int
}

// NewState returns a zeroed ordering state for a fresh search.
func NewState() *State { return &State{} }

// RecordCutoff updates killers, mate killer, and history after a quiet move
// m causes a β-cutoff at ply, with depth remaining at the cutting node
// (spec.md §4.5: "History bonus = depth²").
func (s *State) RecordCutoff(p *position.Position, m move.Move, ply, depth int, isMate bool) {
	if isMate {
		s.MateKiller[ply] = m
	}
	if s.Killers[ply][0] != m {
		s.Killers[ply][1] = s.Killers[ply][0]
		s.Killers[ply][0] = m
	}

	bonus := depth * depth
	h := &s.History[p.Mover][m.From()][m.To()]
	*h += bonus
	if *h < 0 {
		*h = 0
	}
	if *h > s.HighestHistory {
		s.HighestHistory = *h
	}
}

// Penalize applies the history malus (bonus = -depth^2) to a quiet move that
// was tried but did not cause a cutoff, per spec.md §4.5.
func (s *State) Penalize(p *position.Position, m move.Move, depth int) {
	h := &s.History[p.Mover][m.From()][m.To()]
	*h -= depth * depth
	if *h < 0 {
		*h = 0
	}
}

func scaleHistory(value, highest int) int {
	if highest <= 0 {
		return 0
	}
	scaled := value * HistoryTop / highest
	if scaled > HistoryTop {
		return HistoryTop
	}
	return scaled
}

// Score computes the move-ordering score for m, to be sorted descending
// before the move loop (spec.md §4.5).
func (s *State) Score(p *position.Position, m move.Move, ply int) int {
	opp := &p.Side[p.Mover.Opponent()]
	to := m.To()

	var score int
	switch {
	case opp.All.Has(to):
		captured := opp.KindAt(to)
		pv := captured.Value()
		score = GoodCaptureStart + pv + attackerBonus(m.Kind())
		if pv > attackerValue(m.Kind()) {
			score += GoodCaptureBonus
		}
	case m.IsPromotion():
		switch m.Promo() {
		case move.PromoRook:
			score = underPromoRook
		case move.PromoBishop:
			score = underPromoBishop
		case move.PromoKnight:
			score = underPromoKnight
		default:
			score = GoodCaptureStart + piece.Queen.Value()
		}
	case p.EnPassant >= 0 && to == int(p.EnPassant) && m.Kind() == piece.Pawn:
		score = GoodCaptureStart + piece.Pawn.Value() + attackerBonus(piece.Pawn)
	case m == s.MateKiller[ply]:
		score = MateKillerScore
	case m == s.Killers[ply][0]:
		score = CurrentPlyKiller1
	case m == s.Killers[ply][1]:
		score = CurrentPlyKiller2
	case ply > 2 && m == s.Killers[ply-2][0]:
		score = DistantKiller1
	case ply > 2 && m == s.Killers[ply-2][1]:
		score = DistantKiller2
	default:
		score = 0
	}

	if m.Kind() == piece.Pawn {
		score += pawnPushBonus(p, m)
	}

	score += scaleHistory(s.History[p.Mover][m.From()][m.To()], s.HighestHistory)
	return score
}

func pawnPushBonus(p *position.Position, m move.Move) int {
	to := m.To()
	if to >= 48 || to <= 15 {
		return PawnPush7th
	}
	if p.Mover == piece.White {
		if to >= 40 && to <= 47 && !isPassedBlock(p, piece.Black, to) {
			return PawnPush2Away
		}
		return 0
	}
	if to >= 16 && to <= 23 && !isPassedBlock(p, piece.White, to) {
		return PawnPush2Away
	}
	return 0
}

// isPassedBlock reports whether opponent pawns occupy the file-triple ahead
// of to, the same "would this push create/keep a passed pawn" gate the
// grounding source applies via its WHITE_PASSED_PAWN_MASK/BLACK_PASSED_PAWN_MASK
// tables, here computed directly from file/rank arithmetic.
func isPassedBlock(p *position.Position, opponent piece.Colour, to int) bool {
	file := to % 8
	rank := to / 8
	pawns := p.Side[opponent].Board[piece.Pawn]
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		for r := 0; r < 8; r++ {
			if opponent == piece.Black && r <= rank {
				continue
			}
			if opponent == piece.White && r >= rank {
				continue
			}
			if pawns.Has(r*8 + f) {
				return true
			}
		}
	}
	return false
}

// Sort orders moves in l.Moves[:l.N] by descending Score, using a simple
// insertion sort: move lists are short (≤ MaxMoves) and mostly need only the
// first few entries ordered well, matching the teacher pack's preference for
// selection-sort-style ordering over a generic sort.Slice allocation.
func (s *State) Sort(p *position.Position, moves []move.Move, ply int) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		scores[i] = s.Score(p, m, ply)
	}
	for i := 1; i < len(moves); i++ {
		mv, sc := moves[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] < sc {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = mv
		scores[j+1] = sc
	}
}
