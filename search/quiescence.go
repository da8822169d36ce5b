package search

import (
	"github.com/corvidchess/rivalgo/eval"
	"github.com/corvidchess/rivalgo/makemove"
	"github.com/corvidchess/rivalgo/movegen"
	"github.com/corvidchess/rivalgo/position"
)

// deltaMargin bounds how much a capture's material gain needs to still be
// worth searching, grounded on original_source/src/quiesce.rs's delta-
// pruning margin (a queen's value plus slack for positional swings).
const deltaMargin = eval.QueenValue + 200

// Quiesce implements spec.md §4.4.3: a capture-only search that resolves
// tactical sequences before handing a leaf score back to Negamax.
func Quiesce(p *position.Position, depth, ply int, alpha, beta Score, s *State) Score {
	s.tick()
	if s.Stopped() {
		return alpha
	}

	inCheck := movegen.IsCheck(p, p.Mover)

	standPat := Score(eval.Evaluate(p))
	if !inCheck {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	if depth <= 0 {
		return alpha
	}

	list := &s.list[ply]
	list.N = 0
	if inCheck {
		// In check, evasions must be considered, not just captures
		// (spec.md §4.4.3: "when in check, generate all moves").
		movegen.Generate(p, list)
	} else {
		movegen.GenerateCaptures(p, list)
	}
	s.Ordering.Sort(p, list.Moves[:list.N], ply)

	legalMoves := 0
	for i := 0; i < list.N; i++ {
		m := list.Moves[i]

		if !inCheck && !m.IsPromotion() {
			if s.UseSEE {
				if eval.See(p, m) < 0 {
					continue
				}
			} else if standPat+Score(eval.CapturedValue(p, m))+deltaMargin < alpha {
				continue
			}
		}

		undo := makemove.Make(p, m)
		if movegen.IsCheck(p, p.Mover.Opponent()) {
			makemove.Unmake(p, m, undo)
			continue
		}
		legalMoves++

		score := -Quiesce(p, depth-1, ply+1, -beta, -alpha, s)
		makemove.Unmake(p, m, undo)

		if s.Stopped() {
			return alpha
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	if inCheck && legalMoves == 0 {
		return mateIn(ply)
	}
	return alpha
}
