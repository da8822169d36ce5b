package search

import (
	"sort"

	"github.com/corvidchess/rivalgo/makemove"
	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/movegen"
	"github.com/corvidchess/rivalgo/position"
)

// Result is the outcome of one completed (or aborted) iteration.
type Result struct {
	BestMove move.Move
	Score    Score
	Depth    int
	Nodes    uint64
}

type scoredMove struct {
	m     move.Move
	score Score
}

// IterativeDeepening implements spec.md §4.4.1: repeated full searches at
// increasing depth, aspiration-windowed after the first, re-sorting the
// root move list by the previous iteration's scores between iterations.
func IterativeDeepening(p *position.Position, maxDepth int, s *State, report func(Result)) Result {
	root := &movegen.List{}
	movegen.Generate(p, root)

	moves := make([]scoredMove, 0, root.N)
	for i := 0; i < root.N; i++ {
		moves = append(moves, scoredMove{m: root.Moves[i]})
	}

	var best Result
	if m, ok := firstLegalMove(p, moves); ok {
		// Falls back to the first legal root move if the search is
		// stopped before depth 1 completes; overwritten by the first
		// completed iteration below in the normal case.
		best.BestMove = m
	}
	alpha, beta := Score(-MaxScore), Score(MaxScore)
	reSearch := false

	for depth := 1; depth <= maxDepth && depth <= MaxDepth; depth++ {
		if s.Stopped() {
			break
		}
		s.RootDepth = depth

		if depth > 1 && !reSearch {
			alpha = best.Score - AspirationRadius
			beta = best.Score + AspirationRadius
		}
		reSearch = false
		windowAlpha, windowBeta := alpha, beta

		iterBest := scoredMove{score: Score(-MaxScore)}
		legalMoves := 0

		for i := range moves {
			m := moves[i].m
			undo := makemove.Make(p, m)
			if movegen.IsCheck(p, p.Mover.Opponent()) {
				makemove.Unmake(p, m, undo)
				continue
			}
			legalMoves++
			s.History = append(s.History, p.ZobristLock)

			var score Score
			if legalMoves == 1 {
				score = -Negamax(p, depth-1, 1, -beta, -alpha, s)
			} else {
				score = -Negamax(p, depth-1, 1, -alpha-1, -alpha, s)
				if score > alpha && score < beta {
					score = -Negamax(p, depth-1, 1, -beta, -alpha, s)
				}
			}

			s.History = s.History[:len(s.History)-1]
			makemove.Unmake(p, m, undo)
			moves[i].score = score

			if s.Stopped() {
				break
			}
			if score > iterBest.score {
				iterBest = scoredMove{m: m, score: score}
			}
			if score > alpha {
				alpha = score
			}
		}

		if legalMoves == 0 {
			break
		}
		if s.Stopped() && iterBest.m == 0 {
			break
		}

		// Aspiration re-search on fail-low/fail-high (spec.md §4.4.1 step 3).
		if !s.Stopped() && depth > 1 {
			if iterBest.score <= windowAlpha && windowAlpha > -MaxScore {
				alpha, beta = -MaxScore, windowBeta
				reSearch = true
				depth--
				continue
			}
			if iterBest.score >= windowBeta && windowBeta < MaxScore {
				alpha, beta = windowAlpha, MaxScore
				reSearch = true
				depth--
				continue
			}
		}

		best = Result{BestMove: iterBest.m, Score: iterBest.score, Depth: depth, Nodes: s.Nodes}
		if report != nil {
			report(best)
		}

		sortMovesByScore(moves)

		if iterBest.score >= MateStart || iterBest.score <= -MateStart {
			break
		}
		if s.Stopped() {
			break
		}
	}

	return best
}

func sortMovesByScore(moves []scoredMove) {
	sort.SliceStable(moves, func(i, j int) bool { return moves[i].score > moves[j].score })
}

// firstLegalMove returns the first move in moves that does not leave the
// mover's own king in check, applying and unmaking each candidate in turn.
func firstLegalMove(p *position.Position, moves []scoredMove) (move.Move, bool) {
	for _, sm := range moves {
		undo := makemove.Make(p, sm.m)
		legal := !movegen.IsCheck(p, p.Mover.Opponent())
		makemove.Unmake(p, sm.m, undo)
		if legal {
			return sm.m, true
		}
	}
	return 0, false
}
