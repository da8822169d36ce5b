package search

import (
	"github.com/corvidchess/rivalgo/eval"
	"github.com/corvidchess/rivalgo/makemove"
	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/movegen"
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/position"
	"github.com/corvidchess/rivalgo/tt"
)

// Negamax is the core recursive search of spec.md §4.4.2.
func Negamax(p *position.Position, depth, ply int, alpha, beta Score, s *State) Score {
	s.tick()
	if s.Stopped() {
		return alpha
	}

	if ply > 0 && s.isRepetition(p.ZobristLock, p.HalfMoves) {
		return 0
	}

	if depth <= 0 {
		return Quiesce(p, MaxQuiesceDepth, ply, alpha, beta, s)
	}

	inCheck := movegen.IsCheck(p, p.Mover)

	var hashMove move.Move
	if entry, ok := s.TT.Probe(p.ZobristLock); ok {
		hashMove = entry.BestMove
		if int(entry.Depth) >= depth {
			stored := adjustMateFromStorage(Score(entry.Score), ply)
			switch entry.Bound {
			case tt.Exact:
				return stored
			case tt.LowerBound:
				if stored > alpha {
					alpha = stored
				}
			case tt.UpperBound:
				if stored < beta {
					beta = stored
				}
			}
			if alpha >= beta {
				return stored
			}
		}
	}

	staticEval := eval.Evaluate(p)

	// Reverse (beta) futility pruning — SPEC_FULL.md §4.7.
	if !inCheck && depth <= BetaPruneMaxDepth && ply > 0 {
		margin := Score(BetaPruneMarginPerDepth * depth)
		if staticEval-margin >= beta {
			return staticEval
		}
	}

	// Null-move pruning (spec.md §4.4.2).
	if !inCheck && ply > 0 && depth > NullMoveReduceDepth+1 &&
		hasNonPawnMaterial(p, p.Mover) && staticEval >= beta {
		undo := makeNullMove(p)
		score := -Negamax(p, depth-1-NullMoveReduceDepth, ply+1, -beta, -beta+1, s)
		unmakeNullMove(p, undo)
		if s.Stopped() {
			return alpha
		}
		if score >= beta {
			return beta
		}
	}

	// Internal iterative deepening — SPEC_FULL.md §4.8.
	if hashMove == 0 && depth >= IIDMinDepth {
		Negamax(p, min(depth-IIDReduceDepth, IIDSearchDepth), ply, alpha, beta, s)
		if entry, ok := s.TT.Probe(p.ZobristLock); ok {
			hashMove = entry.BestMove
		}
		if s.Stopped() {
			return alpha
		}
	}

	list := &s.list[ply]
	list.N = 0
	movegen.Generate(p, list)
	s.Ordering.Sort(p, list.Moves[:list.N], ply)
	moveToFront(list, hashMove)

	origAlpha := alpha
	var bestMove move.Move
	legalMoves := 0

	for i := 0; i < list.N; i++ {
		m := list.Moves[i]
		isQuiet := !isCapture(p, m) && !m.IsPromotion()
		undo := makemove.Make(p, m)
		if movegen.IsCheck(p, p.Mover.Opponent()) {
			makemove.Unmake(p, m, undo)
			continue
		}
		legalMoves++
		s.History = append(s.History, p.ZobristLock)

		var score Score
		givesCheck := movegen.IsCheck(p, p.Mover)

		if legalMoves == 1 {
			score = -Negamax(p, depth-1, ply+1, -beta, -alpha, s)
		} else {
			reduction := 0
			if isQuiet && !inCheck && !givesCheck &&
				legalMoves > LMRLegalMovesBeforeAttempt && depth >= LMRMinDepth {
				reduction = LMRReduction
			}
			score = -Negamax(p, depth-1-reduction, ply+1, -alpha-1, -alpha, s)
			if score > alpha && reduction > 0 {
				score = -Negamax(p, depth-1, ply+1, -alpha-1, -alpha, s)
			}
			if score > alpha && score < beta {
				score = -Negamax(p, depth-1, ply+1, -beta, -alpha, s)
			}
		}

		s.History = s.History[:len(s.History)-1]
		makemove.Unmake(p, m, undo)

		if s.Stopped() {
			return alpha
		}

		if score >= beta {
			if isQuiet {
				isMate := score >= MateStart
				s.Ordering.RecordCutoff(p, m, ply, depth, isMate)
			} else {
				penalizeOthers(s, p, list, i, depth)
			}
			s.TT.Store(p.ZobristLock, int8(depth), tt.LowerBound,
				int32(adjustMateForStorage(beta, ply)), m)
			return beta
		}
		if score > alpha {
			alpha = score
			bestMove = m
		} else if isQuiet {
			s.Ordering.Penalize(p, m, depth)
		}
	}

	if legalMoves == 0 {
		if inCheck {
			return mateIn(ply)
		}
		return 0
	}

	bound := tt.UpperBound
	if alpha > origAlpha {
		bound = tt.Exact
	}
	s.TT.Store(p.ZobristLock, int8(depth), bound, int32(adjustMateForStorage(alpha, ply)), bestMove)
	return alpha
}

func moveToFront(list *movegen.List, m move.Move) {
	if m == 0 {
		return
	}
	for i := 0; i < list.N; i++ {
		if list.Moves[i] == m {
			for j := i; j > 0; j-- {
				list.Moves[j] = list.Moves[j-1]
			}
			list.Moves[0] = m
			return
		}
	}
}

func isCapture(p *position.Position, m move.Move) bool {
	opp := &p.Side[p.Mover.Opponent()]
	return opp.All.Has(m.To()) || (m.Kind() == piece.Pawn && p.EnPassant >= 0 && m.To() == int(p.EnPassant))
}

func hasNonPawnMaterial(p *position.Position, side piece.Colour) bool {
	s := &p.Side[side]
	return s.Board[piece.Knight]|s.Board[piece.Bishop]|s.Board[piece.Rook]|s.Board[piece.Queen] != 0
}

// penalizeOthers applies the history malus to quiet moves tried before the
// one that cut off, per spec.md §4.5's "history malus for quiet moves that
// did not cut off" rule; called when the cutting move was itself a capture.
func penalizeOthers(s *State, p *position.Position, list *movegen.List, cutIndex, depth int) {
	for i := 0; i < cutIndex; i++ {
		m := list.Moves[i]
		if !isCapture(p, m) && !m.IsPromotion() {
			s.Ordering.Penalize(p, m, depth)
		}
	}
}
