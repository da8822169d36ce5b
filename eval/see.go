// see.go implements static exchange evaluation, grounded on
// chessvariantengine-lib/search.go's see/seeScore gain-array swap
// algorithm (itself citing the chess programming wiki's "SEE - The Swap
// Algorithm"), rewritten against this module's bitboard/magic/position
// types in place of that file's Bitboard/Figure/Position types.
//
// Gated behind the search package's UseSEE option (spec.md §9 Open
// Question 2): when off, quiescence falls back to plain MVV/LVA-ordered
// captures with delta pruning only, which spec.md also permits.
package eval

import (
	"github.com/corvidchess/rivalgo/bitboard"
	"github.com/corvidchess/rivalgo/internal/magic"
	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/position"
	"github.com/corvidchess/rivalgo/square"
)

// CapturedValue returns the material value of the piece a move captures,
// including en-passant (whose captured pawn does not sit on m.To(), so
// KindAt(m.To()) reads piece.None there).
func CapturedValue(p *position.Position, m move.Move) int {
	opp := &p.Side[p.Mover.Opponent()]
	if k := opp.KindAt(m.To()); k != piece.None {
		return int(pieceValue(k))
	}
	if m.Kind() == piece.Pawn && p.EnPassant != square.None && m.To() == int(p.EnPassant) {
		return PawnValue // en-passant capture
	}
	return 0
}

// See returns the static exchange evaluation of a capture on m.To(): the
// net material gain for the side to move after all profitable recaptures
// on that square are played out, assuming both sides always recapture
// with their least valuable attacker.
func See(p *position.Position, m move.Move) int {
	to := m.To()

	var gain [32]int
	depth := 0
	gain[0] = CapturedValue(p, m)

	occ := p.Occupied().Clear(m.From())
	attackerValue := int(pieceValue(m.Kind()))
	side := p.Mover.Opponent()

	for {
		depth++
		gain[depth] = attackerValue - gain[depth-1]
		if maxInt(-gain[depth-1], gain[depth]) < 0 {
			break
		}

		sq, kind, ok := leastValuableAttacker(p, occ, to, side)
		if !ok {
			break
		}
		occ = occ.Clear(sq)
		attackerValue = int(pieceValue(kind))
		side = side.Opponent()
	}

	for d := depth; d > 1; d-- {
		gain[d-2] = -maxInt(-gain[d-2], gain[d-1])
	}
	return gain[0]
}

func leastValuableAttacker(p *position.Position, occ bitboard.Board, to int, side piece.Colour) (int, piece.Kind, bool) {
	pieces := &p.Side[side]
	for k := piece.Pawn; k <= piece.King; k++ {
		var attackers bitboard.Board
		switch k {
		case piece.Pawn:
			attackers = magic.PawnAttacks[side.Opponent()][to] & pieces.Board[piece.Pawn] & occ
		case piece.Knight:
			attackers = magic.KnightAttacks[to] & pieces.Board[piece.Knight] & occ
		case piece.Bishop:
			attackers = magic.BishopAttacks(to, occ) & pieces.Board[piece.Bishop] & occ
		case piece.Rook:
			attackers = magic.RookAttacks(to, occ) & pieces.Board[piece.Rook] & occ
		case piece.Queen:
			attackers = magic.QueenAttacks(to, occ) & pieces.Board[piece.Queen] & occ
		case piece.King:
			attackers = magic.KingAttacks[to] & pieces.Board[piece.King] & occ
		}
		if attackers != 0 {
			return attackers.LSB(), k, true
		}
	}
	return 0, piece.None, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
