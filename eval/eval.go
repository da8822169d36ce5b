// Package eval implements the static evaluation function described in
// spec.md §4.6: material, blended piece-square tables, pawn structure,
// knight outposts, rook terms, king safety, king threat, and a tempo bonus.
//
// Grounded on original_source/src/evaluate.rs term-for-term (the same eight
// components, computed from White's perspective and negated for Black), and
// on original_source/src/piece_square_tables.rs for the
// opening/endgame-material-based linear blend of the pawn/king/knight
// tables. Values were rewritten in this module's own square numbering (see
// DESIGN.md's "Square convention" entry) rather than transcribed bit-for-bit
// from the Rust source's tables.
package eval

import (
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/position"
)

// Score is signed and wide enough to hold MATE plus margin without overflow
// (spec.md §4.6).
type Score = int32

const (
	PawnValue   = 100
	KnightValue = 390
	BishopValue = 390
	RookValue   = 595
	QueenValue  = 1175

	tempoBonus = 10

	doubledPawnPenalty  = 12
	isolatedPawnPenalty = 10
	knightOutpostBonus  = 20
	rookSameFileBonus   = 8
	rookSeventhBonus    = 20
	kingThreatBonus     = 5

	openingPhaseMaterial = 2*KnightValue + 2*BishopValue + 2*RookValue + QueenValue
)

var passedPawnBonus = [8]Score{0, 20, 24, 30, 40, 55, 75, 0}

// Evaluate returns a centipawn score from the side-to-move's perspective.
func Evaluate(p *position.Position) Score {
	w, b := &p.Side[piece.White], &p.Side[piece.Black]

	if p.Occupied().Count() == 2 {
		return 0
	}

	score := materialScore(w, b)
	score += pstScore(w, b)
	score += pawnStructureScore(w, b)
	score += knightOutpostScore(w, b)
	score += rookScore(w, b)
	score += kingSafetyScore(p, w, b)
	score += kingThreatScore(w, b)

	if p.Mover == piece.Black {
		score = -score
	}
	score += tempoBonus
	return score
}

func pieceValue(k piece.Kind) Score {
	switch k {
	case piece.Pawn:
		return PawnValue
	case piece.Knight:
		return KnightValue
	case piece.Bishop:
		return BishopValue
	case piece.Rook:
		return RookValue
	case piece.Queen:
		return QueenValue
	default:
		return 0
	}
}

func materialScore(w, b *position.Pieces) Score {
	var s Score
	for k := piece.Pawn; k <= piece.Queen; k++ {
		s += Score(w.Board[k].Count()-b.Board[k].Count()) * pieceValue(k)
	}
	return s
}

func nonPawnMaterial(side *position.Pieces) Score {
	return Score(side.Board[piece.Knight].Count())*KnightValue +
		Score(side.Board[piece.Rook].Count())*RookValue +
		Score(side.Board[piece.Bishop].Count())*BishopValue +
		Score(side.Board[piece.Queen].Count())*QueenValue
}

func lerp(value, lo, hi, outLo, outHi Score) Score {
	if value <= lo {
		return outLo
	}
	if value >= hi {
		return outHi
	}
	return outLo + (outHi-outLo)*(value-lo)/(hi-lo)
}

func blendedTable(sq int, opening, endgame *[64]int, phaseMaterial Score) Score {
	o := Score(opening[sq])
	e := Score(endgame[sq])
	return lerp(phaseMaterial, 0, openingPhaseMaterial, e, o)
}

func pstScore(w, b *position.Pieces) Score {
	enemyOfWhite := nonPawnMaterial(b)
	enemyOfBlack := nonPawnMaterial(w)
	totalMaterial := nonPawnMaterial(w) + nonPawnMaterial(b)

	var s Score
	pawns := w.Board[piece.Pawn]
	for pawns != 0 {
		sq := pawns.PopLSB()
		s += blendedTable(sq, &pawnOpening, &pawnEndgame, enemyOfWhite)
	}
	pawns = b.Board[piece.Pawn]
	for pawns != 0 {
		sq := flipSquare(pawns.PopLSB())
		s -= blendedTable(sq, &pawnOpening, &pawnEndgame, enemyOfBlack)
	}

	knights := w.Board[piece.Knight]
	for knights != 0 {
		sq := knights.PopLSB()
		s += blendedTable(sq, &knightMidgame, &knightEndgame, totalMaterial)
	}
	knights = b.Board[piece.Knight]
	for knights != 0 {
		sq := flipSquare(knights.PopLSB())
		s -= blendedTable(sq, &knightMidgame, &knightEndgame, totalMaterial)
	}

	bishops := w.Board[piece.Bishop]
	for bishops != 0 {
		s += Score(bishop[bishops.PopLSB()])
	}
	bishops = b.Board[piece.Bishop]
	for bishops != 0 {
		s -= Score(bishop[flipSquare(bishops.PopLSB())])
	}

	rooks := w.Board[piece.Rook]
	for rooks != 0 {
		s += Score(rook[rooks.PopLSB()])
	}
	rooks = b.Board[piece.Rook]
	for rooks != 0 {
		s -= Score(rook[flipSquare(rooks.PopLSB())])
	}

	queens := w.Board[piece.Queen]
	for queens != 0 {
		s += Score(queen[queens.PopLSB()])
	}
	queens = b.Board[piece.Queen]
	for queens != 0 {
		s -= Score(queen[flipSquare(queens.PopLSB())])
	}

	s += blendedTable(int(w.KingSquare), &kingMidgame, &kingEndgame, enemyOfWhite)
	s -= blendedTable(flipSquare(int(b.KingSquare)), &kingMidgame, &kingEndgame, enemyOfBlack)

	return s
}
