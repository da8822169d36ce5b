package eval

import (
	"github.com/corvidchess/rivalgo/bitboard"
	"github.com/corvidchess/rivalgo/internal/magic"
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/position"
)

// fileMask collapses a bitboard onto its occupied files (bit f set iff any
// square on file f is occupied), the Go equivalent of
// original_source/src/evaluate.rs's "south_fill(bb) & RANK_1_BITS" trick.
func fileMask(b bitboard.Board) uint8 {
	var m uint8
	for b != 0 {
		sq := b.PopLSB()
		m |= 1 << uint(sq%8)
	}
	return m
}

func popcountFiles(m uint8) int {
	n := 0
	for m != 0 {
		n += int(m & 1)
		m >>= 1
	}
	return n
}

func isolatedFileCount(files uint8) int {
	notIsolated := (files&(files<<1) | files&(files>>1)) & 0xFF
	return popcountFiles(files) - popcountFiles(notIsolated)
}

func pawnStructureScore(w, b *position.Pieces) (score Score) {
	wFiles := fileMask(w.Board[piece.Pawn])
	bFiles := fileMask(b.Board[piece.Pawn])

	doubled := (w.Board[piece.Pawn].Count() - popcountFiles(wFiles)) -
		(b.Board[piece.Pawn].Count() - popcountFiles(bFiles))
	score -= Score(doubled) * doubledPawnPenalty

	isolated := isolatedFileCount(wFiles) - isolatedFileCount(bFiles)
	score -= Score(isolated) * isolatedPawnPenalty

	score += passedPawnScore(w, b)
	return score
}

// passedPawnScore computes the passed/guarded-passed-pawn bonus, grounded on
// original_source/src/evaluate.rs's passed_pawn_score: a pawn is passed when
// no enemy pawn occupies its own file or an adjacent file on a rank ahead of
// it, and guarded when a friendly pawn attacks its square.
func passedPawnScore(w, b *position.Pieces) Score {
	var score Score

	wPawns, bPawns := w.Board[piece.Pawn], b.Board[piece.Pawn]

	bb := wPawns
	for bb != 0 {
		sq := bb.PopLSB()
		if isPassed(sq, bPawns, piece.White) {
			rank := sq / 8
			score += passedPawnBonus[rank]
			if isGuarded(sq, wPawns, piece.White) {
				score += 15
			}
		}
	}
	bb = bPawns
	for bb != 0 {
		sq := bb.PopLSB()
		if isPassed(sq, wPawns, piece.Black) {
			rank := 7 - sq/8
			score -= passedPawnBonus[rank]
			if isGuarded(sq, bPawns, piece.Black) {
				score -= 15
			}
		}
	}
	return score
}

func isPassed(sq int, enemyPawns bitboard.Board, colour piece.Colour) bool {
	file, rank := sq%8, sq/8
	for f := file - 1; f <= file+1; f++ {
		if f < 0 || f > 7 {
			continue
		}
		for r := 0; r < 8; r++ {
			if colour == piece.White && r <= rank {
				continue
			}
			if colour == piece.Black && r >= rank {
				continue
			}
			if enemyPawns.Has(r*8 + f) {
				return false
			}
		}
	}
	return true
}

func isGuarded(sq int, friendlyPawns bitboard.Board, colour piece.Colour) bool {
	opp := colour.Opponent()
	return magic.PawnAttacks[opp][sq]&friendlyPawns != 0
}

// knightOutpostScore rewards knights on squares no enemy pawn can ever
// attack and that a friendly pawn currently defends (spec.md §4.6 term 4).
func knightOutpostScore(w, b *position.Pieces) Score {
	var score Score
	bb := w.Board[piece.Knight]
	for bb != 0 {
		sq := bb.PopLSB()
		if !canEverBeAttackedByPawn(sq, b.Board[piece.Pawn], piece.White) &&
			isGuarded(sq, w.Board[piece.Pawn], piece.White) {
			score += knightOutpostBonus
		}
	}
	bb = b.Board[piece.Knight]
	for bb != 0 {
		sq := bb.PopLSB()
		if !canEverBeAttackedByPawn(sq, w.Board[piece.Pawn], piece.Black) &&
			isGuarded(sq, b.Board[piece.Pawn], piece.Black) {
			score -= knightOutpostBonus
		}
	}
	return score
}

// canEverBeAttackedByPawn reports whether any enemy pawn, advancing
// straight ahead, could ever reach a square attacking sq.
func canEverBeAttackedByPawn(sq int, enemyPawns bitboard.Board, colour piece.Colour) bool {
	file, rank := sq%8, sq/8
	for f := file - 1; f <= file+1; f += 2 {
		if f < 0 || f > 7 {
			continue
		}
		for r := 0; r < 8; r++ {
			if colour == piece.White && r <= rank {
				continue
			}
			if colour == piece.Black && r >= rank {
				continue
			}
			if enemyPawns.Has(r*8 + f) {
				return true
			}
		}
	}
	return false
}

func rookScore(w, b *position.Pieces) Score {
	var score Score

	wFiles := fileMask(w.Board[piece.Rook])
	bFiles := fileMask(b.Board[piece.Rook])
	sameFile := (w.Board[piece.Rook].Count() - popcountFiles(wFiles)) -
		(b.Board[piece.Rook].Count() - popcountFiles(bFiles))
	score += Score(sameFile) * rookSameFileBonus

	const rank2 bitboard.Board = 0x000000000000FF00
	const rank7 bitboard.Board = 0x00FF000000000000

	score += Score((w.Board[piece.Rook] & rank7).Count()) * rookSeventhBonus
	score -= Score((b.Board[piece.Rook] & rank2).Count()) * rookSeventhBonus

	return score
}

// kingSafetyScore applies a pawn-shield bonus only while more than ten
// pieces remain on the board (spec.md §4.6 term 6: "when piece count > 10").
func kingSafetyScore(p *position.Position, w, b *position.Pieces) Score {
	if p.Occupied().Count() <= 10 {
		return 0
	}
	return shieldScore(w, piece.White) - shieldScore(b, piece.Black)
}

func shieldScore(side *position.Pieces, colour piece.Colour) Score {
	kingFile := int(side.KingSquare) % 8
	if kingFile > 2 && kingFile < 5 {
		return 0 // king still central, no corner shield to score
	}
	files := fileMask(side.Board[piece.Pawn])
	var corner uint8
	if kingFile <= 2 {
		corner = files & 0b0000_0111
	} else {
		corner = files & 0b1110_0000
	}
	return Score(popcountFiles(corner)) * 5
}

// kingThreatScore rewards/penalizes pieces attacking squares in the
// opposing king's danger zone: the king square, its eight neighbours, and
// one further rank in the attacker's direction (spec.md §4.6 term 7),
// grounded on original_source/src/evaluate.rs's king_threat_score.
func kingThreatScore(w, b *position.Pieces) Score {
	occ := w.All | b.All
	whiteZone := dangerZone(int(w.KingSquare), piece.White)
	blackZone := dangerZone(int(b.KingSquare), piece.Black)

	var score Score
	score -= attackPressure(b.Board[piece.Knight], whiteZone, occ, piece.Knight)
	score += attackPressure(w.Board[piece.Knight], blackZone, occ, piece.Knight)
	score -= attackPressure(b.Board[piece.Bishop]|b.Board[piece.Queen], whiteZone, occ, piece.Bishop)
	score += attackPressure(w.Board[piece.Bishop]|w.Board[piece.Queen], blackZone, occ, piece.Bishop)
	score -= attackPressure(b.Board[piece.Queen], whiteZone, occ, piece.Rook)
	score += attackPressure(w.Board[piece.Queen], blackZone, occ, piece.Rook)
	return score
}

func dangerZone(king int, colour piece.Colour) bitboard.Board {
	zone := bitboard.Board(1)<<uint(king) | magic.KingAttacks[king]
	if colour == piece.White {
		zone |= magic.KingAttacks[king].North()
	} else {
		zone |= magic.KingAttacks[king].South()
	}
	return zone
}

func attackPressure(attackers bitboard.Board, zone, occ bitboard.Board, kind piece.Kind) Score {
	var score Score
	for attackers != 0 {
		sq := attackers.PopLSB()
		var attacks bitboard.Board
		switch kind {
		case piece.Knight:
			attacks = magic.KnightAttacks[sq]
		case piece.Bishop:
			attacks = magic.BishopAttacks(sq, occ)
		case piece.Rook:
			attacks = magic.RookAttacks(sq, occ)
		}
		score += Score((attacks & zone).Count()) * kingThreatBonus
	}
	return score
}
