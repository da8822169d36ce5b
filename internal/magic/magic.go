// Package magic builds the immutable attack tables the rest of the engine
// treats as opaque data: knight/king/pawn jump tables and the magic-bitboard
// lookup for bishops and rooks.
//
// The occupancy-mask generators, the ray-walking attack generators, and the
// magic multiplier/shift tables are grounded on
// _examples/treepeck-chego/init.go and chego.go: the multipliers and bit
// counts are reused verbatim (they are opaque constant data per spec.md §9
// and this module never regenerates them), the mask/attack generation code
// is rewritten from the teacher's loop shape.
package magic

import "github.com/corvidchess/rivalgo/bitboard"

const (
	notAFile  = bitboard.NotAFile
	notHFile  = bitboard.NotHFile
	notABFile = bitboard.Board(0xFCFCFCFCFCFCFCFC)
	notGHFile = bitboard.Board(0x3F3F3F3F3F3F3F3F)
	not1st    = bitboard.Not1stRank
	not8th    = bitboard.Not8thRank
)

var (
	PawnAttacks   [2][64]bitboard.Board
	KnightAttacks [64]bitboard.Board
	KingAttacks   [64]bitboard.Board

	bishopOccupancy [64]bitboard.Board
	rookOccupancy   [64]bitboard.Board

	bishopAttacks [64][512]bitboard.Board
	rookAttacks   [64][4096]bitboard.Board
)

func init() {
	for sq := 0; sq < 64; sq++ {
		PawnAttacks[0][sq] = pawnAttacksFrom(1<<uint(sq), 0)
		PawnAttacks[1][sq] = pawnAttacksFrom(1<<uint(sq), 1)
		KnightAttacks[sq] = knightAttacksFrom(1 << uint(sq))
		KingAttacks[sq] = kingAttacksFrom(1 << uint(sq))
		bishopOccupancy[sq] = bishopOccupancyFrom(1 << uint(sq))
		rookOccupancy[sq] = rookOccupancyFrom(1 << uint(sq))
	}
	for sq := 0; sq < 64; sq++ {
		bitCount := bishopBitCount[sq]
		for j := 0; j < 1<<uint(bitCount); j++ {
			occ := occupancyFromIndex(j, bitCount, bishopOccupancy[sq])
			key := uint64(occ) * bishopMagicNumbers[sq] >> (64 - uint(bitCount))
			bishopAttacks[sq][key] = bishopAttacksFrom(1<<uint(sq), occ)
		}
	}
	for sq := 0; sq < 64; sq++ {
		bitCount := rookBitCount[sq]
		for j := 0; j < 1<<uint(bitCount); j++ {
			occ := occupancyFromIndex(j, bitCount, rookOccupancy[sq])
			key := uint64(occ) * rookMagicNumbers[sq] >> (64 - uint(bitCount))
			rookAttacks[sq][key] = rookAttacksFrom(1<<uint(sq), occ)
		}
	}
}

// BishopAttacks returns the attack set of a bishop on sq given board occupancy.
func BishopAttacks(sq int, occupancy bitboard.Board) bitboard.Board {
	masked := occupancy & bishopOccupancy[sq]
	key := uint64(masked) * bishopMagicNumbers[sq] >> (64 - uint(bishopBitCount[sq]))
	return bishopAttacks[sq][key]
}

// RookAttacks returns the attack set of a rook on sq given board occupancy.
func RookAttacks(sq int, occupancy bitboard.Board) bitboard.Board {
	masked := occupancy & rookOccupancy[sq]
	key := uint64(masked) * rookMagicNumbers[sq] >> (64 - uint(rookBitCount[sq]))
	return rookAttacks[sq][key]
}

// QueenAttacks is the union of bishop and rook attacks from sq.
func QueenAttacks(sq int, occupancy bitboard.Board) bitboard.Board {
	return BishopAttacks(sq, occupancy) | RookAttacks(sq, occupancy)
}

func pawnAttacksFrom(pawn bitboard.Board, white int) bitboard.Board {
	if white == 0 {
		return (pawn & notAFile << 7) | (pawn & notHFile << 9)
	}
	return (pawn & notAFile >> 9) | (pawn & notHFile >> 7)
}

func knightAttacksFrom(n bitboard.Board) bitboard.Board {
	return (n & notAFile >> 17) |
		(n & notHFile >> 15) |
		(n & notABFile >> 10) |
		(n & notGHFile >> 6) |
		(n & notABFile << 6) |
		(n & notGHFile << 10) |
		(n & notAFile << 15) |
		(n & notHFile << 17)
}

func kingAttacksFrom(k bitboard.Board) bitboard.Board {
	return (k & notAFile >> 9) |
		(k >> 8) |
		(k & notHFile >> 7) |
		(k & notAFile >> 1) |
		(k & notHFile << 1) |
		(k & notAFile << 7) |
		(k << 8) |
		(k & notHFile << 9)
}

func bishopAttacksFrom(bishop, occupancy bitboard.Board) bitboard.Board {
	var attacks bitboard.Board
	for i := bishop & notAFile >> 9; i&notHFile != 0; i >>= 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notHFile >> 7; i&notAFile != 0; i >>= 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notAFile << 7; i&notHFile != 0; i <<= 7 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := bishop & notHFile << 9; i&notAFile != 0; i <<= 9 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

func rookAttacksFrom(rook, occupancy bitboard.Board) bitboard.Board {
	var attacks bitboard.Board
	for i := rook & notAFile >> 1; i&notHFile != 0; i >>= 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & notHFile << 1; i&notAFile != 0; i <<= 1 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & not1st >> 8; i&not8th != 0; i >>= 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	for i := rook & not8th << 8; i&not1st != 0; i <<= 8 {
		attacks |= i
		if i&occupancy != 0 {
			break
		}
	}
	return attacks
}

func bishopOccupancyFrom(bishop bitboard.Board) bitboard.Board {
	var occ bitboard.Board
	notANot1 := notAFile & not1st
	notHNot1 := notHFile & not1st
	notANot8 := notAFile & not8th
	notHNot8 := notHFile & not8th
	for i := bishop & notAFile >> 9; i&notANot1 != 0; i >>= 9 {
		occ |= i
	}
	for i := bishop & notHFile >> 7; i&notHNot1 != 0; i >>= 7 {
		occ |= i
	}
	for i := bishop & notAFile << 7; i&notANot8 != 0; i <<= 7 {
		occ |= i
	}
	for i := bishop & notHFile << 9; i&notHNot8 != 0; i <<= 9 {
		occ |= i
	}
	return occ
}

func rookOccupancyFrom(rook bitboard.Board) bitboard.Board {
	var occ bitboard.Board
	for i := rook & not1st >> 8; i&not1st != 0; i >>= 8 {
		occ |= i
	}
	for i := rook & notAFile >> 1; i&notAFile != 0; i >>= 1 {
		occ |= i
	}
	for i := rook & notHFile << 1; i&notHFile != 0; i <<= 1 {
		occ |= i
	}
	for i := rook & not8th << 8; i&not8th != 0; i <<= 8 {
		occ |= i
	}
	return occ
}

// occupancyFromIndex enumerates the index-th subset of the relevant
// occupancy bits, used to populate every occupancy/attack pairing at
// init time.
func occupancyFromIndex(index, relevantBitCount int, mask bitboard.Board) bitboard.Board {
	var occ bitboard.Board
	for i := 0; i < relevantBitCount; i++ {
		sq := mask.PopLSB()
		if index&(1<<uint(i)) != 0 {
			occ = occ.Set(sq)
		}
	}
	return occ
}
