// Package bitboard implements the 64-bit set primitives the rest of the
// engine is built on: bit scanning, population count, and the file/rank
// mask helpers used by attack generation.
package bitboard

// Board is a set of squares, one bit per square.
type Board uint64

// Precalculated magic used to form indices for the bitScanLookup array.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// Lookup table of LSB indices for 64 uints.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// LSB returns the index of the least significant set bit.
// Returns -1 for an empty board.
func (b Board) LSB() int {
	if b == 0 {
		return -1
	}
	return bitScanLookup[uint64(b&-b)*bitscanMagic>>58]
}

// PopLSB removes and returns the index of the least significant set bit.
// Returns -1 for an empty board, leaving it unchanged.
func (b *Board) PopLSB() int {
	lsb := b.LSB()
	if lsb == -1 {
		return -1
	}
	*b &= *b - 1
	return lsb
}

// Count returns the number of set bits.
func (b Board) Count() int {
	var cnt int
	for n := uint64(b); n != 0; cnt++ {
		n &= n - 1
	}
	return cnt
}

// Has reports whether square sq is set.
func (b Board) Has(sq int) bool { return b&(1<<uint(sq)) != 0 }

// Set returns b with square sq set.
func (b Board) Set(sq int) Board { return b | 1<<uint(sq) }

// Clear returns b with square sq cleared.
func (b Board) Clear(sq int) Board { return b &^ (1 << uint(sq)) }

const (
	NotAFile   Board = 0xFEFEFEFEFEFEFEFE
	NotHFile   Board = 0x7F7F7F7F7F7F7F7F
	Not1stRank Board = 0xFFFFFFFFFFFFFF00
	Not8thRank Board = 0x00FFFFFFFFFFFFFF
	FileA      Board = 0x0101010101010101
	FileH      Board = 0x8080808080808080
	Rank1      Board = 0x00000000000000FF
	Rank8      Board = 0xFF00000000000000
	Rank4      Board = 0x00000000FF000000
	Rank5      Board = 0x000000FF00000000
	All        Board = 0xFFFFFFFFFFFFFFFF
)

// South shifts the board one rank towards rank 1.
func (b Board) South() Board { return b >> 8 }

// North shifts the board one rank towards rank 8.
func (b Board) North() Board { return b << 8 }

// East shifts the board one file towards the H-file, clearing wraps.
func (b Board) East() Board { return (b & NotHFile) << 1 }

// West shifts the board one file towards the A-file, clearing wraps.
func (b Board) West() Board { return (b & NotAFile) >> 1 }
