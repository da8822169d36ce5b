// Package boardfmt renders a Position as a human-readable board diagram,
// used by the engine's "d" debug command and the perft CLI's --print flag.
package boardfmt

import (
	"strings"

	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/position"
	"github.com/corvidchess/rivalgo/square"
)

var pieceSymbols = [2][6]rune{
	piece.White: {'♙', '♘', '♗', '♖', '♕', '♔'},
	piece.Black: {'♟', '♞', '♝', '♜', '♛', '♚'},
}

// Format renders the full position: an 8x8 diagram followed by side to
// move, en passant target, castling rights, and the Zobrist lock.
func Format(p *position.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			symbol := rune('.')
			if colour, kind, ok := p.PieceAt(sq); ok {
				symbol = pieceSymbols[colour][kind]
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	b.WriteString("Side to move: ")
	b.WriteString(p.Mover.String())
	b.WriteString("\nEn passant: ")
	if p.EnPassant == square.None {
		b.WriteString("-")
	} else {
		b.WriteString(p.EnPassant.String())
	}
	b.WriteString("\nCastling rights: ")
	b.WriteString(castleString(p.CastleFlags))
	b.WriteString("\nZobrist: ")
	b.WriteString(zobristHex(p.ZobristLock))
	b.WriteByte('\n')

	return b.String()
}

func castleString(flags uint8) string {
	var b strings.Builder
	if flags&position.WhiteKingside != 0 {
		b.WriteByte('K')
	}
	if flags&position.WhiteQueenside != 0 {
		b.WriteByte('Q')
	}
	if flags&position.BlackKingside != 0 {
		b.WriteByte('k')
	}
	if flags&position.BlackQueenside != 0 {
		b.WriteByte('q')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"

func zobristHex(v uint64) string {
	var buf [16]byte
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(buf[:])
}
