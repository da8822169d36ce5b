// Package fen implements Forsyth-Edwards Notation parsing and serialization
// for this module's position.Position, per spec.md §6.3.
//
// Grounded on treepeck-chego/fen.go's ParseFEN/SerializeFEN/
// ToBitboardArray/FromBitboardArray shape (rank-8-first piece-placement
// scan, per-character piece switch, "no rights set -> '-'" castle-rights
// rendering), adapted from chego's flat [12]uint64 bitboard array onto this
// module's position.Pieces/Position types, and extended to set
// Position.ZobristLock via zobrist.FromScratch after parsing (spec.md §8.2:
// a freshly parsed position must start from a verified hash).
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/position"
	"github.com/corvidchess/rivalgo/square"
	"github.com/corvidchess/rivalgo/zobrist"
)

// Startpos is the standard initial position.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse converts a FEN string into a Position. Returns an error instead of
// panicking (unlike chego's Parse) since FEN arrives over the UCI
// `position` command and must not crash the engine process on bad input.
func Parse(fen string) (*position.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	p := position.New()

	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.Mover = piece.White
	case "b":
		p.Mover = piece.Black
	default:
		return nil, fmt.Errorf("fen: invalid active color %q", fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			p.CastleFlags |= position.WhiteKingside
		case 'Q':
			p.CastleFlags |= position.WhiteQueenside
		case 'k':
			p.CastleFlags |= position.BlackKingside
		case 'q':
			p.CastleFlags |= position.BlackQueenside
		case '-':
		default:
			return nil, fmt.Errorf("fen: invalid castling field %q", fields[2])
		}
	}

	if fields[3] == "-" {
		p.EnPassant = square.None
	} else {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return nil, err
		}
		p.EnPassant = sq
	}

	p.HalfMoves = 0
	p.MoveNumber = 1
	if len(fields) > 4 {
		hm, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
		}
		p.HalfMoves = hm
	}
	if len(fields) > 5 {
		fm, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
		}
		p.MoveNumber = fm
	}

	if zobrist.Initialized() {
		p.ZobristLock = zobrist.FromScratch(p)
	}
	return p, nil
}

func parsePlacement(p *position.Position, placement string) error {
	sq := 56 // rank 8, file a — FEN lists ranks from 8 down to 1.
	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			sq -= 16
		case c >= '1' && c <= '8':
			sq += int(c - '0')
		default:
			colour, kind, err := pieceFromChar(c)
			if err != nil {
				return err
			}
			if sq < 0 || sq > 63 {
				return fmt.Errorf("fen: piece placement overruns the board")
			}
			p.Side[colour].Put(kind, sq)
			sq++
		}
	}
	return nil
}

func pieceFromChar(c byte) (piece.Colour, piece.Kind, error) {
	switch c {
	case 'P':
		return piece.White, piece.Pawn, nil
	case 'N':
		return piece.White, piece.Knight, nil
	case 'B':
		return piece.White, piece.Bishop, nil
	case 'R':
		return piece.White, piece.Rook, nil
	case 'Q':
		return piece.White, piece.Queen, nil
	case 'K':
		return piece.White, piece.King, nil
	case 'p':
		return piece.Black, piece.Pawn, nil
	case 'n':
		return piece.Black, piece.Knight, nil
	case 'b':
		return piece.Black, piece.Bishop, nil
	case 'r':
		return piece.Black, piece.Rook, nil
	case 'q':
		return piece.Black, piece.Queen, nil
	case 'k':
		return piece.Black, piece.King, nil
	default:
		return 0, piece.None, fmt.Errorf("fen: invalid piece character %q", c)
	}
}

func parseSquare(s string) (square.Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return square.None, fmt.Errorf("fen: invalid square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return square.Square(rank*8 + file), nil
}

var pieceSymbol = [2][6]byte{
	piece.White: {piece.Pawn: 'P', piece.Knight: 'N', piece.Bishop: 'B', piece.Rook: 'R', piece.Queen: 'Q', piece.King: 'K'},
	piece.Black: {piece.Pawn: 'p', piece.Knight: 'n', piece.Bishop: 'b', piece.Rook: 'r', piece.Queen: 'q', piece.King: 'k'},
}

// Serialize renders p as a FEN string.
func Serialize(p *position.Position) string {
	var b strings.Builder
	b.Grow(64)

	var board [64]byte
	for c := piece.White; c <= piece.Black; c++ {
		for k := piece.Pawn; k <= piece.King; k++ {
			bb := p.Side[c].Board[k]
			for bb != 0 {
				sq := bb.PopLSB()
				board[sq] = pieceSymbol[c][k]
			}
		}
	}

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			if board[sq] == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(board[sq])
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	if p.Mover == piece.White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

	wrote := false
	if p.CastleFlags&position.WhiteKingside != 0 {
		b.WriteByte('K')
		wrote = true
	}
	if p.CastleFlags&position.WhiteQueenside != 0 {
		b.WriteByte('Q')
		wrote = true
	}
	if p.CastleFlags&position.BlackKingside != 0 {
		b.WriteByte('k')
		wrote = true
	}
	if p.CastleFlags&position.BlackQueenside != 0 {
		b.WriteByte('q')
		wrote = true
	}
	if !wrote {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	if p.EnPassant == square.None {
		b.WriteString("- ")
	} else {
		b.WriteString(p.EnPassant.String())
		b.WriteByte(' ')
	}

	b.WriteString(strconv.Itoa(p.HalfMoves))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.MoveNumber))

	return b.String()
}
