// Package makemove implements in-place move application and its exact
// inverse, maintaining Position.ZobristLock incrementally as described in
// spec.md §3.6 and §4.3.
//
// The in-place-mutation-plus-unmake-token shape (as opposed to
// _examples/treepeck-chego/movegen.go's copy-the-whole-struct approach) is
// grounded on _examples/original_source/src/make_move.rs's
// `make_move_in_place`/`unmake_move`/`UnmakeInfo`, which is the exact
// mechanism spec.md §4.3 describes; the per-piece-kind dispatch and
// corner-square castle-right-clearing rule are grounded on
// _examples/treepeck-chego/types/types.go's `MakeMove` switch, generalized
// from copy-on-write to the token-based reversible form.
package makemove

import (
	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/position"
	"github.com/corvidchess/rivalgo/square"
	"github.com/corvidchess/rivalgo/zobrist"
)

// EnPassantCaptured is the sentinel Captured value meaning "a pawn was
// captured en passant", kept distinct from piece.Pawn because the removed
// pawn sits on a square other than the move's destination (spec.md §3.6).
const EnPassantCaptured piece.Kind = 100

// UnmakeInfo is the per-ply state needed to invert a make (spec.md §3.6).
type UnmakeInfo struct {
	CastleFlags uint8
	EnPassant   square.Square
	HalfMoves   int
	ZobristLock uint64
	Captured    piece.Kind
}

func cornerCastleRight(sq int) uint8 {
	switch square.Square(sq) {
	case square.A1:
		return position.WhiteQueenside
	case square.H1:
		return position.WhiteKingside
	case square.A8:
		return position.BlackQueenside
	case square.H8:
		return position.BlackKingside
	default:
		return 0
	}
}

// Make applies m to p in place and returns the token needed to reverse it.
func Make(p *position.Position, m move.Move) UnmakeInfo {
	tok := UnmakeInfo{
		CastleFlags: p.CastleFlags,
		EnPassant:   p.EnPassant,
		HalfMoves:   p.HalfMoves,
		ZobristLock: p.ZobristLock,
		Captured:    capturedKind(p, m),
	}

	p.ZobristLock ^= zobrist.Castle[p.CastleFlags]
	if p.EnPassant != square.None {
		p.ZobristLock ^= zobrist.EnPassantFile[p.EnPassant.File()]
	}

	mover := p.Mover
	opp := mover.Opponent()
	us, them := &p.Side[mover], &p.Side[opp]
	from, to := m.From(), m.To()
	kind := m.Kind()

	wasDoublePush := false

	switch kind {
	case piece.Pawn:
		switch {
		case m.IsPromotion():
			us.Remove(piece.Pawn, from)
			p.ZobristLock ^= zobrist.PieceSquare[mover][piece.Pawn][from]
			if tok.Captured != piece.None && tok.Captured != EnPassantCaptured {
				them.Remove(tok.Captured, to)
				p.ZobristLock ^= zobrist.PieceSquare[opp][tok.Captured][to]
			}
			promoted := m.Promo().Kind()
			us.Put(promoted, to)
			p.ZobristLock ^= zobrist.PieceSquare[mover][promoted][to]
			p.HalfMoves = 0
		case tok.Captured == EnPassantCaptured:
			capSq := to - 8
			if mover == piece.Black {
				capSq = to + 8
			}
			them.Remove(piece.Pawn, capSq)
			p.ZobristLock ^= zobrist.PieceSquare[opp][piece.Pawn][capSq]
			us.Remove(piece.Pawn, from)
			us.Put(piece.Pawn, to)
			p.ZobristLock ^= zobrist.PieceSquare[mover][piece.Pawn][from]
			p.ZobristLock ^= zobrist.PieceSquare[mover][piece.Pawn][to]
			p.HalfMoves = 0
		case tok.Captured != piece.None:
			them.Remove(tok.Captured, to)
			p.ZobristLock ^= zobrist.PieceSquare[opp][tok.Captured][to]
			us.Remove(piece.Pawn, from)
			us.Put(piece.Pawn, to)
			p.ZobristLock ^= zobrist.PieceSquare[mover][piece.Pawn][from]
			p.ZobristLock ^= zobrist.PieceSquare[mover][piece.Pawn][to]
			p.HalfMoves = 0
		default:
			us.Remove(piece.Pawn, from)
			us.Put(piece.Pawn, to)
			p.ZobristLock ^= zobrist.PieceSquare[mover][piece.Pawn][from]
			p.ZobristLock ^= zobrist.PieceSquare[mover][piece.Pawn][to]
			p.HalfMoves = 0
			diff := to - from
			if diff == 16 || diff == -16 {
				wasDoublePush = true
			}
		}

	case piece.King:
		if m.IsCastle() {
			applyCastle(p, m.CastleKind(), true)
			p.HalfMoves++
		} else {
			if tok.Captured != piece.None {
				them.Remove(tok.Captured, to)
				p.ZobristLock ^= zobrist.PieceSquare[opp][tok.Captured][to]
				p.HalfMoves = 0
			} else {
				p.HalfMoves++
			}
			us.Remove(piece.King, from)
			us.Put(piece.King, to)
			p.ZobristLock ^= zobrist.PieceSquare[mover][piece.King][from]
			p.ZobristLock ^= zobrist.PieceSquare[mover][piece.King][to]
		}
		if mover == piece.White {
			p.CastleFlags &^= position.WhiteKingside | position.WhiteQueenside
		} else {
			p.CastleFlags &^= position.BlackKingside | position.BlackQueenside
		}

	default: // knight, bishop, rook, queen
		if tok.Captured != piece.None {
			them.Remove(tok.Captured, to)
			p.ZobristLock ^= zobrist.PieceSquare[opp][tok.Captured][to]
			p.HalfMoves = 0
		} else {
			p.HalfMoves++
		}
		us.Remove(kind, from)
		us.Put(kind, to)
		p.ZobristLock ^= zobrist.PieceSquare[mover][kind][from]
		p.ZobristLock ^= zobrist.PieceSquare[mover][kind][to]
		if kind == piece.Rook {
			if right := cornerCastleRight(from); right != 0 {
				p.CastleFlags &^= right
			}
		}
	}

	// A captured rook loses castling rights for its owner, whichever piece
	// captured it (spec.md §4.3 step 4).
	if right := cornerCastleRight(to); right != 0 {
		p.CastleFlags &^= right
	}

	if wasDoublePush {
		if mover == piece.White {
			p.EnPassant = square.Square(from + 8)
		} else {
			p.EnPassant = square.Square(from - 8)
		}
	} else {
		p.EnPassant = square.None
	}

	p.ZobristLock ^= zobrist.Castle[p.CastleFlags]
	if p.EnPassant != square.None {
		p.ZobristLock ^= zobrist.EnPassantFile[p.EnPassant.File()]
	}

	p.Mover = opp
	p.ZobristLock ^= zobrist.SideToMove

	if p.Mover == piece.White {
		p.MoveNumber++
	}

	return tok
}

// Unmake reverses a Make call, restoring p bit-for-bit.
func Unmake(p *position.Position, m move.Move, tok UnmakeInfo) {
	p.Mover = p.Mover.Opponent()
	mover := p.Mover
	opp := mover.Opponent()
	us, them := &p.Side[mover], &p.Side[opp]
	from, to := m.From(), m.To()
	kind := m.Kind()

	switch kind {
	case piece.Pawn:
		switch {
		case m.IsPromotion():
			promoted := m.Promo().Kind()
			us.Remove(promoted, to)
			us.Put(piece.Pawn, from)
			if tok.Captured != piece.None {
				them.Put(tok.Captured, to)
			}
		case tok.Captured == EnPassantCaptured:
			us.Remove(piece.Pawn, to)
			us.Put(piece.Pawn, from)
			capSq := to - 8
			if mover == piece.Black {
				capSq = to + 8
			}
			them.Put(piece.Pawn, capSq)
		default:
			us.Remove(piece.Pawn, to)
			us.Put(piece.Pawn, from)
			if tok.Captured != piece.None {
				them.Put(tok.Captured, to)
			}
		}

	case piece.King:
		if m.IsCastle() {
			applyCastle(p, m.CastleKind(), false)
		} else {
			us.Remove(piece.King, to)
			us.Put(piece.King, from)
			if tok.Captured != piece.None {
				them.Put(tok.Captured, to)
			}
		}

	default:
		us.Remove(kind, to)
		us.Put(kind, from)
		if tok.Captured != piece.None {
			them.Put(tok.Captured, to)
		}
	}

	p.CastleFlags = tok.CastleFlags
	p.EnPassant = tok.EnPassant
	p.HalfMoves = tok.HalfMoves
	p.ZobristLock = tok.ZobristLock
	if mover == piece.Black {
		p.MoveNumber--
	}
}

// capturedKind determines the piece kind captured by m, if any, including
// the en-passant tag, inspecting only board state (never mutating it).
func capturedKind(p *position.Position, m move.Move) piece.Kind {
	to := m.To()
	if m.Kind() == piece.Pawn && !m.IsPromotion() && to == int(p.EnPassant) && p.EnPassant != square.None {
		return EnPassantCaptured
	}
	opp := p.Mover.Opponent()
	return p.Side[opp].KindAt(to)
}

// castleInfo gives the rook's from/to squares for each castle kind,
// alongside the king's from/to, grounded on the corner-square constants in
// original_source/src/bitboards.rs (A1/H1/A8/H8 home-square convention,
// reindexed to this module's square numbering, see DESIGN.md).
type castleInfo struct {
	kingFrom, kingTo int
	rookFrom, rookTo int
	colour           piece.Colour
}

var castleTable = [4]castleInfo{
	move.WhiteKingside:  {int(square.E1), int(square.G1), int(square.H1), int(square.F1), piece.White},
	move.WhiteQueenside: {int(square.E1), int(square.C1), int(square.A1), int(square.D1), piece.White},
	move.BlackKingside:  {int(square.E8), int(square.G8), int(square.H8), int(square.F8), piece.Black},
	move.BlackQueenside: {int(square.E8), int(square.C8), int(square.A8), int(square.D8), piece.Black},
}

func applyCastle(p *position.Position, ck move.CastleKind, forward bool) {
	info := castleTable[ck]
	side := &p.Side[info.colour]
	if forward {
		side.Remove(piece.King, info.kingFrom)
		side.Put(piece.King, info.kingTo)
		side.Remove(piece.Rook, info.rookFrom)
		side.Put(piece.Rook, info.rookTo)
		p.ZobristLock ^= zobrist.PieceSquare[info.colour][piece.King][info.kingFrom]
		p.ZobristLock ^= zobrist.PieceSquare[info.colour][piece.King][info.kingTo]
		p.ZobristLock ^= zobrist.PieceSquare[info.colour][piece.Rook][info.rookFrom]
		p.ZobristLock ^= zobrist.PieceSquare[info.colour][piece.Rook][info.rookTo]
	} else {
		side.Remove(piece.King, info.kingTo)
		side.Put(piece.King, info.kingFrom)
		side.Remove(piece.Rook, info.rookTo)
		side.Put(piece.Rook, info.rookFrom)
	}
}
