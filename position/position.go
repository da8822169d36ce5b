// Package position implements the board representation described in
// spec.md §3.3-3.4: per-side disjoint piece bitboards with a cached
// occupancy union, and the full game Position built from two such sides.
//
// Grounded on _examples/original_source/src/types.rs's `Pieces`/`Position`
// structs (pawn/knight/bishop/queen/rook bitboards + king_square + cached
// all_pieces_bitboard, matched field-for-field) for the data shape, and on
// _examples/treepeck-chego/position.go's `placePiece`/`removePiece`/
// `GetPieceFromSquare` style for the per-square mutator shape.
package position

import (
	"github.com/corvidchess/rivalgo/bitboard"
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/square"
)

// Castle right bits, grounded on original_source/src/move_constants.rs.
const (
	WhiteKingside uint8 = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
	AllCastleRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Pieces is one side's board state: one bitboard per piece kind, the
// cached king square, and the cached union of all of this side's pieces.
type Pieces struct {
	Board      [6]bitboard.Board // indexed by piece.Kind
	KingSquare square.Square
	All        bitboard.Board
}

// Put places a piece of kind k on sq, maintaining the cached union.
func (p *Pieces) Put(k piece.Kind, sq int) {
	p.Board[k] = p.Board[k].Set(sq)
	p.All = p.All.Set(sq)
	if k == piece.King {
		p.KingSquare = square.Square(sq)
	}
}

// Remove clears a piece of kind k from sq, maintaining the cached union.
func (p *Pieces) Remove(k piece.Kind, sq int) {
	p.Board[k] = p.Board[k].Clear(sq)
	p.All = p.All.Clear(sq)
}

// KindAt returns the piece kind occupying sq on this side, or piece.None.
func (p *Pieces) KindAt(sq int) piece.Kind {
	if !p.All.Has(sq) {
		return piece.None
	}
	for k := piece.Pawn; k <= piece.King; k++ {
		if p.Board[k].Has(sq) {
			return k
		}
	}
	return piece.None
}

// Position is the full game state described in spec.md §3.4.
type Position struct {
	Side        [2]Pieces
	Mover       piece.Colour
	EnPassant   square.Square // square.None when not available
	CastleFlags uint8
	HalfMoves   int
	MoveNumber  int
	ZobristLock uint64
}

// New returns an empty position (no pieces placed), side to move White,
// en passant unavailable, no castle rights, move number 1.
func New() *Position {
	return &Position{
		Mover:      piece.White,
		EnPassant:  square.None,
		MoveNumber: 1,
	}
}

// Occupied returns the union of both sides' pieces.
func (p *Position) Occupied() bitboard.Board {
	return p.Side[piece.White].All | p.Side[piece.Black].All
}

// PieceAt reports the colour and kind of the piece on sq, if any.
func (p *Position) PieceAt(sq int) (piece.Colour, piece.Kind, bool) {
	if k := p.Side[piece.White].KindAt(sq); k != piece.None {
		return piece.White, k, true
	}
	if k := p.Side[piece.Black].KindAt(sq); k != piece.None {
		return piece.Black, k, true
	}
	return 0, piece.None, false
}

// Clone returns a deep (value) copy of the position.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// CanCastle reports whether right is currently held.
func (p *Position) CanCastle(right uint8) bool { return p.CastleFlags&right != 0 }
