// Package move implements the packed 32-bit move encoding described in
// spec.md §3.5: destination and source squares, the promotion piece, a
// one-hot piece-kind mask for the mover, and a distinguished encoding for
// the four castling moves.
//
// The one-hot "piece-kind mask embedded in the move bits, dispatched by a
// match on that field" idiom is grounded on
// _examples/original_source/src/move_scores.rs (`PIECE_MASK_PAWN` etc. are
// matched directly against `mv & PIECE_MASK_FULL`); the packed-integer move
// type itself mirrors the shape of
// _examples/treepeck-chego/types/types.go's `Move uint16`, widened to
// 32 bits and regrouped to carry a piece-kind mask instead of a move-type
// enum.
package move

import "github.com/corvidchess/rivalgo/piece"

// Move is a packed chess move.
type Move uint32

const (
	destShift  = 0
	destMask   = 0x3F
	promoShift = 6
	promoMask  = 0x7
	kindShift  = 9
	srcShift   = 16
	srcMask    = 0x3F

	castleBit = 1 << 24
	// CastleMin: any encoded move ≥ this value is a castle (bit 24 set),
	// per spec.md §3.5's "four distinguished king-move values ≥ CASTLE_MIN".
	CastleMin     = castleBit
	castleIDShift = 25
	castleIDMask  = 0x3
)

// Promotion piece codes for bits 6-8.
const (
	PromoNone Promo = iota
	PromoKnight
	PromoBishop
	PromoRook
	PromoQueen
)

// Promo is the promotion-piece field of a move.
type Promo int

// Kind returns the equivalent piece.Kind, or piece.None.
func (p Promo) Kind() piece.Kind {
	switch p {
	case PromoKnight:
		return piece.Knight
	case PromoBishop:
		return piece.Bishop
	case PromoRook:
		return piece.Rook
	case PromoQueen:
		return piece.Queen
	default:
		return piece.None
	}
}

// PromoFromKind converts a promotion piece.Kind to its move.Promo code.
func PromoFromKind(k piece.Kind) Promo {
	switch k {
	case piece.Knight:
		return PromoKnight
	case piece.Bishop:
		return PromoBishop
	case piece.Rook:
		return PromoRook
	case piece.Queen:
		return PromoQueen
	default:
		return PromoNone
	}
}

var kindBit = [...]uint32{
	piece.Pawn:   1 << (kindShift + 0),
	piece.Knight: 1 << (kindShift + 1),
	piece.Bishop: 1 << (kindShift + 2),
	piece.Rook:   1 << (kindShift + 3),
	piece.Queen:  1 << (kindShift + 4),
	piece.King:   1 << (kindShift + 5),
}

// CastleKind enumerates the four castling moves.
type CastleKind int

const (
	WhiteKingside CastleKind = iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// New builds a non-castling, non-promotion move.
func New(from, to int, k piece.Kind) Move {
	return Move(to&destMask) | Move(from&srcMask)<<srcShift | Move(kindBit[k])
}

// NewPromotion builds a pawn-promotion move.
func NewPromotion(from, to int, promo Promo) Move {
	return Move(to&destMask) | Move(from&srcMask)<<srcShift | Move(kindBit[piece.Pawn]) |
		Move(promo&promoMask)<<promoShift
}

// NewCastle builds one of the four distinguished castle moves, from and to
// being the king's actual source/destination square (kept so UCI/FEN
// rendering needs no special case).
func NewCastle(from, to int, ck CastleKind) Move {
	return Move(to&destMask) | Move(from&srcMask)<<srcShift | Move(kindBit[piece.King]) |
		castleBit | Move(ck&castleIDMask)<<castleIDShift
}

func (m Move) To() int   { return int(m>>destShift) & destMask }
func (m Move) From() int { return int(m>>srcShift) & srcMask }

// Promo returns the promotion piece field (PromoNone if not a promotion).
func (m Move) Promo() Promo { return Promo(m>>promoShift) & promoMask }

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promo() != PromoNone }

// IsCastle reports whether m is one of the four distinguished castle moves.
func (m Move) IsCastle() bool { return m >= CastleMin }

// CastleKind returns the castle identity; valid only if IsCastle().
func (m Move) CastleKind() CastleKind { return CastleKind(m>>castleIDShift) & castleIDMask }

// Kind returns the piece kind of the mover, decoded from the one-hot mask.
func (m Move) Kind() piece.Kind {
	mask := uint32(m) &^ (destMask | promoMask<<promoShift | srcMask<<srcShift | castleBit | castleIDMask<<castleIDShift)
	for k := piece.Pawn; k <= piece.King; k++ {
		if mask == kindBit[k] {
			return k
		}
	}
	return piece.None
}

// String renders m as pure coordinate algebraic text, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	s := squareName(m.From()) + squareName(m.To())
	if m.IsPromotion() {
		s += m.Promo().Kind().Letter()
	}
	return s
}

var fileLetters = "abcdefgh"

func squareName(sq int) string {
	file := sq % 8
	rank := sq / 8
	return string(fileLetters[file]) + string(rune('1'+rank))
}
