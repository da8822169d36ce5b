// Package movegen implements pseudo-legal move generation and the
// attacked-square/check-detection primitives described in spec.md §4.2.
//
// Grounded on _examples/treepeck-chego/movegen.go's genKingMoves/
// genPawnMoves/genNormalMoves/genAttacks shape (attack-table lookups
// combined with friendly-occupancy masking, castling gated on an attacked-
// squares bitboard computed with the king temporarily removed so sliders
// aren't blocked by it), generalized onto this module's position/move
// types and magic-bitboard package instead of chego's combined
// [15]uint64 bitboard array.
package movegen

import (
	"github.com/corvidchess/rivalgo/bitboard"
	"github.com/corvidchess/rivalgo/internal/magic"
	"github.com/corvidchess/rivalgo/move"
	"github.com/corvidchess/rivalgo/piece"
	"github.com/corvidchess/rivalgo/position"
	"github.com/corvidchess/rivalgo/square"
)

// MaxMoves bounds the move list; 218 is the documented worst case
// (https://www.talkchess.com/forum/viewtopic.php?t=61792), matching
// _examples/treepeck-chego/types/types.go's MoveList sizing.
const MaxMoves = 218

// List is a fixed-capacity move buffer, avoiding per-node allocation.
type List struct {
	Moves [MaxMoves]move.Move
	N     int
}

func (l *List) push(m move.Move) { l.Moves[l.N] = m; l.N++ }

// Generate appends every pseudo-legal move for the side to move in p to l.
func Generate(p *position.Position, l *List) {
	genPawnMoves(p, l)
	genKnightMoves(p, l)
	genSliderMoves(p, l, piece.Bishop)
	genSliderMoves(p, l, piece.Rook)
	genSliderMoves(p, l, piece.Queen)
	genKingMoves(p, l)
}

// GenerateCaptures appends only pseudo-legal captures, en-passant captures,
// and promotions, for quiescence search (spec.md §4.4.3).
func GenerateCaptures(p *position.Position, l *List) {
	var all List
	Generate(p, &all)
	opp := p.Side[p.Mover.Opponent()].All
	for i := 0; i < all.N; i++ {
		m := all.Moves[i]
		if m.IsPromotion() || opp.Has(m.To()) || m.To() == int(p.EnPassant) && p.EnPassant != square.None && m.Kind() == piece.Pawn {
			l.push(m)
		}
	}
}

func genPawnMoves(p *position.Position, l *List) {
	mover := p.Mover
	us := &p.Side[mover]
	occ := p.Occupied()
	enemies := p.Side[mover.Opponent()].All
	var epBB bitboard.Board
	if p.EnPassant != square.None {
		epBB = epBB.Set(int(p.EnPassant))
	}

	dir, startRank, promoRank := 8, 1, 7
	if mover == piece.Black {
		dir, startRank, promoRank = -8, 6, 0
	}

	pawns := us.Board[piece.Pawn]
	for pawns != 0 {
		from := pawns.PopLSB()
		fwd := from + dir
		if fwd >= 0 && fwd < 64 && !occ.Has(fwd) {
			if square.Square(fwd).Rank() == promoRank {
				pushPromotions(l, from, fwd)
			} else {
				l.push(move.New(from, fwd, piece.Pawn))
				if square.Square(from).Rank() == startRank {
					dbl := from + 2*dir
					if !occ.Has(dbl) {
						l.push(move.New(from, dbl, piece.Pawn))
					}
				}
			}
		}

		attacks := magic.PawnAttacks[mover][from] & (enemies | epBB)
		for attacks != 0 {
			to := attacks.PopLSB()
			switch {
			case square.Square(to).Rank() == promoRank:
				pushPromotions(l, from, to)
			case bitboard.Board(epBB).Has(to):
				l.push(move.New(from, to, piece.Pawn))
			default:
				l.push(move.New(from, to, piece.Pawn))
			}
		}
	}
}

func pushPromotions(l *List, from, to int) {
	l.push(move.NewPromotion(from, to, move.PromoQueen))
	l.push(move.NewPromotion(from, to, move.PromoRook))
	l.push(move.NewPromotion(from, to, move.PromoBishop))
	l.push(move.NewPromotion(from, to, move.PromoKnight))
}

func genKnightMoves(p *position.Position, l *List) {
	us := &p.Side[p.Mover]
	knights := us.Board[piece.Knight]
	for knights != 0 {
		from := knights.PopLSB()
		dests := magic.KnightAttacks[from] &^ us.All
		for dests != 0 {
			l.push(move.New(from, dests.PopLSB(), piece.Knight))
		}
	}
}

func genSliderMoves(p *position.Position, l *List, kind piece.Kind) {
	us := &p.Side[p.Mover]
	occ := p.Occupied()
	pieces := us.Board[kind]
	for pieces != 0 {
		from := pieces.PopLSB()
		var dests bitboard.Board
		switch kind {
		case piece.Bishop:
			dests = magic.BishopAttacks(from, occ)
		case piece.Rook:
			dests = magic.RookAttacks(from, occ)
		case piece.Queen:
			dests = magic.QueenAttacks(from, occ)
		}
		dests &^= us.All
		for dests != 0 {
			l.push(move.New(from, dests.PopLSB(), kind))
		}
	}
}

func genKingMoves(p *position.Position, l *List) {
	mover := p.Mover
	us := &p.Side[mover]
	from := int(us.KingSquare)

	// Exclude the king from occupancy while computing enemy attacks so a
	// slider's x-ray through the king's own square isn't missed.
	attacked := AttackedSquares(p, mover.Opponent(), true)

	dests := magic.KingAttacks[from] &^ us.All &^ attacked
	for dests != 0 {
		l.push(move.New(from, dests.PopLSB(), piece.King))
	}

	genCastleMoves(p, l, attacked)
}

func genCastleMoves(p *position.Position, l *List, attacked bitboard.Board) {
	occ := p.Occupied()
	mover := p.Mover
	if mover == piece.White {
		if p.CanCastle(position.WhiteKingside) &&
			!occ.Has(int(square.F1)) && !occ.Has(int(square.G1)) &&
			!attacked.Has(int(square.E1)) && !attacked.Has(int(square.F1)) && !attacked.Has(int(square.G1)) {
			l.push(move.NewCastle(int(square.E1), int(square.G1), move.WhiteKingside))
		}
		if p.CanCastle(position.WhiteQueenside) &&
			!occ.Has(int(square.D1)) && !occ.Has(int(square.C1)) && !occ.Has(int(square.B1)) &&
			!attacked.Has(int(square.E1)) && !attacked.Has(int(square.D1)) && !attacked.Has(int(square.C1)) {
			l.push(move.NewCastle(int(square.E1), int(square.C1), move.WhiteQueenside))
		}
	} else {
		if p.CanCastle(position.BlackKingside) &&
			!occ.Has(int(square.F8)) && !occ.Has(int(square.G8)) &&
			!attacked.Has(int(square.E8)) && !attacked.Has(int(square.F8)) && !attacked.Has(int(square.G8)) {
			l.push(move.NewCastle(int(square.E8), int(square.G8), move.BlackKingside))
		}
		if p.CanCastle(position.BlackQueenside) &&
			!occ.Has(int(square.D8)) && !occ.Has(int(square.C8)) && !occ.Has(int(square.B8)) &&
			!attacked.Has(int(square.E8)) && !attacked.Has(int(square.D8)) && !attacked.Has(int(square.C8)) {
			l.push(move.NewCastle(int(square.E8), int(square.C8), move.BlackQueenside))
		}
	}
}

// AttackedSquares returns the bitboard of squares attacked by attacker's
// pieces. When excludeKing is set, the defending king (p.Mover's king if
// attacker is its opponent) is removed from the occupancy used for slider
// rays, so the king cannot "hide" behind its own square when computing
// where it is allowed to step.
func AttackedSquares(p *position.Position, attacker piece.Colour, excludeKing bool) bitboard.Board {
	occ := p.Occupied()
	if excludeKing {
		defender := attacker.Opponent()
		occ = occ.Clear(int(p.Side[defender].KingSquare))
	}
	side := &p.Side[attacker]
	var attacks bitboard.Board

	pawns := side.Board[piece.Pawn]
	for pawns != 0 {
		attacks |= magic.PawnAttacks[attacker][pawns.PopLSB()]
	}
	knights := side.Board[piece.Knight]
	for knights != 0 {
		attacks |= magic.KnightAttacks[knights.PopLSB()]
	}
	bishops := side.Board[piece.Bishop] | side.Board[piece.Queen]
	for bishops != 0 {
		attacks |= magic.BishopAttacks(bishops.PopLSB(), occ)
	}
	rooks := side.Board[piece.Rook] | side.Board[piece.Queen]
	for rooks != 0 {
		attacks |= magic.RookAttacks(rooks.PopLSB(), occ)
	}
	attacks |= magic.KingAttacks[side.KingSquare]

	return attacks
}

// IsSquareAttackedBy reports whether sq is attacked by any piece of colour
// attacker, using the symmetry construction of spec.md §4.2: a square is
// attacked by an enemy pawn iff an enemy pawn occupies one of the squares
// our own pawn-capture table lists from sq, and similarly for the other
// piece kinds.
func IsSquareAttackedBy(p *position.Position, sq int, attacker piece.Colour) bool {
	side := &p.Side[attacker]
	defender := attacker.Opponent()
	occ := p.Occupied()

	if magic.PawnAttacks[defender][sq]&side.Board[piece.Pawn] != 0 {
		return true
	}
	if magic.KnightAttacks[sq]&side.Board[piece.Knight] != 0 {
		return true
	}
	if magic.KingAttacks[sq]&(bitboard.Board(1)<<uint(side.KingSquare)) != 0 {
		return true
	}
	diagonal := side.Board[piece.Bishop] | side.Board[piece.Queen]
	if magic.BishopAttacks(sq, occ)&diagonal != 0 {
		return true
	}
	straight := side.Board[piece.Rook] | side.Board[piece.Queen]
	if magic.RookAttacks(sq, occ)&straight != 0 {
		return true
	}
	return false
}

// IsCheck reports whether side's king is currently attacked.
func IsCheck(p *position.Position, side piece.Colour) bool {
	return IsSquareAttackedBy(p, int(p.Side[side].KingSquare), side.Opponent())
}
