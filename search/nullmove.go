package search

import (
	"github.com/corvidchess/rivalgo/position"
	"github.com/corvidchess/rivalgo/square"
	"github.com/corvidchess/rivalgo/zobrist"
)

// nullMoveUndo is the minimal state a null move touches: side to move and
// the en-passant square, mirroring makemove.UnmakeInfo but scoped to only
// what a null move changes (spec.md §4.4.2: "swap side to move, clear
// en-passant, update Zobrist accordingly").
type nullMoveUndo struct {
	enPassant square.Square
}

func makeNullMove(p *position.Position) nullMoveUndo {
	undo := nullMoveUndo{enPassant: p.EnPassant}
	if p.EnPassant != square.None {
		p.ZobristLock ^= zobrist.EnPassantFile[p.EnPassant.File()]
		p.EnPassant = square.None
	}
	p.Mover = p.Mover.Opponent()
	p.ZobristLock ^= zobrist.SideToMove
	return undo
}

func unmakeNullMove(p *position.Position, undo nullMoveUndo) {
	p.Mover = p.Mover.Opponent()
	p.ZobristLock ^= zobrist.SideToMove
	if undo.enPassant != square.None {
		p.EnPassant = undo.enPassant
		p.ZobristLock ^= zobrist.EnPassantFile[p.EnPassant.File()]
	}
}
