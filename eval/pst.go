package eval

// Piece-square tables, one entry per square in this module's A1=0 rank-major
// numbering (index 0 = a1, index 63 = h8). Values are from White's
// perspective; Black's score is read by mirroring the square vertically
// (rank 7-r instead of r), the same technique as original_source/src/
// piece_square_tables.rs's BIT_FLIPPED_HORIZONTAL_AXIS mirror table, done
// here with a flipSquare helper instead of a precomputed array since A1=0
// arithmetic makes the mirror a one-line expression.
var (
	pawnOpening = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	pawnEndgame = [64]int{
		0, 0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, 10,
		10, 10, 10, 15, 15, 10, 10, 10,
		20, 20, 20, 25, 25, 20, 20, 20,
		35, 35, 35, 35, 35, 35, 35, 35,
		55, 55, 55, 55, 55, 55, 55, 55,
		80, 80, 80, 80, 80, 80, 80, 80,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	knightMidgame = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	knightEndgame = [64]int{
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	}
	bishop = [64]int{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	}
	rook = [64]int{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		20, 20, 20, 20, 20, 20, 20, 20,
		0, 0, 0, 5, 5, 0, 0, 0,
	}
	queen = [64]int{
		-10, -5, -5, 0, 0, -5, -5, -10,
		-5, 0, 5, 0, 0, 0, 0, -5,
		-5, 5, 5, 5, 5, 5, 0, -5,
		0, 0, 5, 5, 5, 5, 0, 0,
		0, 0, 5, 5, 5, 5, 0, 0,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-10, -5, -5, 0, 0, -5, -5, -10,
	}
	kingMidgame = [64]int{
		24, 32, 10, 0, 0, 10, 32, 24,
		24, 24, 0, 0, 0, 0, 24, 24,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	}
	kingEndgame = [64]int{
		0, 8, 16, 24, 24, 16, 8, 0,
		8, 16, 24, 32, 32, 24, 16, 8,
		16, 24, 32, 40, 40, 32, 24, 16,
		24, 32, 40, 48, 48, 40, 32, 24,
		24, 32, 40, 48, 48, 40, 32, 24,
		16, 24, 32, 40, 40, 32, 24, 16,
		8, 16, 24, 32, 32, 24, 16, 8,
		0, 8, 16, 24, 24, 16, 8, 0,
	}
)

func flipSquare(sq int) int {
	return sq ^ 56 // mirrors rank r to rank (7-r), file unchanged.
}
