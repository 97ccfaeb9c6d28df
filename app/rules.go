// Board queries that notnil/chess does not expose directly: attack detection,
// the pass-turn primitive used for mobility counting, and draw-material checks.
package app

import (
	"strings"

	"github.com/notnil/chess"
)

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func squareAt(file, rank int) chess.Square {
	return chess.Square(rank*8 + file)
}

func onBoard(file, rank int) bool {
	return file >= 0 && file <= 7 && rank >= 0 && rank <= 7
}

// squareAttacked reports whether sq is attacked by any piece of the given
// color, regardless of what occupies sq.
func squareAttacked(board *chess.Board, sq chess.Square, by chess.Color) bool {
	file := int(sq.File())
	rank := int(sq.Rank())

	// Pawns attack diagonally toward the enemy back rank.
	pawnRank := rank - 1
	if by == chess.Black {
		pawnRank = rank + 1
	}
	for _, df := range [2]int{-1, 1} {
		if onBoard(file+df, pawnRank) {
			p := board.Piece(squareAt(file+df, pawnRank))
			if p.Type() == chess.Pawn && p.Color() == by {
				return true
			}
		}
	}

	for _, off := range knightOffsets {
		if onBoard(file+off[0], rank+off[1]) {
			p := board.Piece(squareAt(file+off[0], rank+off[1]))
			if p.Type() == chess.Knight && p.Color() == by {
				return true
			}
		}
	}

	for _, off := range kingOffsets {
		if onBoard(file+off[0], rank+off[1]) {
			p := board.Piece(squareAt(file+off[0], rank+off[1]))
			if p.Type() == chess.King && p.Color() == by {
				return true
			}
		}
	}

	if slidingAttack(board, file, rank, by, rookDirs, chess.Rook) {
		return true
	}
	return slidingAttack(board, file, rank, by, bishopDirs, chess.Bishop)
}

// slidingAttack walks each ray until it hits a piece; an attack exists if the
// first piece on the ray is a queen or the matching slider of the given color.
func slidingAttack(board *chess.Board, file, rank int, by chess.Color, dirs [4][2]int, slider chess.PieceType) bool {
	for _, dir := range dirs {
		f, r := file+dir[0], rank+dir[1]
		for onBoard(f, r) {
			p := board.Piece(squareAt(f, r))
			if p != chess.NoPiece {
				if p.Color() == by && (p.Type() == slider || p.Type() == chess.Queen) {
					return true
				}
				break
			}
			f += dir[0]
			r += dir[1]
		}
	}
	return false
}

// kingSquare finds the king of the given color, or NoSquare if it is missing
// from the board.
func kingSquare(board *chess.Board, color chess.Color) chess.Square {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		if p.Type() == chess.King && p.Color() == color {
			return sq
		}
	}
	return chess.NoSquare
}

// inCheck reports whether the given color's king is attacked.
func inCheck(board *chess.Board, color chess.Color) bool {
	king := kingSquare(board, color)
	if king == chess.NoSquare {
		return false
	}
	return squareAttacked(board, king, color.Other())
}

// passTurn returns the same position with only the side to move flipped and
// the en-passant square cleared. It is not a legal move; it exists so mobility
// can be counted for the side not on move.
func passTurn(pos *chess.Position) (*chess.Position, error) {
	parts := strings.Fields(pos.String())
	if parts[1] == "w" {
		parts[1] = "b"
	} else {
		parts[1] = "w"
	}
	parts[3] = "-"

	flipped := &chess.Position{}
	if err := flipped.UnmarshalText([]byte(strings.Join(parts, " "))); err != nil {
		return nil, err
	}
	return flipped, nil
}

// insufficientMaterial reports whether neither side can possibly deliver
// checkmate: bare kings, a lone minor piece, or bishops all on one square
// color with nothing else on the board.
func insufficientMaterial(board *chess.Board) bool {
	knights := 0
	bishops := 0
	bishopSquareColors := map[int]bool{}

	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		switch p.Type() {
		case chess.NoPieceType, chess.King:
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishops++
			bishopSquareColors[(int(sq.File())+int(sq.Rank()))%2] = true
		default:
			// Pawn, rook or queen: mating material remains.
			return false
		}
	}

	if knights+bishops <= 1 {
		return true
	}
	return knights == 0 && len(bishopSquareColors) == 1
}

// countPawnsPerFile tallies pawns of one color by file, A through H.
func countPawnsPerFile(board *chess.Board, color chess.Color) [8]int {
	var files [8]int
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		if p.Type() == chess.Pawn && p.Color() == color {
			files[int(sq.File())]++
		}
	}
	return files
}

// isPassedPawn reports whether no enemy pawn sits on the same or an adjacent
// file between the pawn and its promotion rank.
func isPassedPawn(board *chess.Board, sq chess.Square, color chess.Color) bool {
	file := int(sq.File())
	rank := int(sq.Rank())
	step := 1
	if color == chess.Black {
		step = -1
	}

	for r := rank + step; r >= 0 && r <= 7; r += step {
		for f := file - 1; f <= file+1; f++ {
			if !onBoard(f, r) {
				continue
			}
			p := board.Piece(squareAt(f, r))
			if p.Type() == chess.Pawn && p.Color() == color.Other() {
				return false
			}
		}
	}
	return true
}
