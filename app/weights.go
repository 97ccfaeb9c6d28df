package app

import "github.com/notnil/chess"

// Piece base values in centipawns (pawn = 100).
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 330
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 20000
)

var pieceValues = map[chess.PieceType]int{
	chess.Pawn:   PawnValue,
	chess.Knight: KnightValue,
	chess.Bishop: BishopValue,
	chess.Rook:   RookValue,
	chess.Queen:  QueenValue,
	chess.King:   KingValue,
}

// Piece-square tables from White's point of view, indexed by square (A1 = 0).

var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// White tables by piece type, plus the Black mirrors computed once at startup.
var whiteTables map[chess.PieceType]*[64]int
var blackTables map[chess.PieceType]*[64]int

func init() {
	whiteTables = map[chess.PieceType]*[64]int{
		chess.Pawn:   &pawnTable,
		chess.Knight: &knightTable,
		chess.Bishop: &bishopTable,
		chess.Rook:   &rookTable,
		chess.Queen:  &queenTable,
		chess.King:   &kingTable,
	}
	blackTables = make(map[chess.PieceType]*[64]int, len(whiteTables))
	for pt, table := range whiteTables {
		blackTables[pt] = mirrorTable(table)
	}
}

// mirrorTable flips a White piece-square table vertically so that
// mirrored[sq] == original[mirrorSquare(sq)] for every square.
func mirrorTable(table *[64]int) *[64]int {
	var mirrored [64]int
	for sq := 0; sq < 64; sq++ {
		mirrored[sq] = table[mirrorSquare(sq)]
	}
	return &mirrored
}

// mirrorSquare reverses the rank of a square index, keeping the file.
func mirrorSquare(sq int) int {
	return (7-sq/8)*8 + sq%8
}

// pieceSquareValue looks up the positional value of a piece on a square,
// using the mirrored table for Black pieces.
func pieceSquareValue(piece chess.Piece, sq chess.Square) int {
	if piece.Color() == chess.White {
		return whiteTables[piece.Type()][int(sq)]
	}
	return blackTables[piece.Type()][int(sq)]
}
