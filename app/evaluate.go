package app

import "github.com/notnil/chess"

// MateValue is the sentinel returned when the side to move is checkmated.
const MateValue = 999999

const mobilityWeight = 10

var centerSquares = [4]chess.Square{chess.E4, chess.E5, chess.D4, chess.D5}

// Evaluate scores a position in centipawns relative to the side to move:
// positive means the player about to move is better. Checkmate returns
// -MateValue, draws return 0.
func Evaluate(pos *chess.Position) int {
	return evaluatePosition(pos, nil)
}

// evaluatePosition is Evaluate plus repetition awareness: line holds the
// hashes of every position on the path to pos (pos included), so a threefold
// repetition along the current search line scores as a draw.
func evaluatePosition(pos *chess.Position, line []positionKey) int {
	switch pos.Status() {
	case chess.Checkmate:
		return -MateValue
	case chess.Stalemate:
		return 0
	}

	board := pos.Board()
	if insufficientMaterial(board) {
		return 0
	}
	if countRepetitions(line, pos.Hash()) >= 3 {
		return 0
	}

	score := materialBalance(board) +
		positionalBalance(board) +
		mobilityScore(pos) +
		kingSafety(pos, chess.White) - kingSafety(pos, chess.Black) +
		pawnStructure(board) +
		tacticalBonus(board)

	if pos.Turn() == chess.Black {
		return -score
	}
	return score
}

func countRepetitions(line []positionKey, hash positionKey) int {
	n := 0
	for _, key := range line {
		if key == hash {
			n++
		}
	}
	return n
}

// materialBalance sums base piece values, White minus Black. Kings are left
// out of the sum.
func materialBalance(board *chess.Board) int {
	balance := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		if p == chess.NoPiece || p.Type() == chess.King {
			continue
		}
		if p.Color() == chess.White {
			balance += pieceValues[p.Type()]
		} else {
			balance -= pieceValues[p.Type()]
		}
	}
	return balance
}

// positionalBalance sums piece-square values, White minus Black.
func positionalBalance(board *chess.Board) int {
	balance := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		if p == chess.NoPiece {
			continue
		}
		if p.Color() == chess.White {
			balance += pieceSquareValue(p, sq)
		} else {
			balance -= pieceSquareValue(p, sq)
		}
	}
	return balance
}

// mobilityScore counts legal moves for the mover, passes the turn to count
// the opponent's, and weights the differential.
func mobilityScore(pos *chess.Position) int {
	mover := len(pos.ValidMoves())
	flipped, err := passTurn(pos)
	if err != nil {
		return 0
	}
	opponent := len(flipped.ValidMoves())
	return (mover - opponent) * mobilityWeight
}

// kingSafety scores one side: castling rights still held, pawns shielding the
// king, and a penalty for standing in check.
func kingSafety(pos *chess.Position, color chess.Color) int {
	board := pos.Board()
	king := kingSquare(board, color)
	if king == chess.NoSquare {
		return -MateValue
	}

	safety := 0
	rights := pos.CastleRights()
	if rights.CanCastle(color, chess.KingSide) {
		safety += 50
	}
	if rights.CanCastle(color, chess.QueenSide) {
		safety += 30
	}

	// Pawn shield: own pawns one rank ahead of the king, on his file or the
	// files beside it.
	kingFile := int(king.File())
	shieldRank := int(king.Rank()) + 1
	if color == chess.Black {
		shieldRank = int(king.Rank()) - 1
	}
	for f := kingFile - 1; f <= kingFile+1; f++ {
		if !onBoard(f, shieldRank) {
			continue
		}
		p := board.Piece(squareAt(f, shieldRank))
		if p.Type() == chess.Pawn && p.Color() == color {
			safety += 30
		}
	}

	if inCheck(board, color) {
		safety -= 50
	}
	return safety
}

// pawnStructure penalizes doubled and isolated pawns and rewards passed
// pawns, each side's contribution signed through a +-1 multiplier.
func pawnStructure(board *chess.Board) int {
	score := 0
	for _, color := range [2]chess.Color{chess.White, chess.Black} {
		multiplier := 1
		if color == chess.Black {
			multiplier = -1
		}
		files := countPawnsPerFile(board, color)

		for _, count := range files {
			if count > 1 {
				score += multiplier * (count - 1) * -20
			}
		}

		for f, count := range files {
			if count == 0 {
				continue
			}
			hasNeighbor := (f > 0 && files[f-1] > 0) || (f < 7 && files[f+1] > 0)
			if !hasNeighbor {
				score += multiplier * -15
			}
		}

		for sq := chess.A1; sq <= chess.H8; sq++ {
			p := board.Piece(sq)
			if p.Type() != chess.Pawn || p.Color() != color {
				continue
			}
			if isPassedPawn(board, sq, color) {
				rank := int(sq.Rank())
				bonus := (rank - 1) * 20
				if color == chess.Black {
					bonus = (6 - rank) * 20
				}
				score += multiplier * bonus
			}
		}
	}
	return score
}

// tacticalBonus rewards attacks on the four center squares and holding the
// bishop pair.
func tacticalBonus(board *chess.Board) int {
	bonus := 0
	for _, sq := range centerSquares {
		if squareAttacked(board, sq, chess.White) {
			bonus += 10
		}
		if squareAttacked(board, sq, chess.Black) {
			bonus -= 10
		}
	}

	whiteBishops, blackBishops := 0, 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		if p.Type() != chess.Bishop {
			continue
		}
		if p.Color() == chess.White {
			whiteBishops++
		} else {
			blackBishops++
		}
	}
	if whiteBishops >= 2 {
		bonus += 30
	}
	if blackBishops >= 2 {
		bonus -= 30
	}
	return bonus
}
