package app

import (
	"sort"

	"github.com/notnil/chess"
)

const (
	checkPriority     = 50
	promotionPriority = 800
	castlePriority    = 60
	centerPriority    = 20
)

// OrderMoves returns the moves sorted best-first for alpha-beta efficiency.
// The input slice is not modified and no move is dropped; moves with equal
// priority keep the order the move generator produced them in.
func OrderMoves(pos *chess.Position, moves []*chess.Move) []*chess.Move {
	board := pos.Board()
	ordered := make([]*chess.Move, len(moves))
	copy(ordered, moves)
	sort.SliceStable(ordered, func(i, j int) bool {
		return movePriority(board, ordered[i]) > movePriority(board, ordered[j])
	})
	return ordered
}

// movePriority scores a single move: MVV-LVA for captures, then bonuses for
// checks, promotions, castling and center destinations.
func movePriority(board *chess.Board, move *chess.Move) int {
	priority := 0

	if move.HasTag(chess.Capture) || move.HasTag(chess.EnPassant) {
		victim := board.Piece(move.S2())
		victimValue := PawnValue // en passant: the victim square is empty
		if victim != chess.NoPiece {
			victimValue = pieceValues[victim.Type()]
		}
		attacker := board.Piece(move.S1())
		priority += victimValue*10 - pieceValues[attacker.Type()]
	}

	if move.HasTag(chess.Check) {
		priority += checkPriority
	}
	if move.Promo() != chess.NoPieceType {
		priority += promotionPriority
	}
	if move.HasTag(chess.KingSideCastle) || move.HasTag(chess.QueenSideCastle) {
		priority += castlePriority
	}
	for _, sq := range centerSquares {
		if move.S2() == sq {
			priority += centerPriority
			break
		}
	}

	return priority
}
