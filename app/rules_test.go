package app

import (
	"strings"
	"testing"

	"github.com/notnil/chess"
)

func TestSquareAttacked(t *testing.T) {
	board := mustPosition(t, startFEN).Board()

	if !squareAttacked(board, chess.F3, chess.White) {
		t.Fatalf("f3 should be attacked by the g1 knight")
	}
	if !squareAttacked(board, chess.D3, chess.White) {
		t.Fatalf("d3 should be attacked by the c2 and e2 pawns")
	}
	if squareAttacked(board, chess.E4, chess.White) {
		t.Fatalf("e4 is not attacked by White in the starting position")
	}
	if !squareAttacked(board, chess.D6, chess.Black) {
		t.Fatalf("d6 should be attacked by Black's pawns")
	}
}

func TestSquareAttackedSliders(t *testing.T) {
	board := mustPosition(t, hangingQueenFEN).Board()

	if !squareAttacked(board, chess.A2, chess.Black) {
		t.Fatalf("a2 should be attacked along the d5-a2 diagonal")
	}
	if !squareAttacked(board, chess.D1, chess.Black) {
		t.Fatalf("d1 should be attacked down the open d-file")
	}
	if squareAttacked(board, chess.B1, chess.Black) {
		t.Fatalf("b1 is not attacked by the d5 queen")
	}
}

func TestSquareAttackedBlockedRay(t *testing.T) {
	// The e4 pawn sits between the queen and e3.
	board := mustPosition(t, "k7/8/8/8/4q3/8/8/4K3 b - - 0 1").Board()
	if !squareAttacked(board, chess.E3, chess.Black) {
		t.Fatalf("e3 should be attacked by the e4 queen")
	}

	blocked := mustPosition(t, "k7/8/8/4q3/4p3/8/8/4K3 b - - 0 1").Board()
	if squareAttacked(blocked, chess.E3, chess.Black) {
		t.Fatalf("e3 should not be attacked through the blocking e4 pawn")
	}
	if !squareAttacked(blocked, chess.E4, chess.Black) {
		t.Fatalf("the blocking pawn's square is still attacked")
	}
}

func TestInCheck(t *testing.T) {
	board := mustPosition(t, foolsMateFEN).Board()
	if !inCheck(board, chess.White) {
		t.Fatalf("White should be in check in the fool's mate position")
	}
	if inCheck(board, chess.Black) {
		t.Fatalf("Black is not in check in the fool's mate position")
	}
}

func TestPassTurn(t *testing.T) {
	pos := mustPosition(t, startFEN)
	flipped, err := passTurn(pos)
	if err != nil {
		t.Fatalf("passTurn error: %v", err)
	}
	if flipped.Turn() != chess.Black {
		t.Fatalf("passTurn turn = %v, want Black", flipped.Turn())
	}

	placement := strings.Fields(pos.String())[0]
	flippedPlacement := strings.Fields(flipped.String())[0]
	if placement != flippedPlacement {
		t.Fatalf("passTurn changed the piece placement: %s vs %s", placement, flippedPlacement)
	}

	if len(flipped.ValidMoves()) != 20 {
		t.Fatalf("Black should have 20 moves after the turn passes, got %d", len(flipped.ValidMoves()))
	}
}

func TestPassTurnClearsEnPassant(t *testing.T) {
	pos := mustPosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	flipped, err := passTurn(pos)
	if err != nil {
		t.Fatalf("passTurn error: %v", err)
	}
	if got := strings.Fields(flipped.String())[3]; got != "-" {
		t.Fatalf("passTurn en-passant field = %s, want -", got)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		want bool
	}{
		{"bare kings", "k7/8/8/8/8/8/8/K7 w - - 0 1", true},
		{"lone knight", "k7/8/8/8/8/8/8/KN6 w - - 0 1", true},
		{"lone bishop", "k7/8/8/8/8/8/8/KB6 w - - 0 1", true},
		{"two knights", "k7/8/8/8/8/8/8/KNN5 w - - 0 1", false},
		{"same color bishops", "k7/8/8/8/5b2/8/8/2B1K3 w - - 0 1", true},
		{"opposite color bishops", "k7/8/8/8/4b3/8/8/2B1K3 w - - 0 1", false},
		{"pawn left", "k7/p7/8/8/8/8/8/K7 w - - 0 1", false},
		{"rook left", "k7/8/8/8/8/8/8/KR6 w - - 0 1", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			board := mustPosition(t, tc.fen).Board()
			if got := insufficientMaterial(board); got != tc.want {
				t.Fatalf("insufficientMaterial(%s) = %t, want %t", tc.fen, got, tc.want)
			}
		})
	}
}

func TestIsPassedPawn(t *testing.T) {
	board := mustPosition(t, "k7/4p3/8/8/8/8/4P3/K7 w - - 0 1").Board()
	if isPassedPawn(board, chess.E2, chess.White) {
		t.Fatalf("e2 pawn is blocked by the e7 pawn and is not passed")
	}

	free := mustPosition(t, "k7/8/8/8/8/8/4P3/K7 w - - 0 1").Board()
	if !isPassedPawn(free, chess.E2, chess.White) {
		t.Fatalf("e2 pawn with no opposing pawns should be passed")
	}
}

func TestKingSquare(t *testing.T) {
	board := mustPosition(t, startFEN).Board()
	if got := kingSquare(board, chess.White); got != chess.E1 {
		t.Fatalf("kingSquare(White) = %v, want e1", got)
	}
	if got := kingSquare(board, chess.Black); got != chess.E8 {
		t.Fatalf("kingSquare(Black) = %v, want e8", got)
	}
}
