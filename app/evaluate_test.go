package app

import (
	"testing"

	"github.com/notnil/chess"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// White checkmated by the fool's mate queen on h4.
const foolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

// Black to move with no legal moves and not in check.
const stalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

// White pawn on e4 can take an undefended black queen on d5.
const hangingQueenFEN = "k7/8/8/3q4/4P3/8/8/K7 w - - 0 1"

func mustPosition(t *testing.T, fen string) *chess.Position {
	t.Helper()
	pos := &chess.Position{}
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		t.Fatalf("invalid FEN %q: %v", fen, err)
	}
	return pos
}

func TestEvaluateCheckmateSentinel(t *testing.T) {
	pos := mustPosition(t, foolsMateFEN)
	if got := Evaluate(pos); got != -MateValue {
		t.Fatalf("Evaluate(checkmate) = %d, want %d", got, -MateValue)
	}
}

func TestEvaluateStalemateIsDraw(t *testing.T) {
	pos := mustPosition(t, stalemateFEN)
	if got := Evaluate(pos); got != 0 {
		t.Fatalf("Evaluate(stalemate) = %d, want 0", got)
	}
}

func TestEvaluateStartingPositionBalanced(t *testing.T) {
	pos := mustPosition(t, startFEN)
	if got := Evaluate(pos); got != 0 {
		t.Fatalf("Evaluate(start) = %d, want 0 for a symmetric position", got)
	}
}

func TestEvaluateRepetitionOnLineIsDraw(t *testing.T) {
	pos := mustPosition(t, hangingQueenFEN)
	if Evaluate(pos) == 0 {
		t.Fatalf("position with a hanging queen should not evaluate to 0 without repetition")
	}

	line := []positionKey{pos.Hash(), pos.Hash(), pos.Hash()}
	if got := evaluatePosition(pos, line); got != 0 {
		t.Fatalf("evaluatePosition with threefold line = %d, want 0", got)
	}
}

func TestEvaluateInsufficientMaterialIsDraw(t *testing.T) {
	pos := mustPosition(t, "k7/8/8/8/8/8/8/K7 w - - 0 1")
	if got := Evaluate(pos); got != 0 {
		t.Fatalf("Evaluate(bare kings) = %d, want 0", got)
	}
}

func TestPawnStructureDoubledAndIsolated(t *testing.T) {
	// White pawns doubled on the e-file with no neighbors; the black e7 pawn
	// keeps both sides from counting as passed and nets +15 back as Black's
	// own isolation penalty.
	pos := mustPosition(t, "k7/4p3/8/8/8/4P3/4P3/K7 w - - 0 1")
	if got := pawnStructure(pos.Board()); got != -20 {
		t.Fatalf("pawnStructure = %d, want -20 (-20 doubled, -15 isolated, +15 opponent isolated)", got)
	}
}

func TestPawnStructurePassedPawnBonus(t *testing.T) {
	// Lone white pawn on e5: isolated (-15) but passed, worth 20 per rank
	// advanced from its start.
	pos := mustPosition(t, "k7/8/8/4P3/8/8/8/K7 w - - 0 1")
	if got := pawnStructure(pos.Board()); got != 45 {
		t.Fatalf("pawnStructure = %d, want 45 (60 passed - 15 isolated)", got)
	}
}

func TestMirroredTablesMatchWhiteTables(t *testing.T) {
	for pt, white := range whiteTables {
		black := blackTables[pt]
		for sq := 0; sq < 64; sq++ {
			if black[sq] != white[mirrorSquare(sq)] {
				t.Fatalf("piece %v: blackTable[%d] = %d, want whiteTable[%d] = %d",
					pt, sq, black[sq], mirrorSquare(sq), white[mirrorSquare(sq)])
			}
		}
	}
}

func TestEvaluateSideToMoveRelative(t *testing.T) {
	// Same material imbalance seen from each side: White up a queen.
	whiteToMove := mustPosition(t, "k7/8/8/8/8/8/1Q6/K7 w - - 0 1")
	blackToMove := mustPosition(t, "k7/8/8/8/8/8/1Q6/K7 b - - 0 1")

	if got := Evaluate(whiteToMove); got <= 0 {
		t.Fatalf("Evaluate(white up a queen, white to move) = %d, want > 0", got)
	}
	if got := Evaluate(blackToMove); got >= 0 {
		t.Fatalf("Evaluate(white up a queen, black to move) = %d, want < 0", got)
	}
}
