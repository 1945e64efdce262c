package game

import (
	"testing"

	"github.com/iamasit07/othello/backend/models"
)

func TestStartingPositionLegalMoves(t *testing.T) {
	board := NewBoard()
	moves := LegalMoves(board, models.Black)

	expected := []models.Move{
		{Row: 2, Col: 3},
		{Row: 3, Col: 2},
		{Row: 4, Col: 5},
		{Row: 5, Col: 4},
	}

	if len(moves) != len(expected) {
		t.Fatalf("expected %d legal moves, got %d: %v", len(expected), len(moves), moves)
	}
	for i, want := range expected {
		if moves[i] != want {
			t.Errorf("move %d: expected %v, got %v", i, want, moves[i])
		}
	}
}

func TestLegalMovesRowMajorOrder(t *testing.T) {
	board := NewBoard()
	moves := LegalMoves(board, models.White)

	for i := 1; i < len(moves); i++ {
		prev, cur := moves[i-1], moves[i]
		if cur.Row < prev.Row || (cur.Row == prev.Row && cur.Col <= prev.Col) {
			t.Fatalf("moves not in row-major order: %v before %v", prev, cur)
		}
	}
}

func TestFlipsForOccupiedAndOutOfBounds(t *testing.T) {
	board := NewBoard()

	if flips := FlipsFor(board, models.Black, 3, 3); len(flips) != 0 {
		t.Errorf("expected no flips on an occupied cell, got %v", flips)
	}
	if flips := FlipsFor(board, models.Black, -1, 0); len(flips) != 0 {
		t.Errorf("expected no flips out of bounds, got %v", flips)
	}
	if flips := FlipsFor(board, models.Black, 8, 8); len(flips) != 0 {
		t.Errorf("expected no flips out of bounds, got %v", flips)
	}
}

func TestFlipsForRequiresClosingDisc(t *testing.T) {
	// B W _ with nothing beyond: the white run is never closed, so (0,2)
	// captures only via the closed direction and a lone run to an edge
	// contributes nothing
	var board models.Board
	board[0][0] = models.White
	board[0][1] = models.White

	if flips := FlipsFor(board, models.Black, 0, 2); len(flips) != 0 {
		t.Errorf("expected no flips for an unclosed run, got %v", flips)
	}
}

func TestApplyMoveCountsAndImmutability(t *testing.T) {
	board := NewBoard()
	blackBefore, whiteBefore := CountDiscs(board)

	next, flips, err := ApplyMove(board, models.Black, 2, 3)
	if err != nil {
		t.Fatalf("expected legal move, got error: %v", err)
	}
	if len(flips) != 1 {
		t.Fatalf("expected 1 flip, got %d", len(flips))
	}

	blackAfter, whiteAfter := CountDiscs(next)
	if blackAfter != blackBefore+len(flips)+1 {
		t.Errorf("expected black count %d, got %d", blackBefore+len(flips)+1, blackAfter)
	}
	if whiteAfter != whiteBefore-len(flips) {
		t.Errorf("expected white count %d, got %d", whiteBefore-len(flips), whiteAfter)
	}

	// the original board is untouched
	if board != NewBoard() {
		t.Error("ApplyMove mutated the input board")
	}
}

func TestApplyMoveRejectsNoCapture(t *testing.T) {
	board := NewBoard()
	if _, _, err := ApplyMove(board, models.Black, 0, 0); err != models.ErrInvalidMove {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if _, _, err := ApplyMove(board, models.Black, 3, 3); err != models.ErrInvalidMove {
		t.Fatalf("expected ErrInvalidMove on occupied cell, got %v", err)
	}
}
