package game

import "github.com/iamasit07/othello/backend/models"

// NewBoard returns the standard Othello starting position.
func NewBoard() models.Board {
	var board models.Board
	board[3][3] = models.White
	board[3][4] = models.Black
	board[4][3] = models.Black
	board[4][4] = models.White
	return board
}

// ApplyMove plays (row, col) for player and returns the resulting board
// along with the flipped discs. The input board is left untouched; callers
// in the search tree rely on that. Returns models.ErrInvalidMove when the
// move captures nothing.
func ApplyMove(board models.Board, player models.Player, row, col int) (models.Board, []models.Move, error) {
	flips := FlipsFor(board, player, row, col)
	if len(flips) == 0 {
		return board, nil, models.ErrInvalidMove
	}

	next := board // Board is a value type, this is a copy
	next[row][col] = player
	for _, f := range flips {
		next[f.Row][f.Col] = player
	}

	return next, flips, nil
}

// CountDiscs returns the disc counts for black and white.
func CountDiscs(board models.Board) (black, white int) {
	for r := 0; r < models.BoardSize; r++ {
		for c := 0; c < models.BoardSize; c++ {
			switch board[r][c] {
			case models.Black:
				black++
			case models.White:
				white++
			}
		}
	}
	return black, white
}

// CountFilled returns the number of occupied cells.
func CountFilled(board models.Board) int {
	black, white := CountDiscs(board)
	return black + white
}
