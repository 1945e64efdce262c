package game

import "github.com/iamasit07/othello/backend/models"

// the eight scan directions, row-major
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func InBounds(row, col int) bool {
	return row >= 0 && row < models.BoardSize && col >= 0 && col < models.BoardSize
}

// FlipsFor returns the opponent discs captured if player plays (row, col).
// A direction contributes only when a contiguous run of opponent discs is
// closed by one of the player's own discs before an edge or empty cell.
// An occupied or out-of-bounds target yields no flips.
func FlipsFor(board models.Board, player models.Player, row, col int) []models.Move {
	if !InBounds(row, col) {
		return nil
	}
	if board[row][col] != models.Empty {
		return nil
	}

	opponent := player.Opponent()
	var flips []models.Move

	for _, dir := range directions {
		r, c := row+dir[0], col+dir[1]
		var line []models.Move

		for InBounds(r, c) && board[r][c] == opponent {
			line = append(line, models.Move{Row: r, Col: c})
			r += dir[0]
			c += dir[1]
		}

		if len(line) > 0 && InBounds(r, c) && board[r][c] == player {
			flips = append(flips, line...)
		}
	}

	return flips
}

// LegalMoves returns every cell where the player captures at least one
// disc, in row-major scan order. Several callers depend on that order for
// deterministic tie-breaks, so it must not change.
func LegalMoves(board models.Board, player models.Player) []models.Move {
	var moves []models.Move
	for r := 0; r < models.BoardSize; r++ {
		for c := 0; c < models.BoardSize; c++ {
			if len(FlipsFor(board, player, r, c)) > 0 {
				moves = append(moves, models.Move{Row: r, Col: c})
			}
		}
	}
	return moves
}
