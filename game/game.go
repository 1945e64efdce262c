package game

import "github.com/iamasit07/othello/backend/models"

// MakeMove applies one move and resolves whose turn comes next. If the
// opponent has no legal reply the mover goes again (forced pass); if the
// mover has none either the game is over and the winner is whoever holds
// strictly more discs.
func MakeMove(board models.Board, player models.Player, row, col int) (models.GameResult, error) {
	next, _, err := ApplyMove(board, player, row, col)
	if err != nil {
		return models.GameResult{}, err
	}

	nextPlayer := player.Opponent()
	nextMoves := LegalMoves(next, nextPlayer)

	if len(nextMoves) == 0 {
		// opponent must pass
		nextPlayer = player
		nextMoves = LegalMoves(next, player)
	}

	result := models.GameResult{
		Board:      next,
		NextPlayer: nextPlayer,
		ValidMoves: nextMoves,
	}

	if len(nextMoves) == 0 {
		result.GameOver = true
		result.NextPlayer = models.Empty
		black, white := CountDiscs(next)
		if black > white {
			result.Winner = models.Black
		} else if white > black {
			result.Winner = models.White
		}
	}

	return result, nil
}
