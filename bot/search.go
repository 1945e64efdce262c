package bot

import (
	"math"

	"github.com/iamasit07/othello/backend/game"
	"github.com/iamasit07/othello/backend/models"
)

// Negamax searches the position with alpha-beta pruning. Scores are always
// from the perspective of the player to move at the current node.
//
// When collectRoot is true every root move's score is recorded in the
// returned MoveScores, in the row-major order legal moves are generated;
// that full map is what gets cached and fed to the difficulty policies.
// The best move is nil at leaf nodes (depth 0 or no legal moves), where
// only the static evaluation is returned.
func Negamax(board models.Board, player models.Player, depth int, alpha, beta float64, collectRoot bool) (float64, *models.Move, models.MoveScores) {
	moves := game.LegalMoves(board, player)
	if depth == 0 || len(moves) == 0 {
		return Evaluate(board, player), nil, nil
	}

	var best *models.Move
	bestScore := math.Inf(-1)
	var rootScores models.MoveScores
	if collectRoot {
		rootScores = make(models.MoveScores, 0, len(moves))
	}

	for _, move := range moves {
		next, _, err := game.ApplyMove(board, player, move.Row, move.Col)
		if err != nil {
			// moves came from LegalMoves so this should not happen;
			// skip rather than abort the search
			continue
		}

		var score float64
		opponent := player.Opponent()
		if len(game.LegalMoves(next, opponent)) > 0 {
			score, _, _ = Negamax(next, opponent, depth-1, -beta, -alpha, false)
			score = -score
		} else {
			// opponent is forced to pass, same side moves again
			score, _, _ = Negamax(next, player, depth-1, alpha, beta, false)
		}

		if collectRoot {
			rootScores = append(rootScores, models.MoveScore{Move: move, Score: score})
		}

		if score > bestScore {
			bestScore = score
			m := move
			best = &m
		}

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break // beta cutoff
		}
	}

	return bestScore, best, rootScores
}
