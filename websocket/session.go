package websocket

import (
	"context"
	"fmt"

	"github.com/iamasit07/othello/backend/bot"
	"github.com/iamasit07/othello/backend/game"
	"github.com/iamasit07/othello/backend/models"
)

// GameSession is the per-connection state of one live game against the AI.
// Each websocket connection owns exactly one session and drives it from a
// single goroutine, so no locking is needed here.
type GameSession struct {
	Board       models.Board
	NextPlayer  models.Player
	ValidMoves  []models.Move
	HumanPlayer models.Player
	Difficulty  bot.Difficulty
	GameOver    bool
	Winner      models.Player
	Started     bool
}

func (s *GameSession) aiPlayer() models.Player {
	return s.HumanPlayer.Opponent()
}

// Start resets the session to a fresh game. Black always moves first.
func (s *GameSession) Start(humanPlayer models.Player, difficulty bot.Difficulty) {
	s.Board = game.NewBoard()
	s.NextPlayer = models.Black
	s.ValidMoves = game.LegalMoves(s.Board, models.Black)
	s.HumanPlayer = humanPlayer
	s.Difficulty = difficulty
	s.GameOver = false
	s.Winner = models.Empty
	s.Started = true
}

// PlayHuman applies the human's move if it is their turn.
func (s *GameSession) PlayHuman(row, col int) (models.GameResult, error) {
	if !s.Started {
		return models.GameResult{}, fmt.Errorf("no game in progress")
	}
	if s.GameOver {
		return models.GameResult{}, fmt.Errorf("game is over")
	}
	if s.NextPlayer != s.HumanPlayer {
		return models.GameResult{}, fmt.Errorf("not your turn")
	}

	result, err := game.MakeMove(s.Board, s.HumanPlayer, row, col)
	if err != nil {
		return models.GameResult{}, err
	}
	s.apply(result)
	return result, nil
}

// PlayAI lets the bot take one turn.
func (s *GameSession) PlayAI(ctx context.Context, aiBot *bot.Bot) (models.GameResult, bot.Result, error) {
	player := s.aiPlayer()
	aiResult, err := aiBot.FindBestMove(ctx, s.Board, player, s.Difficulty)
	if err != nil {
		return models.GameResult{}, bot.Result{}, err
	}

	result, err := game.MakeMove(s.Board, player, aiResult.Move.Row, aiResult.Move.Col)
	if err != nil {
		return models.GameResult{}, bot.Result{}, err
	}
	s.apply(result)
	return result, aiResult, nil
}

// AITurn reports whether the bot is due to move.
func (s *GameSession) AITurn() bool {
	return s.Started && !s.GameOver && s.NextPlayer == s.aiPlayer()
}

func (s *GameSession) apply(result models.GameResult) {
	s.Board = result.Board
	s.NextPlayer = result.NextPlayer
	s.ValidMoves = result.ValidMoves
	s.GameOver = result.GameOver
	s.Winner = result.Winner
}
