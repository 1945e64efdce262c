package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/iamasit07/othello/backend/bot"
	"github.com/iamasit07/othello/backend/game"
	"github.com/iamasit07/othello/backend/models"
)

type MoveRequest struct {
	Board  [][]int `json:"board"`
	Player int     `json:"player"`
	Row    int     `json:"row"`
	Col    int     `json:"col"`
}

type AIMoveRequest struct {
	Board      [][]int `json:"board"`
	Player     int     `json:"player"`
	Difficulty string  `json:"difficulty"`
}

type ValidMovesRequest struct {
	Board  [][]int `json:"board"`
	Player int     `json:"player"`
}

type MoveResponse struct {
	Board      [][]int       `json:"board"`
	NextPlayer int           `json:"next_player"`
	ValidMoves []models.Move `json:"valid_moves"`
	GameOver   bool          `json:"game_over"`
	Winner     int           `json:"winner"`
}

type AIMoveResponse struct {
	MoveResponse
	Move     models.Move `json:"move"`
	CacheHit bool        `json:"cache_hit"`
	Source   string      `json:"source"`
	Depth    int         `json:"depth"`
}

type ValidMovesResponse struct {
	ValidMoves []models.Move `json:"valid_moves"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleMove applies a human move and returns the resulting game state.
func HandleMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	board, player, ok := parsePosition(w, req.Board, req.Player)
	if !ok {
		return
	}
	if !game.InBounds(req.Row, req.Col) {
		writeJSONError(w, "row and col must be in [0,7]", http.StatusBadRequest)
		return
	}

	result, err := game.MakeMove(board, player, req.Row, req.Col)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toMoveResponse(result), http.StatusOK)
}

// MakeHandleAIMove returns the handler for AI move requests, bound to the
// bot constructed at startup.
func MakeHandleAIMove(aiBot *bot.Bot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req AIMoveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONError(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		board, player, ok := parsePosition(w, req.Board, req.Player)
		if !ok {
			return
		}

		// defaulting happens here, not in the selector
		if req.Difficulty == "" {
			req.Difficulty = string(bot.DifficultyMedium)
		}
		difficulty, err := bot.ParseDifficulty(req.Difficulty)
		if err != nil {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		aiResult, err := aiBot.FindBestMove(r.Context(), board, player, difficulty)
		if err != nil {
			if errors.Is(err, models.ErrNoLegalMoves) {
				writeJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("[AI] move request failed: %v", err)
			writeJSONError(w, "Failed to compute AI move", http.StatusInternalServerError)
			return
		}

		result, err := game.MakeMove(board, player, aiResult.Move.Row, aiResult.Move.Col)
		if err != nil {
			log.Printf("[AI] selected move %v was not applicable: %v", aiResult.Move, err)
			writeJSONError(w, "Failed to apply AI move", http.StatusInternalServerError)
			return
		}

		writeJSON(w, AIMoveResponse{
			MoveResponse: toMoveResponse(result),
			Move:         aiResult.Move,
			CacheHit:     aiResult.CacheHit,
			Source:       aiResult.Source,
			Depth:        aiResult.Depth,
		}, http.StatusOK)
	}
}

// HandleValidMoves lists the legal moves for a position.
func HandleValidMoves(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ValidMovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	board, player, ok := parsePosition(w, req.Board, req.Player)
	if !ok {
		return
	}

	moves := game.LegalMoves(board, player)
	if moves == nil {
		moves = []models.Move{}
	}
	writeJSON(w, ValidMovesResponse{ValidMoves: moves}, http.StatusOK)
}

func parsePosition(w http.ResponseWriter, grid [][]int, playerValue int) (models.Board, models.Player, bool) {
	board, err := models.BoardFromGrid(grid)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return models.Board{}, models.Empty, false
	}
	player, err := models.ParsePlayer(playerValue)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return models.Board{}, models.Empty, false
	}
	return board, player, true
}

func toMoveResponse(result models.GameResult) MoveResponse {
	moves := result.ValidMoves
	if moves == nil {
		moves = []models.Move{}
	}
	return MoveResponse{
		Board:      result.Board.Grid(),
		NextPlayer: int(result.NextPlayer),
		ValidMoves: moves,
		GameOver:   result.GameOver,
		Winner:     int(result.Winner),
	}
}

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, ErrorResponse{Error: message}, status)
}
