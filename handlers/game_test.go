package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iamasit07/othello/backend/bot"
	"github.com/iamasit07/othello/backend/cache"
	"github.com/iamasit07/othello/backend/game"
	"github.com/iamasit07/othello/backend/models"
)

func newTestBot() *bot.Bot {
	return bot.New(bot.NewZobristHasher(bot.DefaultZobristSeed), cache.New(nil), 2, rand.New(rand.NewSource(1)))
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func startGrid() [][]int {
	return game.NewBoard().Grid()
}

func TestHandleMoveValid(t *testing.T) {
	rec := postJSON(t, HandleMove, MoveRequest{
		Board:  startGrid(),
		Player: int(models.Black),
		Row:    2,
		Col:    3,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp MoveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.NextPlayer != int(models.White) {
		t.Errorf("expected white to move next, got %d", resp.NextPlayer)
	}
	if resp.GameOver {
		t.Error("game should not be over after the first move")
	}
	if len(resp.ValidMoves) == 0 {
		t.Error("expected valid moves for white")
	}
	if resp.Board[2][3] != int(models.Black) || resp.Board[3][3] != int(models.Black) {
		t.Error("expected the move and flip to appear on the response board")
	}
}

func TestHandleMoveRejectsInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	HandleMove(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleMoveRejectsMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	HandleMove(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestHandleMoveRejectsBadPlayer(t *testing.T) {
	rec := postJSON(t, HandleMove, MoveRequest{
		Board:  startGrid(),
		Player: 0,
		Row:    2,
		Col:    3,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for player 0, got %d", rec.Code)
	}
}

func TestHandleMoveRejectsBadBoardShape(t *testing.T) {
	rec := postJSON(t, HandleMove, MoveRequest{
		Board:  [][]int{{0, 0}, {0, 0}},
		Player: int(models.Black),
		Row:    0,
		Col:    0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed board, got %d", rec.Code)
	}
}

func TestHandleMoveRejectsIllegalMove(t *testing.T) {
	rec := postJSON(t, HandleMove, MoveRequest{
		Board:  startGrid(),
		Player: int(models.Black),
		Row:    0,
		Col:    0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an illegal move, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error == "" {
		t.Error("expected a non-empty error message")
	}
}

func TestHandleMoveRejectsOutOfBounds(t *testing.T) {
	rec := postJSON(t, HandleMove, MoveRequest{
		Board:  startGrid(),
		Player: int(models.Black),
		Row:    8,
		Col:    0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an out-of-bounds move, got %d", rec.Code)
	}
}

func TestHandleValidMovesStartPosition(t *testing.T) {
	rec := postJSON(t, HandleValidMoves, ValidMovesRequest{
		Board:  startGrid(),
		Player: int(models.Black),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ValidMovesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []models.Move{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}}
	if len(resp.ValidMoves) != len(want) {
		t.Fatalf("expected %d moves, got %d", len(want), len(resp.ValidMoves))
	}
	for i, m := range resp.ValidMoves {
		if m != want[i] {
			t.Errorf("move %d: expected %v, got %v", i, want[i], m)
		}
	}
}

func TestHandleValidMovesEmptyListForStuckPlayer(t *testing.T) {
	grid := make([][]int, models.BoardSize)
	for r := range grid {
		grid[r] = make([]int, models.BoardSize)
	}
	grid[0][0] = int(models.Black)

	rec := postJSON(t, HandleValidMoves, ValidMovesRequest{Board: grid, Player: int(models.White)})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp ValidMovesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ValidMoves == nil || len(resp.ValidMoves) != 0 {
		t.Errorf("expected an empty (non-null) move list, got %v", resp.ValidMoves)
	}
}

func TestHandleAIMoveReturnsLegalMove(t *testing.T) {
	handler := MakeHandleAIMove(newTestBot())

	rec := postJSON(t, handler, AIMoveRequest{
		Board:      startGrid(),
		Player:     int(models.Black),
		Difficulty: "hard",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp AIMoveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	legal := map[models.Move]bool{}
	for _, m := range game.LegalMoves(game.NewBoard(), models.Black) {
		legal[m] = true
	}
	if !legal[resp.Move] {
		t.Errorf("AI returned an illegal move %v", resp.Move)
	}
	if resp.Source != "search" {
		t.Errorf("expected a fresh search without a cache backend, got %q", resp.Source)
	}
	if resp.CacheHit {
		t.Error("cache hit reported with no backing store")
	}
	if resp.NextPlayer != int(models.White) {
		t.Errorf("expected white to move next, got %d", resp.NextPlayer)
	}
}

func TestHandleAIMoveDefaultsToMedium(t *testing.T) {
	handler := MakeHandleAIMove(newTestBot())

	rec := postJSON(t, handler, AIMoveRequest{
		Board:  startGrid(),
		Player: int(models.Black),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with difficulty omitted, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleAIMoveAcceptsMixedCaseDifficulty(t *testing.T) {
	handler := MakeHandleAIMove(newTestBot())

	rec := postJSON(t, handler, AIMoveRequest{
		Board:      startGrid(),
		Player:     int(models.Black),
		Difficulty: "HARD",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for \"HARD\", got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleAIMoveRejectsUnknownDifficulty(t *testing.T) {
	handler := MakeHandleAIMove(newTestBot())

	rec := postJSON(t, handler, AIMoveRequest{
		Board:      startGrid(),
		Player:     int(models.Black),
		Difficulty: "bogus",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown difficulty, got %d", rec.Code)
	}
}

func TestHandleAIMoveNoLegalMoves(t *testing.T) {
	handler := MakeHandleAIMove(newTestBot())

	grid := make([][]int, models.BoardSize)
	for r := range grid {
		grid[r] = make([]int, models.BoardSize)
	}
	grid[0][0] = int(models.Black)

	rec := postJSON(t, handler, AIMoveRequest{
		Board:      grid,
		Player:     int(models.White),
		Difficulty: "hard",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 when no legal moves exist, got %d", rec.Code)
	}
}
