package websocket

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/othello/backend/bot"
	"github.com/iamasit07/othello/backend/models"
)

type ClientMessage struct {
	Type       string `json:"type"`
	Player     int    `json:"player,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
}

type ServerMessage struct {
	Type       string        `json:"type"`
	By         string        `json:"by,omitempty"` // "human" or "ai"
	Move       *models.Move  `json:"move,omitempty"`
	Board      [][]int       `json:"board,omitempty"`
	NextPlayer int           `json:"next_player"`
	ValidMoves []models.Move `json:"valid_moves,omitempty"`
	GameOver   bool          `json:"game_over"`
	Winner     int           `json:"winner"`
	CacheHit   bool          `json:"cache_hit,omitempty"`
	Source     string        `json:"source,omitempty"`
	Code       string        `json:"code,omitempty"`
	Message    string        `json:"message,omitempty"`
}

// CreateUpgrader builds the websocket upgrader with origin checking
// against the configured origins. An empty list allows all origins.
func CreateUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if allowed == origin {
					return true
				}
			}
			return false
		},
	}
}

// HandleConnection runs one live game against the AI over a single
// websocket connection. The session dies with the connection; nothing is
// persisted beyond the position cache the bot already maintains.
func HandleConnection(conn *websocket.Conn, aiBot *bot.Bot) {
	defer conn.Close()

	session := &GameSession{}

	for {
		var message ClientMessage
		if err := conn.ReadJSON(&message); err != nil {
			log.Printf("[WS] connection closed: %v", err)
			break
		}

		switch message.Type {
		case "new_game":
			handleNewGame(conn, session, aiBot, message)
		case "move":
			handleMove(conn, session, aiBot, message)
		default:
			sendError(conn, "unknown_message_type", "Unknown message type")
		}
	}
}

func handleNewGame(conn *websocket.Conn, session *GameSession, aiBot *bot.Bot, message ClientMessage) {
	player, err := models.ParsePlayer(message.Player)
	if err != nil {
		sendError(conn, "bad_player", err.Error())
		return
	}

	if message.Difficulty == "" {
		message.Difficulty = string(bot.DifficultyMedium)
	}
	difficulty, err := bot.ParseDifficulty(message.Difficulty)
	if err != nil {
		sendError(conn, "bad_difficulty", err.Error())
		return
	}

	session.Start(player, difficulty)
	log.Printf("[WS] new game: human=%d difficulty=%s", player, difficulty)

	sendState(conn, session, "game_start", "", nil, bot.Result{})
	runAITurns(conn, session, aiBot)
}

func handleMove(conn *websocket.Conn, session *GameSession, aiBot *bot.Bot, message ClientMessage) {
	if _, err := session.PlayHuman(message.Row, message.Col); err != nil {
		sendError(conn, "invalid_move", err.Error())
		return
	}

	move := models.Move{Row: message.Row, Col: message.Col}
	sendState(conn, session, "game_state", "human", &move, bot.Result{})
	runAITurns(conn, session, aiBot)
}

// runAITurns plays AI moves until it is the human's turn again or the game
// ends; consecutive AI turns happen when the human is forced to pass.
func runAITurns(conn *websocket.Conn, session *GameSession, aiBot *bot.Bot) {
	for session.AITurn() {
		_, aiResult, err := session.PlayAI(context.Background(), aiBot)
		if err != nil {
			log.Printf("[WS] AI turn failed: %v", err)
			sendError(conn, "ai_error", "Failed to compute AI move")
			return
		}
		move := aiResult.Move
		sendState(conn, session, "game_state", "ai", &move, aiResult)
	}
}

func sendState(conn *websocket.Conn, session *GameSession, msgType, by string, move *models.Move, aiResult bot.Result) {
	msg := ServerMessage{
		Type:       msgType,
		By:         by,
		Move:       move,
		Board:      session.Board.Grid(),
		NextPlayer: int(session.NextPlayer),
		ValidMoves: session.ValidMoves,
		GameOver:   session.GameOver,
		Winner:     int(session.Winner),
		CacheHit:   aiResult.CacheHit,
		Source:     aiResult.Source,
	}
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[WS] failed to send message: %v", err)
	}
}

func sendError(conn *websocket.Conn, code, message string) {
	if err := conn.WriteJSON(ServerMessage{Type: "error", Code: code, Message: message}); err != nil {
		log.Printf("[WS] failed to send error message: %v", err)
	}
}
