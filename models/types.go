package models

// to represent the two sides and empty cells on the board
type Player int

const (
	Empty Player = 0
	Black Player = 1
	White Player = -1
)

// board dimensions
const BoardSize = 8

// Board is an 8x8 grid of cell states. It is a value type: moves produce a
// new Board instead of mutating the old one, so snapshots taken during
// search or caching stay valid.
type Board [BoardSize][BoardSize]Player

// Move is a (row, col) pair, both in [0,7]
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MoveScore pairs a move with its evaluation score.
type MoveScore struct {
	Move  Move
	Score float64
}

// MoveScores is an ordered list of scored moves. The order matters: it is
// the row-major enumeration order of the legal moves, and tie-breaks in
// move selection rely on it being stable.
type MoveScores []MoveScore

// GameResult reports the state of the game after one applied move.
type GameResult struct {
	Board      Board
	NextPlayer Player // Empty when the game is over
	ValidMoves []Move
	GameOver   bool
	Winner     Player // Empty on draw or while the game is running
}

// Opponent returns the opposing side.
func (p Player) Opponent() Player {
	return -p
}

// Best returns the first-encountered move with the maximum score. Later
// equal scores do not overwrite, which keeps tie-breaks deterministic.
func (s MoveScores) Best() (Move, float64, bool) {
	if len(s) == 0 {
		return Move{}, 0, false
	}
	best := s[0]
	for _, ms := range s[1:] {
		if ms.Score > best.Score {
			best = ms
		}
	}
	return best.Move, best.Score, true
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove  Error = "invalid move"
	ErrNoLegalMoves Error = "no legal moves available"
	ErrBadBoard     Error = "board must be an 8x8 grid of -1, 0 or 1"
	ErrBadPlayer    Error = "player must be 1 or -1"
)

// BoardFromGrid validates a raw 8x8 grid from a request and converts it
// into a Board. Every construction from external input goes through this
// check.
func BoardFromGrid(grid [][]int) (Board, error) {
	var board Board
	if len(grid) != BoardSize {
		return board, ErrBadBoard
	}
	for r, row := range grid {
		if len(row) != BoardSize {
			return board, ErrBadBoard
		}
		for c, cell := range row {
			if cell != 0 && cell != 1 && cell != -1 {
				return board, ErrBadBoard
			}
			board[r][c] = Player(cell)
		}
	}
	return board, nil
}

// Grid converts a Board back into the wire representation.
func (b Board) Grid() [][]int {
	grid := make([][]int, BoardSize)
	for r := 0; r < BoardSize; r++ {
		grid[r] = make([]int, BoardSize)
		for c := 0; c < BoardSize; c++ {
			grid[r][c] = int(b[r][c])
		}
	}
	return grid
}

// ParsePlayer validates the wire encoding of a side.
func ParsePlayer(v int) (Player, error) {
	if v != 1 && v != -1 {
		return Empty, ErrBadPlayer
	}
	return Player(v), nil
}
