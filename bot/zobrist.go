package bot

import (
	"math/rand"

	"github.com/iamasit07/othello/backend/models"
)

// DefaultZobristSeed must stay fixed across deployments: cached positions
// are keyed by hashes derived from this table, and changing the seed
// invalidates every stored entry.
const DefaultZobristSeed = 42

// ZobristHasher fingerprints (board, side-to-move) pairs. The table holds
// one independent 63-bit value per (row, col, occupant) combination plus
// one per side to move; values stay in 63 bits so hashes fit a signed
// database BIGINT.
type ZobristHasher struct {
	pieces [models.BoardSize][models.BoardSize][2]int64
	side   [2]int64
}

// NewZobristHasher builds the table from seed with its own generator, so
// the sequence is reproducible across runs and restarts.
func NewZobristHasher(seed int64) *ZobristHasher {
	rng := rand.New(rand.NewSource(seed))
	z := &ZobristHasher{}
	for r := 0; r < models.BoardSize; r++ {
		for c := 0; c < models.BoardSize; c++ {
			z.pieces[r][c][0] = rng.Int63() // black
			z.pieces[r][c][1] = rng.Int63() // white
		}
	}
	z.side[0] = rng.Int63() // black to move
	z.side[1] = rng.Int63() // white to move
	return z
}

func (z *ZobristHasher) pieceValue(row, col int, piece models.Player) int64 {
	if piece == models.Black {
		return z.pieces[row][col][0]
	}
	return z.pieces[row][col][1]
}

func (z *ZobristHasher) sideValue(player models.Player) int64 {
	if player == models.Black {
		return z.side[0]
	}
	return z.side[1]
}

// Hash computes the fingerprint of a position from scratch. Empty cells
// contribute nothing.
func (z *ZobristHasher) Hash(board models.Board, player models.Player) int64 {
	var h int64
	for r := 0; r < models.BoardSize; r++ {
		for c := 0; c < models.BoardSize; c++ {
			if board[r][c] != models.Empty {
				h ^= z.pieceValue(r, c, board[r][c])
			}
		}
	}
	h ^= z.sideValue(player)
	return h
}

// UpdateHash incrementally rolls prev forward after a move: the old
// side-to-move value is XORed out, the new one in, and every changed cell
// swaps its contribution. Must agree bit-for-bit with Hash on the new
// board.
func (z *ZobristHasher) UpdateHash(prev int64, oldBoard, newBoard models.Board, oldPlayer, newPlayer models.Player) int64 {
	h := prev
	h ^= z.sideValue(oldPlayer)
	h ^= z.sideValue(newPlayer)

	for r := 0; r < models.BoardSize; r++ {
		for c := 0; c < models.BoardSize; c++ {
			oldPiece := oldBoard[r][c]
			newPiece := newBoard[r][c]
			if oldPiece == newPiece {
				continue
			}
			if oldPiece != models.Empty {
				h ^= z.pieceValue(r, c, oldPiece)
			}
			if newPiece != models.Empty {
				h ^= z.pieceValue(r, c, newPiece)
			}
		}
	}

	return h
}
