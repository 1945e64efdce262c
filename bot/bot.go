package bot

import (
	"context"
	"log"
	"math"
	"math/rand"

	"github.com/iamasit07/othello/backend/cache"
	"github.com/iamasit07/othello/backend/game"
	"github.com/iamasit07/othello/backend/models"
)

// DefaultSearchDepth is used when no depth is configured. Difficulty does
// not change the depth: every level searches the same tree and differs
// only in how the root scores are turned into a pick, which also lets all
// levels share one cache entry per position.
const DefaultSearchDepth = 6

// Result describes how an AI move was produced.
type Result struct {
	Move     models.Move
	CacheHit bool
	Source   string // "search", "cache", "single" or "fallback"
	Depth    int
}

// Bot owns the pieces an AI turn needs: the hash table for cache keys, the
// position cache, the search depth and a random source for the non-greedy
// difficulty policies. Construct one at startup and share it.
type Bot struct {
	hasher    *ZobristHasher
	positions *cache.PositionCache
	depth     int
	rng       *rand.Rand
}

func New(hasher *ZobristHasher, positions *cache.PositionCache, depth int, rng *rand.Rand) *Bot {
	if depth <= 0 {
		depth = DefaultSearchDepth
	}
	return &Bot{hasher: hasher, positions: positions, depth: depth, rng: rng}
}

// FindBestMove picks a move for player under the given difficulty.
//
// The caller is expected to have resolved forced passes already; being
// invoked with no legal moves is a contract violation and is surfaced as
// models.ErrNoLegalMoves. Cache failures are never fatal: a broken or
// missing cache just means a fresh search.
func (b *Bot) FindBestMove(ctx context.Context, board models.Board, player models.Player, difficulty Difficulty) (Result, error) {
	if _, err := ParseDifficulty(string(difficulty)); err != nil {
		return Result{}, err
	}

	moves := game.LegalMoves(board, player)
	if len(moves) == 0 {
		log.Printf("[AI] called with no legal moves for player %d", player)
		return Result{}, models.ErrNoLegalMoves
	}

	// nothing to choose between
	if len(moves) == 1 {
		return Result{Move: moves[0], Source: "single"}, nil
	}

	hash := b.hasher.Hash(board, player)

	scores, cachedDepth, cacheHit := b.positions.Lookup(ctx, hash, player, b.depth)
	if cacheHit {
		log.Printf("[AI] cache hit: hash=%d player=%d depth=%d", hash, player, cachedDepth)
	} else {
		log.Printf("[AI] cache miss: running search at depth %d", b.depth)
		_, _, scores = Negamax(board, player, b.depth, math.Inf(-1), math.Inf(1), true)

		if len(scores) == 0 {
			// defensive: with legal moves available the search always
			// produces scores, but never fail the request over it
			log.Printf("[AI] search produced no evaluations, falling back to random move")
			return Result{Move: moves[b.rng.Intn(len(moves))], Source: "fallback"}, nil
		}

		if b.positions.Store(ctx, hash, player, b.depth, scores) {
			log.Printf("[AI] stored evaluations: hash=%d player=%d depth=%d", hash, player, b.depth)
		}
	}

	move, err := SelectMove(scores, difficulty, b.rng)
	if err != nil {
		// scores are non-empty and the difficulty was validated above
		log.Printf("[AI] move selection failed: %v, falling back to random move", err)
		return Result{Move: moves[b.rng.Intn(len(moves))], Source: "fallback"}, nil
	}

	result := Result{Move: move, CacheHit: cacheHit, Depth: b.depth, Source: "search"}
	if cacheHit {
		result.Depth = cachedDepth
		result.Source = "cache"
	}
	return result, nil
}
