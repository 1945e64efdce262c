// Package cache persists AI move evaluations keyed by (position hash,
// player to move). Entries follow a depth-dominance rule: a shallower
// search result never overwrites a cached deeper one.
package cache

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/iamasit07/othello/backend/models"
)

// Record is the persisted shape of one cached position. Moves are keyed by
// the textual "(row,col)" form so the same record round-trips through any
// backend (Postgres JSONB, Redis JSON strings).
type Record struct {
	Hash   int64              `json:"hash"`
	Player int                `json:"player"`
	Depth  int                `json:"depth"`
	Moves  map[string]float64 `json:"moves"`
}

// Store is the backing key-value contract. Get returns (nil, nil) when no
// record exists for the key.
type Store interface {
	Get(ctx context.Context, hash int64, player int) (*Record, error)
	Put(ctx context.Context, rec Record) error
}

// PositionCache layers the depth-dominance policy and the move-key codec
// over a Store. A nil store is a valid degraded mode: every lookup misses
// and every store is a silent no-op.
type PositionCache struct {
	store Store
}

func New(store Store) *PositionCache {
	return &PositionCache{store: store}
}

// Available reports whether a backing store is configured.
func (c *PositionCache) Available() bool {
	return c != nil && c.store != nil
}

// Lookup returns the cached scores and their depth when an entry exists
// with depth >= minDepth. Backend failures degrade to a miss.
func (c *PositionCache) Lookup(ctx context.Context, hash int64, player models.Player, minDepth int) (models.MoveScores, int, bool) {
	if !c.Available() {
		return nil, 0, false
	}

	rec, err := c.store.Get(ctx, hash, int(player))
	if err != nil {
		log.Printf("[CACHE] lookup failed for hash=%d player=%d: %v", hash, player, err)
		return nil, 0, false
	}
	if rec == nil || rec.Depth < minDepth {
		return nil, 0, false
	}

	scores, err := DecodeMoves(rec.Moves)
	if err != nil {
		log.Printf("[CACHE] corrupt record for hash=%d player=%d: %v", hash, player, err)
		return nil, 0, false
	}

	return scores, rec.Depth, true
}

// Store writes the scores for a position unless a deeper-or-equal entry
// already exists; the dominance skip still counts as success, since the
// authoritative entry is in place. The check and the write are two
// separate operations, so two callers racing on the same key at the same
// depth can both write; last write wins, which is accepted here.
func (c *PositionCache) Store(ctx context.Context, hash int64, player models.Player, depth int, scores models.MoveScores) bool {
	if !c.Available() {
		return false
	}

	existing, err := c.store.Get(ctx, hash, int(player))
	if err != nil {
		log.Printf("[CACHE] store pre-check failed for hash=%d player=%d: %v", hash, player, err)
		return false
	}
	if existing != nil && existing.Depth >= depth {
		// depth dominance: the deeper entry stays
		return true
	}

	rec := Record{
		Hash:   hash,
		Player: int(player),
		Depth:  depth,
		Moves:  EncodeMoves(scores),
	}
	if err := c.store.Put(ctx, rec); err != nil {
		log.Printf("[CACHE] store failed for hash=%d player=%d depth=%d: %v", hash, player, depth, err)
		return false
	}
	return true
}

// FormatMoveKey renders a move as "(row,col)" - parenthesized, comma
// separated, no spaces. Readers and writers of the persisted schema must
// agree on this exact form.
func FormatMoveKey(m models.Move) string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}

// ParseMoveKey inverts FormatMoveKey.
func ParseMoveKey(key string) (models.Move, error) {
	var m models.Move
	n, err := fmt.Sscanf(key, "(%d,%d)", &m.Row, &m.Col)
	if err != nil || n != 2 {
		return models.Move{}, fmt.Errorf("malformed move key %q", key)
	}
	if m.Row < 0 || m.Row >= models.BoardSize || m.Col < 0 || m.Col >= models.BoardSize {
		return models.Move{}, fmt.Errorf("move key %q out of range", key)
	}
	return m, nil
}

// EncodeMoves converts scored moves into the persisted map form.
func EncodeMoves(scores models.MoveScores) map[string]float64 {
	moves := make(map[string]float64, len(scores))
	for _, ms := range scores {
		moves[FormatMoveKey(ms.Move)] = ms.Score
	}
	return moves
}

// DecodeMoves parses a persisted move map back into an ordered list. The
// map itself has no order, so entries are restored to row-major order to
// keep downstream tie-breaks deterministic.
func DecodeMoves(moves map[string]float64) (models.MoveScores, error) {
	scores := make(models.MoveScores, 0, len(moves))
	for key, score := range moves {
		move, err := ParseMoveKey(key)
		if err != nil {
			return nil, err
		}
		scores = append(scores, models.MoveScore{Move: move, Score: score})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Move.Row != scores[j].Move.Row {
			return scores[i].Move.Row < scores[j].Move.Row
		}
		return scores[i].Move.Col < scores[j].Move.Col
	})
	return scores, nil
}
