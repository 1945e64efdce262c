package bot

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/iamasit07/othello/backend/models"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// top-K pool size for the medium policy
const mediumTopK = 3

// easy policy knobs
const (
	easyNoise      = 0.3
	easyCenterBias = 0.1
)

// ParseDifficulty validates a difficulty label, case-insensitively. There
// is no default here: normalizing empty input is the request boundary's
// job, and an unknown label is a validation error.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(s)) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyExpert:
		return DifficultyExpert, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q: must be one of easy, medium, hard, expert", s)
	}
}

// SelectMove picks one move from a non-empty score list according to the
// difficulty policy. All policies consume the same scores; they differ
// only in how greedy the pick is.
func SelectMove(scores models.MoveScores, difficulty Difficulty, rng *rand.Rand) (models.Move, error) {
	if len(scores) == 0 {
		return models.Move{}, models.ErrNoLegalMoves
	}

	switch difficulty {
	case DifficultyHard, DifficultyExpert:
		return selectHardMove(scores), nil
	case DifficultyMedium:
		return selectMediumMove(scores, rng), nil
	case DifficultyEasy:
		return selectEasyMove(scores, rng), nil
	default:
		return models.Move{}, fmt.Errorf("invalid difficulty %q: must be one of easy, medium, hard, expert", string(difficulty))
	}
}

// selectHardMove takes the maximum score; on ties the first move in
// enumeration order wins.
func selectHardMove(scores models.MoveScores) models.Move {
	move, _, _ := scores.Best()
	return move
}

// selectMediumMove picks uniformly among the top three moves by score.
func selectMediumMove(scores models.MoveScores, rng *rand.Rand) models.Move {
	sorted := make(models.MoveScores, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	k := mediumTopK
	if len(sorted) < k {
		k = len(sorted)
	}
	return sorted[rng.Intn(k)].Move
}

// selectEasyMove perturbs every score with uniform noise in [-0.3, 0.3]
// and a small bonus for moves near the board center, then takes the
// noisy maximum.
func selectEasyMove(scores models.MoveScores, rng *rand.Rand) models.Move {
	best := scores[0].Move
	bestNoisy := math.Inf(-1)

	for _, ms := range scores {
		noise := rng.Float64()*2*easyNoise - easyNoise
		centerDistance := math.Abs(float64(ms.Move.Row)-3.5) + math.Abs(float64(ms.Move.Col)-3.5)
		centerBonus := easyCenterBias * (7.0 - centerDistance) / 7.0

		noisy := ms.Score + noise + centerBonus
		if noisy > bestNoisy {
			bestNoisy = noisy
			best = ms.Move
		}
	}

	return best
}
