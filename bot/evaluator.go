package bot

import (
	"gonum.org/v1/gonum/floats"

	"github.com/iamasit07/othello/backend/game"
	"github.com/iamasit07/othello/backend/models"
)

// forcing moves capture at least this many discs
const forcingFlipCount = 3

var corners = [4]models.Move{{Row: 0, Col: 0}, {Row: 0, Col: 7}, {Row: 7, Col: 0}, {Row: 7, Col: 7}}

// the X-square diagonally inside each corner
var xSquares = [4]models.Move{{Row: 1, Col: 1}, {Row: 1, Col: 6}, {Row: 6, Col: 1}, {Row: 6, Col: 6}}

// the remaining diagonal/edge neighbours around each corner
var cSquares = [4][6]models.Move{
	{{Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 1, Col: 2}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 6}, {Row: 1, Col: 7}, {Row: 0, Col: 5}, {Row: 2, Col: 7}, {Row: 1, Col: 5}, {Row: 2, Col: 6}},
	{{Row: 6, Col: 0}, {Row: 7, Col: 1}, {Row: 5, Col: 0}, {Row: 7, Col: 2}, {Row: 5, Col: 1}, {Row: 6, Col: 2}},
	{{Row: 6, Col: 7}, {Row: 7, Col: 6}, {Row: 5, Col: 7}, {Row: 7, Col: 5}, {Row: 5, Col: 6}, {Row: 6, Col: 5}},
}

// Evaluate scores a board from player's perspective; positive favors the
// player. Six heuristics, each normalized to roughly [-100, 100], are
// combined with weights that shift as the board fills up: corners and
// stability gain importance, mobility and tempo fade, and raw disc parity
// only matters near the end.
func Evaluate(board models.Board, player models.Player) float64 {
	progress := gameProgress(board)

	weights := []float64{
		150.0 + 200.0*progress, // corner: 150 -> 350
		120.0 - 80.0*progress,  // mobility: 120 -> 40
		5.0 + 95.0*progress,    // parity: 5 -> 100
		100.0 + 150.0*progress, // stability: 100 -> 250
		60.0 - 30.0*progress,   // frontier: 60 -> 30
		40.0 * (1.0 - progress), // tempo: 40 -> 0
	}
	components := []float64{
		cornerEvaluation(board, player),
		mobility(board, player),
		parity(board, player, progress),
		stability(board, player),
		frontier(board, player),
		tempo(board, player),
	}

	return floats.Dot(weights, components) / 100.0
}

func gameProgress(board models.Board) float64 {
	filled := float64(game.CountFilled(board))
	progress := filled / 64.0
	if progress > 1.0 {
		return 1.0
	}
	return progress
}

// relativeAdvantage maps (mine, theirs) onto [-100, 100], zero when both
// are zero.
func relativeAdvantage(mine, theirs float64) float64 {
	total := mine + theirs
	if total == 0 {
		return 0.0
	}
	return 100.0 * (mine - theirs) / total
}

// cornerEvaluation rewards occupied corners and penalizes discs sitting in
// the danger zone of an empty corner: -25 for the X-square, -5 per
// occupied C-square.
func cornerEvaluation(board models.Board, player models.Player) float64 {
	opponent := player.Opponent()
	var myScore, oppScore float64

	for i, corner := range corners {
		switch board[corner.Row][corner.Col] {
		case player:
			myScore += 100
		case opponent:
			oppScore += 100
		default:
			x := xSquares[i]
			switch board[x.Row][x.Col] {
			case player:
				myScore -= 25
			case opponent:
				oppScore -= 25
			}
			for _, cs := range cSquares[i] {
				switch board[cs.Row][cs.Col] {
				case player:
					myScore -= 5
				case opponent:
					oppScore -= 5
				}
			}
		}
	}

	return myScore - oppScore
}

// mobility blends current legal-move counts (70%) with potential mobility
// (30%): empty cells adjacent to an enemy disc are squares that may open
// up later.
func mobility(board models.Board, player models.Player) float64 {
	opponent := player.Opponent()

	myCurrent := float64(len(game.LegalMoves(board, player)))
	oppCurrent := float64(len(game.LegalMoves(board, opponent)))

	var myPotential, oppPotential float64
	for r := 0; r < models.BoardSize; r++ {
		for c := 0; c < models.BoardSize; c++ {
			if board[r][c] != models.Empty {
				continue
			}
			adjToOpponent := false
			adjToMe := false
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if !game.InBounds(nr, nc) {
						continue
					}
					if board[nr][nc] == opponent {
						adjToOpponent = true
					}
					if board[nr][nc] == player {
						adjToMe = true
					}
				}
			}
			if adjToOpponent {
				myPotential++
			}
			if adjToMe {
				oppPotential++
			}
		}
	}

	myTotal := 0.7*myCurrent + 0.3*myPotential
	oppTotal := 0.7*oppCurrent + 0.3*oppPotential
	return relativeAdvantage(myTotal, oppTotal)
}

// frontier counts discs adjacent to at least one empty cell. Fewer is
// better, so the advantage is computed with the sign flipped.
func frontier(board models.Board, player models.Player) float64 {
	opponent := player.Opponent()
	var myFrontier, oppFrontier float64

	for r := 0; r < models.BoardSize; r++ {
		for c := 0; c < models.BoardSize; c++ {
			if board[r][c] != player && board[r][c] != opponent {
				continue
			}
			exposed := false
			for dr := -1; dr <= 1 && !exposed; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := r+dr, c+dc
					if game.InBounds(nr, nc) && board[nr][nc] == models.Empty {
						exposed = true
						break
					}
				}
			}
			if exposed {
				if board[r][c] == player {
					myFrontier++
				} else {
					oppFrontier++
				}
			}
		}
	}

	return relativeAdvantage(oppFrontier, myFrontier)
}

// stability marks discs that cannot be flipped: runs from each occupied
// corner along its row, column and diagonal while the color matches, plus
// every disc of a uniformly colored full edge.
func stability(board models.Board, player models.Player) float64 {
	opponent := player.Opponent()
	var stable [models.BoardSize][models.BoardSize]int

	markFromCorner := func(cr, cc int) {
		piece := board[cr][cc]
		if piece == models.Empty {
			return
		}
		dr := 1
		if cr == 7 {
			dr = -1
		}
		dc := 1
		if cc == 7 {
			dc = -1
		}

		for c := cc; game.InBounds(cr, c) && board[cr][c] == piece; c += dc {
			stable[cr][c] = 2
		}
		for r := cr; game.InBounds(r, cc) && board[r][cc] == piece; r += dr {
			stable[r][cc] = 2
		}
		for r, c := cr, cc; game.InBounds(r, c) && board[r][c] == piece; r, c = r+dr, c+dc {
			stable[r][c] = 2
		}
	}

	for _, corner := range corners {
		markFromCorner(corner.Row, corner.Col)
	}

	// a full edge of one color is stable end to end
	markEdge := func(cells [models.BoardSize]models.Move) {
		piece := board[cells[0].Row][cells[0].Col]
		if piece == models.Empty {
			return
		}
		for _, cell := range cells {
			if board[cell.Row][cell.Col] != piece {
				return
			}
		}
		for _, cell := range cells {
			stable[cell.Row][cell.Col] = 2
		}
	}

	var top, bottom, left, right [models.BoardSize]models.Move
	for i := 0; i < models.BoardSize; i++ {
		top[i] = models.Move{Row: 0, Col: i}
		bottom[i] = models.Move{Row: 7, Col: i}
		left[i] = models.Move{Row: i, Col: 0}
		right[i] = models.Move{Row: i, Col: 7}
	}
	markEdge(top)
	markEdge(bottom)
	markEdge(left)
	markEdge(right)

	var myStability, oppStability float64
	for r := 0; r < models.BoardSize; r++ {
		for c := 0; c < models.BoardSize; c++ {
			switch board[r][c] {
			case player:
				myStability += float64(stable[r][c])
			case opponent:
				oppStability += float64(stable[r][c])
			}
		}
	}

	return relativeAdvantage(myStability, oppStability)
}

// parity is the disc-count advantage. Late in the game (progress > 0.85)
// a leading side gets it amplified up to 3x, so converting a lead into
// discs dominates the endgame.
func parity(board models.Board, player models.Player, progress float64) float64 {
	black, white := game.CountDiscs(board)
	myCoins, oppCoins := float64(black), float64(white)
	if player == models.White {
		myCoins, oppCoins = oppCoins, myCoins
	}

	base := relativeAdvantage(myCoins, oppCoins)
	if progress > 0.85 && myCoins > oppCoins {
		base *= 1.0 + 2.0*(progress-0.85)/0.15
	}
	return base
}

// tempo compares the supply of forcing moves: legal moves that capture
// three or more discs.
func tempo(board models.Board, player models.Player) float64 {
	opponent := player.Opponent()

	countForcing := func(p models.Player) float64 {
		var forcing float64
		for _, m := range game.LegalMoves(board, p) {
			if len(game.FlipsFor(board, p, m.Row, m.Col)) >= forcingFlipCount {
				forcing++
			}
		}
		return forcing
	}

	return relativeAdvantage(countForcing(player), countForcing(opponent))
}
