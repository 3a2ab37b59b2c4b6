package board

import "math"

const (
	scoreMove           = 2
	scoreCapture        = 3
	scorePromote        = 5
	scoreMaterial       = 2
	scoreCenterDistance = 0.5

	// opponent piece count at which the end-game weight vanishes
	endgameMaterial = 12
)

// Score evaluates the board relative to the side to move, refreshing the game state first.
// A won game scores +Inf, a lost one -Inf and a draw 0.
func (b *Board) Score() float64 {
	b.UpdateState()
	if !b.state.IsRunning() {
		winner, ok := b.state.Winner()
		switch {
		case !ok:
			return 0
		case winner == b.turn:
			return math.Inf(1)
		default:
			return math.Inf(-1)
		}
	}

	opponent := b.turn.Opposite()
	var material, opponentPieces int
	for _, p := range b.AllPieces() {
		material += p.Value()
		if opponent.Owns(p) {
			opponentPieces++
		}
	}
	weight := endgameWeight(opponentPieces)

	// Material heuristic, Blue positive
	score := float64(material) * scoreMaterial * weight

	// Mobility and centralization heuristic
	for pos, p := range b.AllPieces() {
		var pieceScore float64
		for _, mv := range b.GenerateMovesFor(pos) {
			pieceScore += float64(scoreCapture * len(mv.Captures))
			pieceScore += scoreMove
			if mv.Promotes {
				pieceScore += scorePromote
			}
		}
		file, rank := pos.Col(), pos.Row()
		distance := max(3-file, file-4) + max(3-rank, rank-4)
		pieceScore -= float64(distance) * scoreCenterDistance * weight

		if SideBlue.Owns(p) {
			score += pieceScore
		} else {
			score -= pieceScore
		}
	}

	if b.turn == SideRed {
		score *= -1
	}
	return score
}

// endgameWeight rises from 0 to 1 as the opponent runs out of pieces.
func endgameWeight(opponentPieces int) float64 {
	return 1 - min(1, float64(opponentPieces)/endgameMaterial)
}
