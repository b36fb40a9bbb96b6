package render

import (
	"fmt"
	"math"

	mb "github.com/battledinghy/dinghy-backend/models/battleship"
)

// ShotLine is the first line of every fire reply.
func ShotLine(shot mb.ShotResult) string {
	label := shot.Coord.Label()

	switch shot.Outcome {
	case mb.ShotOutcomeMiss:
		return fmt.Sprintf("⭕ Miss at %s.", label)
	case mb.ShotOutcomeHit:
		return fmt.Sprintf("💥 Hit at %s!", label)
	case mb.ShotOutcomeSunk:
		return fmt.Sprintf("💥 Hit at %s! You sunk the %s! 🚤", label, mb.ShipName(shot.ShipSize))
	case mb.ShotOutcomeAlreadyFired:
		return fmt.Sprintf("Already fired at %s! Wasted shot.", label)
	default:
		return ""
	}
}

// ShotReply composes the full reply for one resolved shot: the shot
// line, a stats block, and either the winner banner or the next-turn
// prompt.
func ShotReply(result mb.TurnResult, gameNumber int, firingPlayer, nextPlayer string) string {
	shots := result.Hits + result.Misses

	if result.State == mb.GameStatePlayer1Won || result.State == mb.GameStatePlayer2Won {
		accuracy := 0
		if shots > 0 {
			accuracy = int(math.Round(float64(result.Hits) / float64(shots) * 100))
		}
		return fmt.Sprintf(
			"%s\n\n🎉 GAME OVER! @%s WINS! 🏆\n\n📊 Final Stats:\n• Shots: %d\n• Hits: %d 💥\n• Misses: %d ⭕\n• Accuracy: %d%%\n\nGame #%d",
			ShotLine(result.Shot), firingPlayer, shots, result.Hits, result.Misses, accuracy, gameNumber,
		)
	}

	return fmt.Sprintf(
		"%s\n\n📊 Stats: %d hits, %d misses\n🚢 Ships left: %d/3\n\n🎯 @%s's turn!\n\nGame #%d",
		ShotLine(result.Shot), result.Hits, result.Misses, result.ShipsAfloat, nextPlayer, gameNumber,
	)
}

// ChallengeReply announces a new game on the challenge thread.
func ChallengeReply(gameNumber int, challenger, opponent string) string {
	return fmt.Sprintf(
		"⚔️ Game #%d has begun! ⚔️\n\n@%s vs @%s\n\n🎯 @%s starts first!\n\nReply with 'Fire [coordinate]' (e.g., 'Fire C3') to take your shot!",
		gameNumber, challenger, opponent, challenger,
	)
}

// FirePrompt nudges a player who replied without a parsable coordinate.
func FirePrompt() string {
	return "🎯 Please specify a coordinate! Example: 'fire A1' (A-F, 1-6)"
}

// NotYourTurnReply rejects an out-of-turn shot without consuming it.
func NotYourTurnReply(firingPlayer, currentPlayer string) string {
	return fmt.Sprintf("Hold your fire, @%s! It's not your turn yet. 🎯 @%s's turn.", firingPlayer, currentPlayer)
}
