package holdem

import (
	"errors"
	"fmt"
)

// PlayerError is an error caused by a player's input
// It is safe to show to the player, who can retry with a different action.
type PlayerError string

func (p PlayerError) Error() string {
	return string(p)
}

func newPlayerError(format string, a ...interface{}) PlayerError {
	return PlayerError(fmt.Sprintf(format, a...))
}

// IsPlayerError returns true if the error was caused by a player's input
func IsPlayerError(err error) bool {
	var pe PlayerError
	return errors.As(err, &pe)
}

// player errors
var (
	ErrPlayerNotFound  = PlayerError("player is not in the game")
	ErrNotYourTurn     = PlayerError("it is not your turn")
	ErrNoPendingTurn   = PlayerError("no more turns this round")
	ErrPlayerFolded    = PlayerError("you have already folded")
	ErrBetExceedsStack = PlayerError("you do not have enough chips")
	ErrUnknownAction   = PlayerError("unknown action")
)

// lifecycle errors
var (
	ErrNoPlayers      = errors.New("there must be at least one player")
	ErrTooManyPlayers = fmt.Errorf("there cannot be more than %d players", MaxPlayers)
	ErrHandFinished   = errors.New("the hand is finished")
	ErrHandInProgress = errors.New("the hand is still in progress")
	ErrLastPlayer     = errors.New("cannot remove the last player")
)

// ErrNoWinners means showdown was reached with nobody left to win the pot
var ErrNoWinners = errors.New("no eligible winners")

func errBetTooLow(bet, minBet int) PlayerError {
	return newPlayerError("bet of ${%d} is below the minimum of ${%d}", bet, minBet)
}
