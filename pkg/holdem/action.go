package holdem

// ActionType is the kind of move a player makes
type ActionType string

// action types
const (
	Fold ActionType = "fold"
	Bet  ActionType = "bet"
)

// Action is a move submitted by a player
// For a bet, Amount is the player's new total bet for the round, not an increment.
type Action struct {
	Type   ActionType `json:"type"`
	Amount int        `json:"bet,omitempty"`
}

// FoldAction returns a fold
func FoldAction() Action {
	return Action{Type: Fold}
}

// BetAction returns a bet that brings the player's total bet to amount
func BetAction(amount int) Action {
	return Action{Type: Bet, Amount: amount}
}
