package holdem

import "holdem-server/pkg/deck"

// Seat identifies a user joining a single-process table
type Seat struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Chips int    `json:"chips"`
}

// LocalPlayer is a player that lives in memory for the duration of the process
type LocalPlayer struct {
	PlayerID    string       `json:"id"`
	DisplayName string       `json:"name"`
	Cards       [2]deck.Card `json:"cards"`
	ChipAmount  int          `json:"chipAmount"`
	CurrentBet  int          `json:"bet"`
	State       Status       `json:"state"`
	Acted       bool         `json:"hadTurn"`
}

var _ Player[LocalPlayer] = LocalPlayer{}

// NewLocalPlayer seats a user with the given deal
func NewLocalPlayer(s Seat, d Deal) LocalPlayer {
	return LocalPlayer{
		PlayerID:    s.ID,
		DisplayName: s.Name,
		Cards:       d.HoleCards,
		ChipAmount:  s.Chips,
		CurrentBet:  d.Bet,
		State:       d.Status,
		Acted:       d.HadTurn,
	}
}

// RedealLocalPlayer keeps the player's identity and stack for a new deal
func RedealLocalPlayer(prev LocalPlayer, d Deal) LocalPlayer {
	return NewLocalPlayer(Seat{
		ID:    prev.PlayerID,
		Name:  prev.DisplayName,
		Chips: prev.ChipAmount,
	}, d)
}

// ID returns the player's identifier
func (l LocalPlayer) ID() string {
	return l.PlayerID
}

// Name returns the display name
func (l LocalPlayer) Name() string {
	return l.DisplayName
}

// HoleCards returns the two private cards
func (l LocalPlayer) HoleCards() [2]deck.Card {
	return l.Cards
}

// Chips returns the stack
func (l LocalPlayer) Chips() int {
	return l.ChipAmount
}

// Bet returns the current bet
func (l LocalPlayer) Bet() int {
	return l.CurrentBet
}

// Status returns the status
func (l LocalPlayer) Status() Status {
	return l.State
}

// HadTurn returns true if the player acted this round
func (l LocalPlayer) HadTurn() bool {
	return l.Acted
}

// WithChips returns a copy with a new stack
func (l LocalPlayer) WithChips(chips int) LocalPlayer {
	l.ChipAmount = chips
	return l
}

// WithBet returns a copy with a new bet
func (l LocalPlayer) WithBet(bet int) LocalPlayer {
	l.CurrentBet = bet
	return l
}

// WithHadTurn returns a copy with a new had-turn flag
func (l LocalPlayer) WithHadTurn(hadTurn bool) LocalPlayer {
	l.Acted = hadTurn
	return l
}

// Fold returns a folded copy
func (l LocalPlayer) Fold() LocalPlayer {
	l.State = StatusFolded
	return l
}
