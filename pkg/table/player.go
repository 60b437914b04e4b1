package table

import (
	"fmt"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/holdem"
)

// User is somebody joining a persisted game
type User struct {
	ID   string
	Name string
	// Channel is where updates for the user are published, defaults to player-<id>
	Channel string
	Chips   int
}

// Player is a player record in the `game_players` table
// Cards are kept as identifiers so a record can be written without any conversion.
type Player struct {
	GameID     string        `json:"gameId"`
	PlayerID   string        `json:"id"`
	UserName   string        `json:"name"`
	Channel    string        `json:"channel"`
	Card1      string        `json:"card1"`
	Card2      string        `json:"card2"`
	State      holdem.Status `json:"state"`
	ChipAmount int           `json:"chipAmount"`
	CurrentBet int           `json:"bet"`
	Acted      bool          `json:"hadTurn"`
}

var _ holdem.Player[Player] = Player{}

// NewPlayer returns a builder that seats users into the game {gameID}
func NewPlayer(gameID string) holdem.Builder[User, Player] {
	return func(u User, d holdem.Deal) Player {
		channel := u.Channel
		if channel == "" {
			channel = defaultChannel(u.ID)
		}

		return Player{
			GameID:     gameID,
			PlayerID:   u.ID,
			UserName:   u.Name,
			Channel:    channel,
			Card1:      d.HoleCards[0].ID(),
			Card2:      d.HoleCards[1].ID(),
			State:      d.Status,
			ChipAmount: u.Chips,
			CurrentBet: d.Bet,
			Acted:      d.HadTurn,
		}
	}
}

// Redeal keeps the player's identity and stack for a new deal
func Redeal(prev Player, d holdem.Deal) Player {
	return NewPlayer(prev.GameID)(User{
		ID:      prev.PlayerID,
		Name:    prev.UserName,
		Channel: prev.Channel,
		Chips:   prev.ChipAmount,
	}, d)
}

func defaultChannel(id string) string {
	return fmt.Sprintf("player-%s", id)
}

// ID returns the player's identifier
func (p Player) ID() string {
	return p.PlayerID
}

// Name returns the display name
func (p Player) Name() string {
	return p.UserName
}

// HoleCards returns the two private cards
// An identifier that cannot be parsed is returned as a hidden card, which can never win.
func (p Player) HoleCards() [2]deck.Card {
	c1, _ := deck.CardFromID(p.Card1)
	c2, _ := deck.CardFromID(p.Card2)

	return [2]deck.Card{c1, c2}
}

// Chips returns the stack
func (p Player) Chips() int {
	return p.ChipAmount
}

// Bet returns the current bet
func (p Player) Bet() int {
	return p.CurrentBet
}

// Status returns the status
func (p Player) Status() holdem.Status {
	return p.State
}

// HadTurn returns true if the player acted this round
func (p Player) HadTurn() bool {
	return p.Acted
}

// WithChips returns a copy with a new stack
func (p Player) WithChips(chips int) Player {
	p.ChipAmount = chips
	return p
}

// WithBet returns a copy with a new bet
func (p Player) WithBet(bet int) Player {
	p.CurrentBet = bet
	return p
}

// WithHadTurn returns a copy with a new had-turn flag
func (p Player) WithHadTurn(hadTurn bool) Player {
	p.Acted = hadTurn
	return p
}

// Fold returns a folded copy
func (p Player) Fold() Player {
	p.State = holdem.StatusFolded
	return p
}
