package util

import (
	"fmt"
	"sync"

	"holdem-server/internal/rng"
)

var nicknames = []string{
	"Lucky", "Stone Cold", "Bluffing", "Quiet", "Reckless", "Patient", "Slick", "Steady", "Tilted", "Cautious",
	"Fearless", "Sneaky", "Grinning", "Wild", "Sharp", "Loose", "Tight", "Dapper", "Sleepy", "Cool Hand",
}

var players = []string{
	"Ace", "King", "Queen", "Jack", "Joker", "Dealer", "Shark", "Fish", "Whale", "Rounder", "Hustler",
	"Gambler", "Cowboy", "Kid", "Duchess", "Baron", "Professor", "Captain", "Doc", "Drifter",
}

var (
	random     rng.Generator = rng.Crypto{}
	randomLock sync.Mutex
)

// SetNameGenerator replaces the random source of GetRandomName
// This should only be used by tests.
func SetNameGenerator(g rng.Generator) {
	randomLock.Lock()
	random = g
	randomLock.Unlock()
}

// GetRandomName returns a table nickname such as "Lucky Shark"
func GetRandomName() string {
	randomLock.Lock()
	defer randomLock.Unlock()

	return fmt.Sprintf("%s %s", nicknames[random.Intn(len(nicknames))], players[random.Intn(len(players))])
}
