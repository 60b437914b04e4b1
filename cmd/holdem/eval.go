package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker"
)

// EvalCmd evaluates cards
type EvalCmd struct {
	Cards []string `kong:"arg,required,help='Cards as 14s or spades_ace, separated by spaces or commas'"`
}

// Run evaluates the cards
func (c *EvalCmd) Run() error {
	return c.eval(os.Stdout)
}

func (c *EvalCmd) eval(w io.Writer) error {
	cards := make([]deck.Card, 0, len(c.Cards))
	for _, arg := range c.Cards {
		for _, s := range strings.Split(arg, ",") {
			if s = strings.TrimSpace(s); s == "" {
				continue
			}

			card, err := deck.ParseCard(s)
			if err != nil {
				return err
			}

			cards = append(cards, card)
		}
	}

	combination, ok := poker.Evaluate(cards)
	if !ok {
		return errors.New("cards cannot be evaluated")
	}

	base, score := poker.Strength(cards)
	_, _ = fmt.Fprintf(w, "%s\nkind: %s\nstrength: %d/%d\n", combination, combination.Kind.ID(), base, score)

	return nil
}
