package holdem

import (
	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
)

type options struct {
	deck      *deck.Deck
	generator rng.Generator
	clock     quartz.Clock
	logger    logrus.FieldLogger
}

// Option configures how hands are dealt and how an instance runs
type Option func(o *options)

func newOptions(opts []Option) options {
	o := options{
		generator: rng.Crypto{},
		clock:     quartz.NewReal(),
		logger:    logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDeck deals the next hand from a pre-arranged deck instead of a shuffled one
// The deck is only used once: later hands are shuffled.
func WithDeck(d *deck.Deck) Option {
	return func(o *options) {
		o.deck = d
	}
}

// WithGenerator sets the random source used to shuffle
func WithGenerator(g rng.Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithClock sets the clock used for the restart timestamp
func WithClock(c quartz.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLogger sets the logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func (o *options) nextDeck() *deck.Deck {
	if d := o.deck; d != nil {
		o.deck = nil
		return d
	}

	d := deck.New()
	d.SetGenerator(o.generator)
	d.Shuffle()

	return d
}
