package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"holdem-server/internal/rng"
	"holdem-server/pkg/holdem"
)

// SimulateCmd plays independent tables concurrently
type SimulateCmd struct {
	Tables  int    `kong:"default='${tables}',help='Number of tables'"`
	Hands   int    `kong:"default='${hands}',help='Number of hands per table'"`
	Seats   int    `kong:"default='${seats}',help='Number of seats per table'"`
	Chips   int    `kong:"default='${chips}',help='Starting chips per seat'"`
	Variant string `kong:"default='${variant}',enum='texas_holdem,async_texas_holdem',help='Who may act during a betting round'"`
	Seed    int64  `kong:"help='Seed for reproducible deals, table n uses seed+n (0 for random)'"`
}

// Run runs the simulation
func (c *SimulateCmd) Run(ctx context.Context) error {
	total, err := c.simulate(ctx)
	if err != nil {
		return err
	}

	total.print(os.Stdout)
	return nil
}

func (c *SimulateCmd) simulate(ctx context.Context) (*tally[holdem.LocalPlayer], error) {
	variant, err := holdem.VariantFromString(c.Variant)
	if err != nil {
		return nil, err
	}

	total := newTally[holdem.LocalPlayer]()
	g, ctx := errgroup.WithContext(ctx)
	for t := 0; t < c.Tables; t++ {
		g.Go(func() error {
			logger := logrus.WithField("table", t)
			opts := []holdem.Option{holdem.WithLogger(logger)}
			if c.Seed != 0 {
				opts = append(opts, holdem.WithGenerator(rng.Seeded(c.Seed+int64(t))))
			}

			seats := make([]holdem.Seat, c.Seats)
			for idx, name := range seatNames(c.Seats) {
				seats[idx] = holdem.Seat{
					ID:    fmt.Sprintf("t%d-p%d", t, idx+1),
					Name:  name,
					Chips: c.Chips,
				}
			}

			counts := newTally[holdem.LocalPlayer]()
			i, err := holdem.GenerateNew(fmt.Sprintf("table-%d", t), seats, variant, holdem.NewLocalPlayer, counts, opts...)
			if err != nil {
				return err
			}

			if err := playHands(ctx, i, c.Hands, holdem.RedealLocalPlayer, nil); err != nil {
				return fmt.Errorf("table %d: %w", t, err)
			}

			total.merge(counts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return total, nil
}
