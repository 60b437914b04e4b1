package main

import (
	"context"
	"os"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"holdem-server/internal/config"
	"holdem-server/internal/rng"
	"holdem-server/internal/util"
	"holdem-server/pkg/db"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/table"
)

// PlayCmd plays one local table
type PlayCmd struct {
	Seats   int    `kong:"default='${seats}',help='Number of seats at the table'"`
	Hands   int    `kong:"default='${hands}',help='Number of hands to play'"`
	Chips   int    `kong:"default='${chips}',help='Starting chips per seat'"`
	Variant string `kong:"default='${variant}',enum='texas_holdem,async_texas_holdem',help='Who may act during a betting round'"`
	Seed    int64  `kong:"help='Seed for reproducible deals (0 for random)'"`
	Store   bool   `kong:"help='Save every hand to the configured database'"`
	Resume  string `kong:"help='Resume a saved game, implies --store'"`
	Wait    bool   `kong:"help='Wait for the restart delay between hands'"`
}

// Run plays the table
func (c *PlayCmd) Run(ctx context.Context, cfg config.Config) error {
	variant, err := holdem.VariantFromString(c.Variant)
	if err != nil {
		return err
	}

	clock := quartz.NewReal()
	opts := []holdem.Option{
		holdem.WithClock(clock),
		holdem.WithLogger(logrus.StandardLogger()),
	}

	if c.Seed != 0 {
		opts = append(opts, holdem.WithGenerator(rng.Seeded(c.Seed)))
	}

	if !c.Store && c.Resume == "" {
		names := seatNames(c.Seats)
		seats := make([]holdem.Seat, c.Seats)
		for idx := range seats {
			seats[idx] = holdem.Seat{
				ID:    util.NewID(),
				Name:  names[idx],
				Chips: c.Chips,
			}
		}

		i, err := holdem.GenerateNew(util.NewID(), seats, variant, holdem.NewLocalPlayer, reporter[holdem.LocalPlayer]{}, opts...)
		if err != nil {
			return err
		}

		return runPlay(ctx, c, clock, i, holdem.RedealLocalPlayer)
	}

	database, err := db.Open(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, cfg.Database.Driver, cfg.Database.MigrationsPath); err != nil {
		return err
	}

	store := table.NewStore(database, cfg.Database.Driver)
	observer := holdem.Observers[table.Player](table.NewAutoSave(ctx, store), reporter[table.Player]{})

	var i *holdem.Instance[table.Player]
	if c.Resume != "" {
		i, err = store.Load(ctx, c.Resume, observer, opts...)
		if err != nil {
			return err
		}

		logrus.WithField("game", i.ID).Info("game resumed")
	} else {
		id := util.NewID()
		names := seatNames(c.Seats)
		users := make([]table.User, c.Seats)
		for idx := range users {
			users[idx] = table.User{
				ID:    util.NewID(),
				Name:  names[idx],
				Chips: c.Chips,
			}
		}

		i, err = holdem.GenerateNew(id, users, variant, table.NewPlayer(id), observer, opts...)
		if err != nil {
			return err
		}
	}

	if err := runPlay(ctx, c, clock, i, table.Redeal); err != nil {
		return err
	}

	// players may have been unseated after the last save
	return store.Save(ctx, i)
}

func runPlay[P holdem.Player[P]](ctx context.Context, c *PlayCmd, clock quartz.Clock, i *holdem.Instance[P], redeal holdem.Builder[P, P]) error {
	var wait func() error
	if c.Wait {
		wait = restartWaiter(ctx, clock, i)
	}

	if err := playHands(ctx, i, c.Hands, redeal, wait); err != nil {
		return err
	}

	printStandings(os.Stdout, i)
	return nil
}
