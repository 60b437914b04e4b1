package table

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/db"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/holdem"
)

// Store saves and restores games
type Store struct {
	db     *sql.DB
	driver string
	logger logrus.FieldLogger
}

// NewStore returns a store backed by an open, migrated database
func NewStore(database *sql.DB, driver string) *Store {
	return &Store{
		db:     database,
		driver: driver,
		logger: logrus.WithField("driver", driver),
	}
}

func (s *Store) query(q string) string {
	return db.Rebind(s.driver, q)
}

const gamesColumns = `id, variant, center_cards, center_reveal_amount, pot, finished, restart_at`
const playersColumns = `game_id, seat, id, name, channel, card1, card2, state, chip_amount, bet, had_turn`

// Save writes the instance, replacing any previous record of it
func (s *Store) Save(ctx context.Context, i *holdem.Instance[Player]) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var restartAt sql.NullInt64
	if i.RestartAt != nil {
		restartAt = sql.NullInt64{Int64: i.RestartAt.UnixMilli(), Valid: true}
	}

	const query = `
INSERT INTO games (` + gamesColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
SET variant = excluded.variant,
    center_cards = excluded.center_cards,
    center_reveal_amount = excluded.center_reveal_amount,
    pot = excluded.pot,
    finished = excluded.finished,
    restart_at = excluded.restart_at`

	st := i.State
	if _, err := tx.ExecContext(ctx, s.query(query),
		i.ID,
		string(st.Variant),
		encodeCards(st.Community[:]),
		st.Revealed,
		st.Pot,
		st.Finished,
		restartAt,
	); err != nil {
		rollback(tx)
		return err
	}

	if _, err := tx.ExecContext(ctx, s.query(`DELETE FROM game_players WHERE game_id = $1`), i.ID); err != nil {
		rollback(tx)
		return err
	}

	const query2 = `
INSERT INTO game_players (` + playersColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	stmt, err := tx.PrepareContext(ctx, s.query(query2))
	if err != nil {
		rollback(tx)
		return err
	}
	defer stmt.Close()

	for seat, p := range st.Players {
		if _, err := stmt.ExecContext(ctx,
			i.ID,
			seat,
			p.PlayerID,
			p.UserName,
			p.Channel,
			p.Card1,
			p.Card2,
			string(p.State),
			p.ChipAmount,
			p.CurrentBet,
			p.Acted,
		); err != nil {
			rollback(tx)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"game":    i.ID,
		"players": len(st.Players),
	}).Debug("game saved")

	return nil
}

// Load restores a saved instance
func (s *Store) Load(ctx context.Context, id string, observer holdem.Observer[Player], opts ...holdem.Option) (*holdem.Instance[Player], error) {
	const query = `
SELECT ` + gamesColumns + `
FROM games
WHERE id = $1`
	row := s.db.QueryRowContext(ctx, s.query(query), id)

	var gameID, variant, centerCards string
	var restartAt sql.NullInt64
	var st holdem.State[Player]
	if err := row.Scan(&gameID, &variant, &centerCards, &st.Revealed, &st.Pot, &st.Finished, &restartAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}

		return nil, err
	}

	v, err := holdem.VariantFromString(variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errCorruptGame, err)
	}
	st.Variant = v

	community, err := decodeCards(centerCards)
	if err != nil {
		return nil, err
	}

	if len(community) != holdem.CommunityCards {
		return nil, fmt.Errorf("%w: expected %d community cards, got %d", errCorruptGame, holdem.CommunityCards, len(community))
	}
	copy(st.Community[:], community)

	players, err := s.players(ctx, id)
	if err != nil {
		return nil, err
	}
	st.Players = players

	var restart *time.Time
	if restartAt.Valid {
		t := time.UnixMilli(restartAt.Int64)
		restart = &t
	}

	return holdem.Restore(gameID, st, restart, observer, opts...), nil
}

func (s *Store) players(ctx context.Context, gameID string) ([]Player, error) {
	const query = `
SELECT ` + playersColumns + `
FROM game_players
WHERE game_id = $1
ORDER BY seat`
	rows, err := s.db.QueryContext(ctx, s.query(query), gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]Player, 0)
	for rows.Next() {
		p, err := playerByRow(rows)
		if err != nil {
			return nil, err
		}

		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}

func playerByRow(row db.Scanner) (Player, error) {
	var p Player
	var seat int
	var state string
	if err := row.Scan(&p.GameID, &seat, &p.PlayerID, &p.UserName, &p.Channel, &p.Card1, &p.Card2, &state, &p.ChipAmount, &p.CurrentBet, &p.Acted); err != nil {
		return Player{}, err
	}

	p.State = holdem.Status(state)
	return p, nil
}

// Delete removes a saved game and its players
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.query(`DELETE FROM games WHERE id = $1`), id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if n == 0 {
		return ErrGameNotFound
	}

	return nil
}

func encodeCards(cards []deck.Card) string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID()
	}

	return strings.Join(ids, ",")
}

func decodeCards(s string) ([]deck.Card, error) {
	if s == "" {
		return []deck.Card{}, nil
	}

	ids := strings.Split(s, ",")
	cards := make([]deck.Card, len(ids))
	for i, id := range ids {
		c, err := deck.CardFromID(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errCorruptGame, err)
		}

		cards[i] = c
	}

	return cards, nil
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}
