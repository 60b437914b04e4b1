package mux

import (
	"errors"
	"net/http"

	"holdem-server/internal/jwt"
	"holdem-server/internal/util"
	"holdem-server/pkg/holdem"
	"holdem-server/pkg/table"
)

type postGamePlayer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Channel string `json:"channel"`
	Chips   int    `json:"chips"`
}

type postGamePayload struct {
	Variant holdem.Variant   `json:"variant"`
	Players []postGamePlayer `json:"players"`
}

type postGameResponse struct {
	ID string `json:"id"`
	// Tokens maps player ids to the bearer token of the player
	Tokens map[string]string `json:"tokens"`
}

func (p postGamePayload) users() ([]table.User, error) {
	users := make([]table.User, len(p.Players))
	seen := make(map[string]bool, len(p.Players))
	for i, player := range p.Players {
		if player.Chips <= 0 {
			return nil, errors.New("chips must be greater than zero")
		}

		id := player.ID
		if id == "" {
			id = util.NewID()
		}

		if seen[id] {
			return nil, errors.New("player ids must be unique")
		}
		seen[id] = true

		name := player.Name
		if name == "" {
			name = util.GetRandomName()
		}

		users[i] = table.User{
			ID:      id,
			Name:    name,
			Channel: player.Channel,
			Chips:   player.Chips,
		}
	}

	return users, nil
}

func (m *Mux) postGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := postGamePayload{Variant: holdem.Strict}
		if !decodeRequest(w, r, &payload) {
			return
		}

		users, err := payload.users()
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		dealer, err := m.pitBoss.NewGame(r.Context(), users, payload.Variant)
		if err != nil {
			writeGameError(w, err)
			return
		}

		resp := postGameResponse{
			ID:     dealer.ID(),
			Tokens: make(map[string]string, len(users)),
		}

		for _, u := range users {
			token, err := jwt.Sign(dealer.ID(), u.ID)
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, err)
				return
			}

			resp.Tokens[u.ID] = token
		}

		writeJSON(w, http.StatusCreated, resp)
	}
}

func (m *Mux) getGameID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, playerID := requestDealer(r)

		v, err := dealer.View(r.Context(), playerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

func (m *Mux) postGameIDAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, playerID := requestDealer(r)

		var action holdem.Action
		if !decodeRequest(w, r, &action) {
			return
		}

		if err := dealer.Action(r.Context(), playerID, action); err != nil {
			writeGameError(w, err)
			return
		}

		v, err := dealer.View(r.Context(), playerID)
		if err != nil {
			writeGameError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

func (m *Mux) deleteGameIDSeat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dealer, playerID := requestDealer(r)

		if err := dealer.RemovePlayer(r.Context(), playerID); err != nil {
			writeGameError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
