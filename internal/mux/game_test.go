package mux

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/internal/jwt"
	"holdem-server/pkg/holdem"
)

func TestPostGame(t *testing.T) {
	a := assert.New(t)
	ts, pb := setupServer(t)

	resp := newGame(t, ts, holdem.Strict, 100, 100, 100)
	a.Len(resp.Tokens, 3)

	for id, token := range resp.Tokens {
		gameID, playerID, err := jwt.ValidPlayer(token)
		a.NoError(err)
		a.Equal(resp.ID, gameID)
		a.Equal(id, playerID)
	}

	d, err := pb.Dealer(cbg, resp.ID)
	a.NoError(err)
	a.Equal(resp.ID, d.ID())
}

func TestPostGame_generatedIDs(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)

	var resp postGameResponse
	assertPost(t, ts, "/game", postGamePayload{
		Variant: holdem.Relaxed,
		Players: []postGamePlayer{{Chips: 50}, {Chips: 50}},
	}, &resp, http.StatusCreated)
	a.Len(resp.Tokens, 2)

	for id, token := range resp.Tokens {
		a.NotEmpty(id)

		var v holdem.View
		assertGet(t, ts, "/game/"+resp.ID, &v, http.StatusOK, token)
		a.Equal(holdem.Relaxed, v.Variant)
		for _, p := range v.Players {
			a.NotEmpty(p.Name)
		}
	}
}

func TestPostGame_invalid(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)

	var errObj errorResponse
	assertPost(t, ts, "/game", postGamePayload{Variant: holdem.Strict, Players: []postGamePlayer{{ID: "u1", Chips: 0}}}, &errObj, http.StatusBadRequest)
	a.Equal("chips must be greater than zero", errObj.Message)

	assertPost(t, ts, "/game", postGamePayload{Variant: holdem.Strict, Players: []postGamePlayer{{ID: "u1", Chips: 5}, {ID: "u1", Chips: 5}}}, &errObj, http.StatusBadRequest)
	a.Equal("player ids must be unique", errObj.Message)

	assertPost(t, ts, "/game", postGamePayload{Variant: holdem.Strict}, &errObj, http.StatusBadRequest)
	a.Equal(holdem.ErrNoPlayers.Error(), errObj.Message)

	assertPost(t, ts, "/game", map[string]string{"variant": "omaha"}, &errObj, http.StatusBadRequest)
	a.Equal("invalid variant: omaha", errObj.Message)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/game", nil)
	assertDo(t, req, &errObj, http.StatusUnsupportedMediaType)
}

func TestGetGameID(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	resp := newGame(t, ts, holdem.Strict, 100, 100, 100)

	var v holdem.View
	assertGet(t, ts, "/game/"+resp.ID, &v, http.StatusOK, resp.Tokens["u2"])
	a.Equal(resp.ID, v.ID)
	a.Len(v.Players, 3)
	a.True(v.Players[1].You)
	a.False(v.Players[1].Card1.IsHidden())
	a.True(v.Players[0].Card1.IsHidden())
	a.Equal(15, v.Pot+v.Players[0].Bet+v.Players[1].Bet+v.Players[2].Bet)

	// token as a query parameter
	r := assertGet(t, ts, "/game/"+resp.ID+"?access_token="+url.QueryEscape(resp.Tokens["u3"]), &v, http.StatusOK)
	if a.NotNil(r) {
		a.Equal("u3", r.Header.Get("Holdem-PlayerID"))
	}
	a.True(v.Players[2].You)
}

func TestGetGameID_auth(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	resp := newGame(t, ts, holdem.Strict, 100, 100)
	other := newGame(t, ts, holdem.Strict, 100, 100)

	var errObj errorResponse
	assertGet(t, ts, "/game/"+resp.ID, &errObj, http.StatusUnauthorized)
	a.Equal("Unauthorized", errObj.Message)

	assertGet(t, ts, "/game/"+resp.ID, &errObj, http.StatusUnauthorized, "not-a-token")

	assertGet(t, ts, "/game/"+resp.ID, &errObj, http.StatusForbidden, other.Tokens["u1"])
	a.Equal("Forbidden", errObj.Message)

	token, err := jwt.Sign("missing", "u1")
	a.NoError(err)
	assertGet(t, ts, "/game/missing", &errObj, http.StatusNotFound, token)
	a.Equal("game not found", errObj.Message)
}

func TestPostGameIDAction(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	resp := newGame(t, ts, holdem.Strict, 100, 100, 100)
	path := "/game/" + resp.ID + "/action"

	var errObj errorResponse
	assertPost(t, ts, path, holdem.BetAction(10), &errObj, http.StatusBadRequest, resp.Tokens["u2"])
	a.Equal(holdem.ErrNotYourTurn.Error(), errObj.Message)

	var v holdem.View
	assertPost(t, ts, path, holdem.BetAction(10), &v, http.StatusOK, resp.Tokens["u1"])
	a.Equal(10, v.Players[0].Bet)
	a.False(v.Players[0].Turn)
	a.True(v.Players[1].Turn)

	assertPost(t, ts, path, holdem.FoldAction(), &v, http.StatusOK, resp.Tokens["u2"])
	a.Equal(holdem.StatusFolded, v.Players[1].State)

	assertPost(t, ts, path, holdem.Action{Type: "raise"}, &errObj, http.StatusBadRequest, resp.Tokens["u3"])
	a.Equal(holdem.ErrUnknownAction.Error(), errObj.Message)
}

func TestDeleteGameIDSeat(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	resp := newGame(t, ts, holdem.Relaxed, 100, 100)
	path := "/game/" + resp.ID

	assertDelete(t, ts, path+"/seat", http.StatusNoContent, resp.Tokens["u2"])

	// still allowed to watch
	var v holdem.View
	assertGet(t, ts, path, &v, http.StatusOK, resp.Tokens["u2"])
	a.Len(v.Players, 1)
	a.False(v.Players[0].Card1.IsHidden())

	assertDelete(t, ts, path+"/seat", http.StatusBadRequest, resp.Tokens["u2"])
	assertDelete(t, ts, path+"/seat", http.StatusConflict, resp.Tokens["u1"])
}
