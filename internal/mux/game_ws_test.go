package mux

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem-server/pkg/holdem"
	"holdem-server/pkg/room"
)

type wsResponse struct {
	Key     string          `json:"key"`
	Value   string          `json:"value"`
	Data    json.RawMessage `json:"data"`
	Context string          `json:"context"`
}

func dialGame(t *testing.T, serverURL, gameID, token string) *websocket.Conn {
	t.Helper()

	u := "ws" + strings.TrimPrefix(serverURL, "http") + "/game/" + gameID + "/ws?access_token=" + url.QueryEscape(token)
	conn, resp, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) wsResponse {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	var resp wsResponse
	require.NoError(t, conn.ReadJSON(&resp))
	return resp
}

func readView(t *testing.T, conn *websocket.Conn) holdem.View {
	t.Helper()

	resp := readResponse(t, conn)
	require.Equal(t, "game", resp.Key)

	var v holdem.View
	require.NoError(t, json.Unmarshal(resp.Data, &v))
	return v
}

func TestGetGameIDWS(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)
	game := newGame(t, ts, holdem.Strict, 100, 100, 100)

	c1 := dialGame(t, ts.URL, game.ID, game.Tokens["u1"])
	c2 := dialGame(t, ts.URL, game.ID, game.Tokens["u2"])

	v := readView(t, c1)
	a.True(v.Players[0].You)
	a.True(v.Players[0].Turn)
	v = readView(t, c2)
	a.True(v.Players[1].You)

	require.NoError(t, c2.WriteJSON(room.PayloadIn{Action: "fold", Context: "c2"}))
	resp := readResponse(t, c2)
	a.Equal("error", resp.Key)
	a.Equal(holdem.ErrNotYourTurn.Error(), resp.Value)
	a.Equal("c2", resp.Context)

	require.NoError(t, c1.WriteJSON(room.PayloadIn{Action: "bet", Bet: 10, Context: "c1"}))
	v = readView(t, c1)
	a.Equal(10, v.Players[0].Bet)
	resp = readResponse(t, c1)
	a.Equal("status", resp.Key)
	a.Equal("OK", resp.Value)
	a.Equal("c1", resp.Context)

	// the other client sees the change
	v = readView(t, c2)
	a.Equal(10, v.Players[0].Bet)
	a.True(v.Players[1].Turn)

	require.NoError(t, c2.WriteJSON(room.PayloadIn{Action: "state"}))
	v = readView(t, c2)
	a.True(v.Players[1].You)
	resp = readResponse(t, c2)
	a.Equal("status", resp.Key)
}

func TestGetGameIDWS_unauthorized(t *testing.T) {
	ts, _ := setupServer(t)
	game := newGame(t, ts, holdem.Strict, 100, 100)

	u := "ws" + strings.TrimPrefix(ts.URL, "http") + "/game/" + game.ID + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(u, nil)
	assert.Error(t, err)
	if assert.NotNil(t, resp) {
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}
}
