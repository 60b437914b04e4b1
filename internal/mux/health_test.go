package mux

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/pkg/holdem"
)

func TestHealthHandler(t *testing.T) {
	a := assert.New(t)
	ts, _ := setupServer(t)

	var expects healthResponse
	assertGet(t, ts, "/health", &expects, http.StatusOK)
	a.Equal("OK", expects.Status)
	a.Equal("v1.2.3", expects.Version)
	a.Equal(0, expects.Games)

	newGame(t, ts, holdem.Strict, 100, 100)
	assertGet(t, ts, "/health", &expects, http.StatusOK)
	a.Equal(1, expects.Games)
}
