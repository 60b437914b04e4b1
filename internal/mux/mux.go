package mux

import (
	"context"
	"net/http"
	"strings"

	gmux "github.com/gorilla/mux"

	"holdem-server/internal/jwt"
	"holdem-server/pkg/room"
)

type ctxKey int

const (
	ctxPlayerKey ctxKey = iota
	ctxDealerKey
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	pitBoss *room.PitBoss

	// store for testing purposes
	authRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string, pitBoss *room.PitBoss) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/game").Handler(this.postGame())
	}

	// requires bearer authorization
	{
		r := this.authRouter

		gr := r.PathPrefix("/game/{id}").Subrouter()
		gr.Use(this.gameMiddleware)

		gr.Methods(http.MethodGet).Path("").Handler(this.getGameID())
		gr.Methods(http.MethodGet).Path("/ws").Handler(this.getGameIDWS())
		gr.Methods(http.MethodPost).Path("/action").Handler(this.postGameIDAction())
		gr.Methods(http.MethodDelete).Path("/seat").Handler(this.deleteGameIDSeat())
	}

	return this
}

type tokenClaims struct {
	gameID   string
	playerID string
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		gameID, playerID, err := jwt.ValidPlayer(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, tokenClaims{gameID: gameID, playerID: playerID})
		w.Header().Set("Holdem-PlayerID", playerID)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// gameMiddleware requires authMiddleware to execute first
// A token only grants access to the game it was issued for.
func (m *Mux) gameMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := r.Context().Value(ctxPlayerKey).(tokenClaims)
		id := gmux.Vars(r)["id"]
		if claims.gameID != id {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		dealer, err := m.pitBoss.Dealer(r.Context(), id)
		if err != nil {
			writeGameError(w, err)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxDealerKey, dealer)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func requestDealer(r *http.Request) (*room.Dealer, string) {
	dealer := r.Context().Value(ctxDealerKey).(*room.Dealer)
	claims := r.Context().Value(ctxPlayerKey).(tokenClaims)

	return dealer, claims.playerID
}
