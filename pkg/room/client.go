package room

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"holdem-server/pkg/holdem"
)

// Client is a client connected to the server via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	dealer   *Dealer
	playerID string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID string) *Client {
	return &Client{
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
		Conn:     conn,
		playerID: playerID,
	}
}

// Send send a message to the web client
// The message is dropped if the client is not keeping up.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		logrus.WithField("client", c.String()).Warn("client is not keeping up, message dropped")
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// PlayerID returns the id of the connected player
func (c *Client) PlayerID() string {
	return c.playerID
}

// String returns a traceable identifier for the player and game
func (c *Client) String() string {
	if c.dealer == nil {
		return c.playerID
	}

	return fmt.Sprintf("%s:%s", c.playerID, c.dealer.ID())
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(ctx context.Context, msg *PayloadIn) {
	if c.dealer == nil {
		logrus.WithField("msg", msg).Warn("received message, but dealer not found")
		return
	}

	var err error
	switch msg.Action {
	case "fold":
		err = c.dealer.Action(ctx, c.playerID, holdem.FoldAction())
	case "bet":
		err = c.dealer.Action(ctx, c.playerID, holdem.BetAction(msg.Bet))
	case "state":
		var v holdem.View
		if v, err = c.dealer.View(ctx, c.playerID); err == nil {
			c.Send(newGameResponse(v))
		}
	default:
		err = holdem.ErrUnknownAction
	}

	if err != nil {
		c.Send(newErrorResponse(msg.Context, err))
		return
	}

	c.Send(OK(msg.Context))
}
