package table

import "errors"

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrGameNotFound is returned when no saved game has the requested id
var ErrGameNotFound = UserError("game not found")

// errCorruptGame wraps data that was saved but can no longer be understood
var errCorruptGame = errors.New("corrupt saved game")
