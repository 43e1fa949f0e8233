package api

import (
	"errors"
	"fmt"
)

// fallbackMessage is used when a failed response carries no recognizable
// error field.
const fallbackMessage = "request failed"

// Error is a failed HTTP exchange: a non-2xx status plus the server-supplied
// message, if one could be extracted from the body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// ServerMessage returns the server-supplied message of err when err is (or
// wraps) an *Error carrying one, and "" otherwise. Pipelines use it to
// surface backend detail without interpreting status codes.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != fallbackMessage {
		return apiErr.Message
	}
	return ""
}
