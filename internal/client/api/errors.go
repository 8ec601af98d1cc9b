package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable covers failures below the HTTP response boundary:
// connection refused, timeouts, undecodable bodies.
var ErrUnavailable = errors.New("server unavailable")

// RequestError is a non-2xx response. Msg is the server's human-readable
// message from the {"msg": ...} error envelope, surfaced verbatim.
type RequestError struct {
	StatusCode int
	Msg        string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Msg)
}

// genericFailure is shown when the server never produced a message, so a
// transport failure cannot leave the user staring at a busy state.
const genericFailure = "something went wrong, please try again"

// Message reduces any error from this package to the single ErrorMessage
// contract the UI renders: server-rejected requests keep the server's
// wording, everything else collapses to a generic line.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Msg != "" {
		return reqErr.Msg
	}
	return genericFailure
}
