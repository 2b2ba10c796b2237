package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable indicates the request never produced a usable response:
// the server was down, the connection failed, or the body was malformed.
var ErrUnreachable = errors.New("could not reach server")

// APIError is a server-rejected call: the request completed with a non-2xx
// status. Message carries the server's own text when the response body had
// a decodable {message} field, else a status-derived fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NotFound reports whether the error is a server 404 rejection.
func NotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// statusError builds an APIError, preferring the server-supplied message.
func statusError(status int, serverMessage string) *APIError {
	msg := serverMessage
	if msg == "" {
		msg = fmt.Sprintf("server returned status %d", status)
	}
	return &APIError{Status: status, Message: msg}
}
