package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error is the normalized failure shape for every façade method. Message
// prefers the server's structured payload (`error` or `detail`) and falls
// back to the transport error text. Status is zero when the request never
// reached the server.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(status int, body []byte) *Error {
	msg := http.StatusText(status)

	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error != "":
			msg = payload.Error
		case payload.Detail != "":
			msg = payload.Detail
		}
	}

	return &Error{Status: status, Message: msg}
}

// StatusCode extracts the HTTP status from a façade error, zero otherwise.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsAuthFailure reports the 400/401 responses the auth flows map to an
// "invalid credentials" or "invalid code" message.
func IsAuthFailure(err error) bool {
	code := StatusCode(err)
	return code == http.StatusBadRequest || code == http.StatusUnauthorized
}
