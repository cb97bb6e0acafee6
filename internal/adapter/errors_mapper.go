package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:            ErrBadRequest,
	http.StatusUnauthorized:          ErrUnauthorized,
	http.StatusForbidden:             ErrForbidden,
	http.StatusNotFound:              ErrNotFound,
	http.StatusConflict:              ErrConflict,
	http.StatusRequestEntityTooLarge: ErrRequestTooLarge,
	http.StatusLocked:                ErrLocked,
	http.StatusTooManyRequests:       ErrTooManyRequests,
	http.StatusInternalServerError:   ErrInternalServerError,
	http.StatusBadGateway:            ErrBadGateway,
}

// StatusError is a non-2xx response. It unwraps to the sentinel for its
// status code, if there is one, and keeps the plain-text body the server
// wrote so the service layer can tell errors with the same code apart.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if kind, ok := statusErrors[e.Code]; ok {
		return fmt.Sprintf("%s: %s", kind, e.Body)
	}
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return statusErrors[e.Code]
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if _, known := statusErrors[code]; !known && body == "" {
		body = http.StatusText(code)
	}

	return &StatusError{Code: code, Body: body}
}
