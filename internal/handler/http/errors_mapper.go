package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatuses is checked in order, so when an error wraps several
// sentinels the first entry wins. Account state comes before proof failures.
var errorStatuses = []struct {
	target error
	resp   errorResponse
}{
	{service.ErrAccountLocked, errorResponse{http.StatusLocked, app.MsgAccountLocked}},
	{service.ErrAccountBlocked, errorResponse{http.StatusForbidden, app.MsgAccountBlocked}},
	{service.ErrUsernameMismatch, errorResponse{http.StatusForbidden, app.MsgUsernameMismatch}},

	{service.ErrAuthenticationFailed, errorResponse{http.StatusUnauthorized, app.MsgAuthenticationFailed}},
	{service.ErrInvalidTwoFactorCode, errorResponse{http.StatusUnauthorized, app.MsgInvalidTwoFactorCode}},
	{service.ErrRefreshTokenInvalid, errorResponse{http.StatusUnauthorized, app.MsgRefreshTokenIsInvalid}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},

	{service.ErrUsernameTaken, errorResponse{http.StatusConflict, app.MsgUsernameAlreadyExists}},
	{service.ErrVersionTooOld, errorResponse{http.StatusConflict, app.MsgVersionTooOld}},
	{service.ErrTwoFactorAlreadyEnabled, errorResponse{http.StatusConflict, app.MsgTwoFactorAlreadyEnabled}},

	{service.ErrBlobTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgBlobTooLarge}},

	{service.ErrNoPrimaryKey, errorResponse{http.StatusNotFound, app.MsgNoPrimaryKey}},
	{store.ErrAccountNotFound, errorResponse{http.StatusNotFound, app.MsgNotFound}},
	{store.ErrKeyNotFound, errorResponse{http.StatusNotFound, app.MsgNotFound}},

	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrTwoFactorNotPending, errorResponse{http.StatusBadRequest, app.MsgTwoFactorNotPending}},
}

// responseFromError picks the status and public message for err. Unknown
// errors become 500 without detail.
func responseFromError(err error) errorResponse {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.target) {
			return entry.resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err with the request logger and writes the mapped plain
// text answer.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	event := logger.FromRequest(r).Warn()
	if resp.status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.status).Msg(msg)

	http.Error(w, resp.message, resp.status)
}
