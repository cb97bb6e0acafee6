// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/models"
)

// mapAdapterError translates the adapter's transport error into a service business error.
// The server's plain-text body tells apart errors that share a status code.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	body := strings.TrimSpace(err.Error())
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		body = statusErr.Body
	}
	says := func(msg string) bool { return strings.HasSuffix(body, msg) }

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case says(app.MsgTwoFactorNotPending):
			return ErrTwoFactorNotPending
		case says(app.MsgInvalidDataProvided):
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch {
		case says(app.MsgAuthenticationFailed):
			return ErrAuthenticationFailed
		case says(app.MsgRefreshTokenIsInvalid):
			return ErrRefreshTokenInvalid
		case says(app.MsgInvalidTwoFactorCode):
			return ErrInvalidTwoFactorCode
		case says(app.MsgTokenIsExpiredOrInvalid):
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrNotLoggedIn):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrLocked):
		return ErrAccountLocked

	case errors.Is(err, adapter.ErrForbidden):
		if says(app.MsgUsernameMismatch) {
			return ErrUsernameMismatch
		}
		return ErrAccountBlocked

	case errors.Is(err, adapter.ErrNotFound):
		if says(app.MsgNoPrimaryKey) {
			return ErrNoPrimaryKey
		}

	case errors.Is(err, adapter.ErrConflict):
		switch {
		case says(app.MsgUsernameAlreadyExists):
			return ErrUsernameTaken
		case says(app.MsgVersionTooOld), strings.Contains(body, string(models.VaultStatusVersionTooOld)):
			return ErrVersionTooOld
		case says(app.MsgTwoFactorAlreadyEnabled):
			return ErrTwoFactorAlreadyEnabled
		}

	case errors.Is(err, adapter.ErrRequestTooLarge):
		return ErrBlobTooLarge
	}

	return err
}
