package client

import "errors"

var (
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrEmptyUsername       = errors.New("username is required")
)
