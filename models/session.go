package models

// Session identifies the caller of an authenticated request. It is built
// from the claims of a verified access token.
type Session struct {
	AccountID int64
	Username  string
	DeviceID  string
}
