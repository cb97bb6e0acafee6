package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername         = errors.New("invalid username")
	ErrEmptySalt               = errors.New("salt is required")
	ErrInvalidVerifier         = errors.New("invalid verifier")
	ErrInvalidEncryptionParams = errors.New("invalid encryption params")
	ErrInvalidVersion          = errors.New("invalid data version")
	ErrInvalidBaseRevision     = errors.New("invalid base revision")
	ErrInvalidCounts           = errors.New("invalid credential or email count")
	ErrInvalidNewCredentials   = errors.New("invalid new credentials")
	ErrInvalidPublicKey        = errors.New("invalid public key")
	ErrInvalidMessageFields    = errors.New("invalid message fields")
)
