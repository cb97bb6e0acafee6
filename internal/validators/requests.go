package validators

import (
	"context"

	"github.com/Masterminds/semver/v3"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Field names accepted by [RequestValidator.Validate] to scope validation.
const (
	FieldUsername         = "username"
	FieldSalt             = "salt"
	FieldVerifier         = "verifier"
	FieldEncryptionParams = "encryption_params"
	FieldVersion          = "version"
	FieldBaseRevision     = "base_revision"
	FieldCounts           = "counts"
	FieldNewCredentials   = "new_credentials"
	FieldPublicKey        = "public_key"
	FieldMessageFields    = "message_fields"
)

const (
	// MaxUsernameLength is the longest accepted email address.
	MaxUsernameLength = 254

	// MaxMessageFields bounds the number of fields of a mailbox message.
	MaxMessageFields = 32
)

// RequestValidator validates registration, vault writes, key registration
// and mailbox delivery requests. Value and pointer forms are accepted.
type RequestValidator struct {
	// maxVerifierSize is the byte size of the SRP group modulus; a larger
	// verifier cannot be a group element.
	maxVerifierSize int
}

func NewRequestValidator(maxVerifierSize int) Validator {
	return &RequestValidator{maxVerifierSize: maxVerifierSize}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.PushVaultRequest:
		return v.validatePush(value, fields...)
	case *models.PushVaultRequest:
		return v.validatePush(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.AddKeyRequest:
		return v.validateAddKey(value, fields...)
	case *models.AddKeyRequest:
		return v.validateAddKey(*value, fields...)

	case models.DeliverMessageRequest:
		return v.validateDeliver(value, fields...)
	case *models.DeliverMessageRequest:
		return v.validateDeliver(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldSalt, FieldVerifier, FieldEncryptionParams, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !validUsername(req.Username) {
				return ErrInvalidUsername
			}
		case FieldSalt:
			if len(req.Salt) == 0 {
				return ErrEmptySalt
			}
		case FieldVerifier:
			if !v.validVerifier(req.Verifier) {
				return ErrInvalidVerifier
			}
		case FieldEncryptionParams:
			if !validKDFParams(req.EncryptionParams) {
				return ErrInvalidEncryptionParams
			}
		case FieldVersion:
			if !validVersion(req.Version) {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validatePush(req models.PushVaultRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBaseRevision, FieldVersion, FieldCounts}
	}

	for _, f := range fields {
		switch f {
		case FieldBaseRevision:
			if req.BaseRevision < 0 {
				return ErrInvalidBaseRevision
			}
		case FieldVersion:
			if !validVersion(req.Version) {
				return ErrInvalidVersion
			}
		case FieldCounts:
			if req.CredentialCount < 0 || req.EmailCount < 0 {
				return ErrInvalidCounts
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBaseRevision, FieldVersion, FieldCounts, FieldNewCredentials}
	}

	for _, f := range fields {
		if f != FieldNewCredentials {
			if err := v.validatePush(req.PushVaultRequest, f); err != nil {
				return err
			}
			continue
		}

		if len(req.NewSalt) == 0 || !v.validVerifier(req.NewVerifier) || !validKDFParams(req.EncryptionParams) {
			return ErrInvalidNewCredentials
		}
	}

	return nil
}

func (v *RequestValidator) validateAddKey(req models.AddKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPublicKey}
	}

	for _, f := range fields {
		switch f {
		case FieldPublicKey:
			if _, err := crypto.ParsePublicKey(req.PublicKey); err != nil {
				return ErrInvalidPublicKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDeliver(req models.DeliverMessageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldMessageFields}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !validUsername(req.Username) {
				return ErrInvalidUsername
			}
		case FieldMessageFields:
			if len(req.Fields) == 0 || len(req.Fields) > MaxMessageFields {
				return ErrInvalidMessageFields
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validUsername(username string) bool {
	return username != "" && len(username) <= MaxUsernameLength
}

func (v *RequestValidator) validVerifier(verifier []byte) bool {
	return len(verifier) > 0 && (v.maxVerifierSize <= 0 || len(verifier) <= v.maxVerifierSize)
}

func validKDFParams(params models.KDFParams) bool {
	return params.Iterations > 0 && params.MemoryKiB > 0 && params.Parallelism > 0
}

func validVersion(version string) bool {
	_, err := semver.NewVersion(version)
	return err == nil
}
