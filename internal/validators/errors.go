package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyHandle      = errors.New("username or name is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyIdentifier  = errors.New("username, name or email is required")
	ErrEmptyToken       = errors.New("token is required")
	ErrEmptyNewPassword = errors.New("new password is required")
	ErrEmptyItems       = errors.New("at least one item is required")
)
