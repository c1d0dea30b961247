package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-around/models"
)

// Field names accepted by [RequestValidator.Validate] to restrict
// validation to a subset of a request's fields.
const (
	// FieldHandle targets the login handle (username, falling back to name).
	FieldHandle = "handle"

	// FieldPassword targets the password of register and login requests.
	FieldPassword = "password"

	// FieldIdentifier targets the account identifier of recovery requests
	// (username, name or email).
	FieldIdentifier = "identifier"

	// FieldToken targets the reset token.
	FieldToken = "token"

	// FieldNewPassword targets the replacement password.
	FieldNewPassword = "new_password"

	// FieldItems targets the order item list.
	FieldItems = "items"
)

// RequestValidator checks that inbound requests carry the fields their
// operation requires. It does not sanitize values; services do.
type RequestValidator struct {
}

// NewRequestValidator constructs a [RequestValidator].
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. When fields is empty every required field of the
// request is checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.check(fields, []string{FieldHandle, FieldPassword}, map[string]string{
			FieldHandle: value.Handle(), FieldPassword: value.Password,
		})
	case *models.RegisterRequest:
		return v.Validate(ctx, *value, fields...)
	case models.LoginRequest:
		return v.check(fields, []string{FieldHandle, FieldPassword}, map[string]string{
			FieldHandle: value.Handle(), FieldPassword: value.Password,
		})
	case *models.LoginRequest:
		return v.Validate(ctx, *value, fields...)
	case models.LegacyRegisterRequest:
		return v.check(fields, []string{FieldHandle, FieldPassword}, map[string]string{
			FieldHandle: value.Name, FieldPassword: value.Password,
		})
	case *models.LegacyRegisterRequest:
		return v.Validate(ctx, *value, fields...)
	case models.LegacyLoginRequest:
		return v.check(fields, []string{FieldHandle, FieldPassword}, map[string]string{
			FieldHandle: value.Name, FieldPassword: value.Password,
		})
	case *models.LegacyLoginRequest:
		return v.Validate(ctx, *value, fields...)
	case models.VerifyAnswersRequest:
		return v.validateLookup(value.Lookup(), fields)
	case *models.VerifyAnswersRequest:
		return v.Validate(ctx, *value, fields...)
	case models.QuestionsRequest:
		return v.validateLookup(value.Lookup(), fields)
	case *models.QuestionsRequest:
		return v.Validate(ctx, *value, fields...)
	case models.ResetPasswordRequest:
		return v.check(fields, []string{FieldToken, FieldNewPassword}, map[string]string{
			FieldToken: value.Token, FieldNewPassword: value.NewPassword,
		})
	case *models.ResetPasswordRequest:
		return v.Validate(ctx, *value, fields...)
	case models.CreateOrderRequest:
		return v.validateOrder(value, fields)
	case *models.CreateOrderRequest:
		return v.Validate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateLookup(lookup models.UserLookup, fields []string) error {
	for _, field := range defaultFields(fields, FieldIdentifier) {
		if field != FieldIdentifier {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if lookup.Empty() {
			return ErrEmptyIdentifier
		}
	}
	return nil
}

func (v *RequestValidator) validateOrder(req models.CreateOrderRequest, fields []string) error {
	for _, field := range defaultFields(fields, FieldItems) {
		if field != FieldItems {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if len(req.Items) == 0 {
			return ErrEmptyItems
		}
	}
	return nil
}

// check verifies that every selected field has a non-blank value. Only
// fields listed in allowed may be selected.
func (v *RequestValidator) check(fields, allowed []string, values map[string]string) error {
	for _, field := range defaultFields(fields, allowed...) {
		value, ok := values[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if strings.TrimSpace(value) == "" {
			return emptyFieldError(field)
		}
	}
	return nil
}

func emptyFieldError(field string) error {
	switch field {
	case FieldHandle:
		return ErrEmptyHandle
	case FieldPassword:
		return ErrEmptyPassword
	case FieldToken:
		return ErrEmptyToken
	case FieldNewPassword:
		return ErrEmptyNewPassword
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
