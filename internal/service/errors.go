package service

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields is returned when a request lacks a required field.
	// It wraps the validator error naming the field.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidCredentials is returned by login when the account does not
	// exist or the password does not match. The two cases are not
	// distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken      = errors.New("token is invalid")
	ErrExpiredToken      = errors.New("token is expired")
	ErrWrongTokenPurpose = errors.New("wrong token purpose")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrAnswersMismatch is returned when recovery answers do not match the
	// stored ones, including when the account has none set.
	ErrAnswersMismatch = errors.New("security answers do not match")

	// ErrEmptyCart is returned when an order has no usable items.
	ErrEmptyCart = errors.New("order has no items")

	// ErrItemsMissingNames is the [ErrEmptyCart] case where items were
	// submitted but none had a name.
	ErrItemsMissingNames = fmt.Errorf("%w: items missing names", ErrEmptyCart)

	// ErrOrderTotalOutOfRange is returned when a line subtotal or the order
	// total is not a finite amount within the accepted range.
	ErrOrderTotalOutOfRange = errors.New("order total out of range")

	// ErrPersistence wraps every store failure that is not a lookup miss or
	// a uniqueness conflict.
	ErrPersistence = errors.New("persistence failure")
)
