package client

import "errors"

var (
	ErrInvalidItem  = errors.New("invalid order item")
	ErrNotConfirmed = errors.New("refusing to delete every order without --yes")
)
