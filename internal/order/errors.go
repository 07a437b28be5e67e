package order

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMissingContact    = errors.New("name and phone are required")
	ErrIncompleteAddress = errors.New("delivery address is incomplete")
	ErrCheckoutClosed    = errors.New("checkout is not open")
	ErrUnknownProduct    = errors.New("unknown product")
)
