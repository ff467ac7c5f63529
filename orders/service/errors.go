package service

import (
	"errors"
)

var (
	ErrInvalidTransition = errors.New("order status transition is not allowed")
	ErrMissingStatus     = errors.New("target status is missing or unknown")
)
