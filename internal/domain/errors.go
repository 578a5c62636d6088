package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidCount = errors.New("count must be between 0 and pool size")
)
