package auth

import "errors"

var (
	ErrInvalidToken = errors.New("invalid or missing access token")
	ErrMissingScope = errors.New("company scope missing from token")
)
