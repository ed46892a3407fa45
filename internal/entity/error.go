package entity

import (
	"errors"
)

var (
	ErrConfigPathNotSet  = errors.New("CONFIG_PATH not set and -config flag not provided")
	ErrMailerDisabled    = errors.New("email delivery is not configured")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrLookupUnavailable = errors.New("order lookup is not supported")
)
