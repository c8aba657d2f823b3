package errors

import (
	"errors"
)

var (
	ErrUnauthorized          = errors.New("missing or invalid token")
	ErrNoInputData           = errors.New("no input data provided")
	ErrMissingRequiredFields = errors.New("email and app_uuid are required")
	ErrInvalidAppUUID        = errors.New("invalid app_uuid format")
	ErrStoreUnavailable      = errors.New("blacklist store unavailable")
)
