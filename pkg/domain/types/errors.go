package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption     = goerr.New("invalid option")
	ErrInvalidID         = goerr.New("invalid identifier")
	ErrValidationFailed  = goerr.New("validation failed")
	ErrNotFound          = goerr.New("not found")
	ErrSyncNotConfigured = goerr.New("repository sync not configured")
	ErrInvalidQuery      = goerr.New("invalid search query")
)
