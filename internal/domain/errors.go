package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrAmbiguousID      = errors.New("task id prefix matches more than one task")
	ErrEmptyText        = errors.New("task text cannot be empty")
	ErrInvalidText      = errors.New("task text is not valid UTF-8")
	ErrEmptyID          = errors.New("task id cannot be empty")
	ErrDuplicateID      = errors.New("duplicate task id")
	ErrPersist          = errors.New("persist collection")
	ErrConfigExists     = errors.New("config file already exists")
	ErrConfigNil        = errors.New("config is nil")
	ErrUnknownBackend   = errors.New("unknown store backend")
	ErrUnknownFormat    = errors.New("unknown export format")
	ErrUnknownIDScheme  = errors.New("unknown id scheme")
	ErrInvalidStoreKey  = errors.New("invalid store key")
	ErrMissingStoreAddr = errors.New("store backend requires an address or DSN")
)
