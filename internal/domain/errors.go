package domain

import "errors"

var (
	ErrAccommodationUnavailable = errors.New("accommodation is not available")
	ErrLevelMismatch            = errors.New("lesson level does not match customer ski level")
	ErrDuplicateID              = errors.New("customer id already exists")
	ErrPersistenceCorrupt       = errors.New("persisted data is corrupt")
	ErrInvalidArgument          = errors.New("invalid argument")
	ErrNotFound                 = errors.New("not found")
)
