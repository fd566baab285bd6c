package db

import "errors"

// Constraint violations and not-found conditions surface as these
// sentinels; callers match with errors.Is. Anything else coming out of
// the repository is a store failure and is not retried.
var (
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrUserNotFound      = errors.New("user does not exist")
	ErrCardNotFound      = errors.New("bank card does not exist")
	ErrSanseNotFound     = errors.New("sanse does not exist")
)
