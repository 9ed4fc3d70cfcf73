package repository

import "errors"

// ErrNotFoundLocally is the one hard failure a repository surfaces: an
// update or delete addressed a record the local cache has never seen.
// Remote failures are soft and never escape a repository operation.
var ErrNotFoundLocally = errors.New("record not found locally")
