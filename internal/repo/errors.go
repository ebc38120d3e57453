// Package repo provides in-memory repositories, one per entity kind.
// Collections are process-lifetime lists and maps guarded by a coarse
// mutex per repository; every query is a linear scan.
package repo

import "errors"

// All repositories report outcomes through these sentinels so callers can
// handle not-found, duplicate and wrong-kind cases uniformly with
// errors.Is.
var (
	ErrNotFound    = errors.New("entity not found")
	ErrDuplicateID = errors.New("entity with this ID already exists")
	ErrWrongKind   = errors.New("vehicle is not of the kind this repository stores")
	ErrNilEntity   = errors.New("entity cannot be nil")
)
