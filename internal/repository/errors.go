package repository

import "errors"

// ErrStateNotFound is returned for lookups of a state id with no match.
var ErrStateNotFound = errors.New("state not found")

// ErrDistrictNotFound is returned for lookups, updates, or deletes of a
// district id with no match. Deleting an absent id is an observable
// not-found, not a silent success.
var ErrDistrictNotFound = errors.New("district not found")
