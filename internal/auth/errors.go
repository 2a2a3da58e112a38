package auth

import "errors"

// ErrUserNotFound is returned when no user record matches the identifier.
var ErrUserNotFound = errors.New("user not found")

// ErrMismatchedHashAndPassword is returned when the password does not match
// the stored hash.
var ErrMismatchedHashAndPassword = errors.New("the credentials provided are invalid")

// ErrNoEmptyString rejects empty passwords before hashing.
var ErrNoEmptyString = errors.New("password must not be empty")

// ErrMissingToken is returned when a request carries no bearer token.
var ErrMissingToken = errors.New("missing or malformed authorization header")

// ErrTokenMalformed covers malformed tokens and signature mismatches.
var ErrTokenMalformed = errors.New("invalid authentication token")

// ErrTokenExpired is returned for well-formed tokens past their expiry.
var ErrTokenExpired = errors.New("authentication token is expired")
