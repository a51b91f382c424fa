// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrUserNotFound indicates that no user is registered under the given username.
	ErrUserNotFound = errors.New("user not found")

	// ErrPasswordIncorrect indicates that the supplied password hash does not
	// match the stored one.
	ErrPasswordIncorrect = errors.New("password incorrect")

	// ErrUserExists indicates that a user with the given username already exists.
	// This is returned during registration when attempting to create a duplicate user.
	ErrUserExists = errors.New("user already exists")

	// ErrDataFormat indicates that the persisted credential table does not have
	// the expected header or column layout.
	ErrDataFormat = errors.New("malformed credential table")
)
