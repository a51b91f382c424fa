// Package entity defines the domain entities for the auth feature.
package entity

// User represents a registered user in the system.
type User struct {
	// Username is the unique identifier for the user.
	Username string

	// PasswordHash is the stored password hash. Hashing happens on the client
	// before transmission; the server never sees a plaintext password.
	PasswordHash string
}

// Session binds an issued token to its owner. A session has no stored expiry:
// the token itself encodes the issue date and stops validating at the next
// UTC day rollover.
type Session struct {
	Token    string
	Username string
}
