// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"crypto/md5"
	"encoding/hex"
	"time"

	"energy_backend/internal/feature/auth/domain"
)

// UserRepository abstracts the credential store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Lookup returns the stored password hash for a username.
	Lookup(username string) (string, bool)

	// Register persists a new credential pair. It fails with
	// domain.ErrUserExists when the username is already taken, without mutation.
	Register(username, passwordHash string) error
}

// SessionStore abstracts the token to username binding map.
type SessionStore interface {
	Put(token, username string)
	Owner(token string) (string, bool)
}

// AuthUsecase verifies credentials and issues/validates date-scoped session
// tokens.
//
// The token is a pure function of (username, passwordHash, current UTC date),
// kept bit-compatible with the legacy scheme: there is no server-side secret,
// no revocation, and anyone who knows a user's password hash can derive a
// valid token for the day. Callers relying on stronger session guarantees
// must not reuse this scheme.
type AuthUsecase struct {
	users    UserRepository
	sessions SessionStore
}

// NewAuthUsecase creates a new AuthUsecase with the given stores.
func NewAuthUsecase(users UserRepository, sessions SessionStore) *AuthUsecase {
	return &AuthUsecase{users: users, sessions: sessions}
}

// Token derives the session token for a credential pair on a given day.
// Exported so the validity check and tests derive tokens the same single way.
func Token(username, passwordHash string, day time.Time) string {
	sum := md5.Sum([]byte(username + passwordHash + day.UTC().Format("2006-01-02")))
	return hex.EncodeToString(sum[:])
}

// CreateSession verifies the credential pair and issues a token for today.
func (u *AuthUsecase) CreateSession(username, passwordHash string) (string, error) {
	stored, ok := u.users.Lookup(username)
	if !ok {
		return "", domain.ErrUserNotFound
	}
	if passwordHash != stored {
		return "", domain.ErrPasswordIncorrect
	}

	token := Token(username, passwordHash, time.Now())
	u.sessions.Put(token, username)
	return token, nil
}

// CheckValid reports whether a token was issued to a known user and still
// validates for today. Expiry is implicit: the expected token is recomputed
// from the stored hash and today's UTC date, so yesterday's token fails the
// comparison without any stored timestamp.
func (u *AuthUsecase) CheckValid(token string) bool {
	username, ok := u.sessions.Owner(token)
	if !ok {
		return false
	}
	stored, ok := u.users.Lookup(username)
	if !ok {
		return false
	}
	return token == Token(username, stored, time.Now())
}

// Register adds a new credential pair to the registry. It is not idempotent:
// a second registration for the same username fails with domain.ErrUserExists.
func (u *AuthUsecase) Register(username, passwordHash string) error {
	return u.users.Register(username, passwordHash)
}
