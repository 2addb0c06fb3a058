package authentication

import (
	"context"
	"errors"
	"fmt"
	"objectviewer/internal/config"

	"golang.org/x/crypto/bcrypt"
)

const passwordAuthenticatorName = "password"

type passwordUser struct {
	displayName string
	hash        []byte
	roles       []string
}

// PasswordAuthenticator checks usernames and passwords against configured
// users whose passwords are stored as bcrypt hashes.
type PasswordAuthenticator struct {
	users     map[string]passwordUser
	dummyHash []byte
}

func NewPasswordAuthenticator(users []config.UserConfig) (*PasswordAuthenticator, error) {
	cost := bcrypt.DefaultCost
	byName := make(map[string]passwordUser, len(users))

	for _, u := range users {
		hash := []byte(u.PasswordHash)
		c, err := bcrypt.Cost(hash)
		if err != nil {
			return nil, fmt.Errorf("invalid password hash for user %s: %w", u.Username, err)
		}
		cost = c

		byName[u.Username] = passwordUser{
			displayName: u.DisplayName,
			hash:        hash,
			roles:       u.Roles,
		}
	}

	// unknown users are compared against this so lookups take the same time
	dummy, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dummy hash: %w", err)
	}

	return &PasswordAuthenticator{users: byName, dummyHash: dummy}, nil
}

func (a *PasswordAuthenticator) Name() string {
	return passwordAuthenticatorName
}

func (a *PasswordAuthenticator) CanAuthenticate(req any) bool {
	_, ok := req.(*Request)
	return ok
}

func (a *PasswordAuthenticator) Authenticate(_ context.Context, req any) (*Identity, error) {
	r, ok := req.(*Request)
	if !ok {
		return nil, fmt.Errorf("unsupported request type %T", req)
	}

	user, known := a.users[r.Username]
	hash := user.hash
	if !known {
		hash = a.dummyHash
	}

	err := bcrypt.CompareHashAndPassword(hash, []byte(r.Password))
	if !known || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, ErrAuthenticationFailed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	displayName := user.displayName
	if displayName == "" {
		displayName = r.Username
	}

	return &Identity{
		Username:    r.Username,
		DisplayName: displayName,
		Roles:       user.roles,
	}, nil
}
