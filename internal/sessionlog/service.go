// Package sessionlog records when users log in and out and why.
package sessionlog

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=../mocks/sessionlog.go -package=mocks

type Type string

const (
	TypeLogin  Type = "LOGIN"
	TypeLogout Type = "LOGOUT"
)

// CausedBy explains a logout. Logins carry no cause.
type CausedBy string

const (
	CausedByNone              CausedBy = ""
	CausedByUser              CausedBy = "USER"
	CausedBySessionExpiration CausedBy = "SESSION_EXPIRATION"
)

type Event struct {
	Type      Type      `json:"type"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
	CausedBy  CausedBy  `json:"caused_by,omitempty"`
	SessionID string    `json:"session_id"`
}

type Service interface {
	Log(ctx context.Context, event Event) error
}
