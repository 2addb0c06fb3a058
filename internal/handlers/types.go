package handlers

import "objectviewer/internal/sessionlog"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SessionUser struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
}

type SessionStatusResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user,omitempty"`
	Roles         []string     `json:"roles,omitempty"`
}

type SessionEventsResponse struct {
	Events []sessionlog.Event `json:"events"`
	Count  int                `json:"count"`
}

// maxRequestBody caps JSON request bodies.
const maxRequestBody = 1 << 16
