package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"objectviewer/internal/middlewares"
	"strings"
)

func decodeJSON(ctx *middlewares.AppContext, v any) error {
	body := http.MaxBytesReader(ctx.Response, ctx.Request.Body, maxRequestBody)
	defer body.Close()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// signedInStatus describes the signed-in session, or reports false when the
// session has none.
func signedInStatus(ctx *middlewares.AppContext) (SessionStatusResponse, bool) {
	session := ctx.WebSession.AuthenticationSession(ctx)
	if session == nil {
		return SessionStatusResponse{Authenticated: false}, false
	}

	return SessionStatusResponse{
		Authenticated: true,
		User: &SessionUser{
			Username:    session.UserName,
			DisplayName: session.DisplayName,
		},
		Roles: ctx.WebSession.Roles(ctx),
	}, true
}

// RedactEmail is used to redact emails (mostly for logs)
func RedactEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return ""
	}

	localRunes := []rune(parts[0])
	domain := parts[1]

	if len(localRunes) <= 2 {
		return strings.Repeat("*", len(localRunes)) + "@" + domain
	}

	first := string(localRunes[0])
	last := string(localRunes[len(localRunes)-1])
	middle := strings.Repeat("*", len(localRunes)-2)

	return first + middle + last + "@" + domain
}

// isLocalRedirect accepts only paths on this site: a single leading slash
// and nothing that parses to a scheme or host.
func isLocalRedirect(target string) bool {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return false
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return false
	}
	return parsed.Scheme == "" && parsed.Host == ""
}

// refererPath returns the path of a Referer pointing at this host, so the
// browser returns to where it came from. Other referers are ignored.
func refererPath(r *http.Request) string {
	referer := r.Header.Get("Referer")
	if referer == "" {
		return ""
	}

	parsed, err := url.Parse(referer)
	if err != nil || parsed.Host != r.Host {
		return ""
	}

	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}
	return path
}
