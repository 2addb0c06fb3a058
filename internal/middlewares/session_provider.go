package middlewares

import (
	"context"
	"net/http"
	"objectviewer/internal/authentication"
	"objectviewer/internal/breadcrumbs"
)

//go:generate mockgen -source=session_provider.go -destination=../mocks/session.go -package=mocks

type WebSessionProvider interface {
	LoadAndSave(next http.Handler) http.Handler

	Authenticate(ctx context.Context, username, password string) (bool, error)
	AuthenticateExternal(ctx context.Context, req *authentication.ExternalRequest) (bool, error)
	AuthenticationSession(ctx context.Context) *authentication.Session
	IsSignedIn(ctx context.Context) bool
	Roles(ctx context.Context) []string
	Touch(ctx context.Context) error
	Invalidate(ctx context.Context) error
	Detach(ctx context.Context)
	ReplaceSession(ctx context.Context) error

	Breadcrumbs(ctx context.Context) *breadcrumbs.BreadcrumbModel
	Visit(ctx context.Context, b breadcrumbs.Bookmark) error
	RemoveBreadcrumb(ctx context.Context, oid string) bool
	Bookmarks(ctx context.Context) *breadcrumbs.BookmarkedPagesModel
	BookmarkPage(ctx context.Context, b breadcrumbs.Bookmark) error
	RemoveBookmark(ctx context.Context, oid string) bool
	ClearBookmarks(ctx context.Context)

	SetRedirectAfterLogin(ctx context.Context, redirectAfterLogin string)
	GetRedirectAfterLogin(ctx context.Context) string
	SetOauthState(ctx context.Context, state string)
	GetOauthState(ctx context.Context) string
	ClearOauthState(ctx context.Context)
	SetOauthNonce(ctx context.Context, nonce string)
	GetOauthNonce(ctx context.Context) string
	ClearOauthNonce(ctx context.Context)
	SetOauthCodeVerifier(ctx context.Context, verifier string)
	GetOauthCodeVerifier(ctx context.Context) string
	ClearOauthCodeVerifier(ctx context.Context)
}
