package websession

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"objectviewer/internal/authentication"
	"objectviewer/internal/breadcrumbs"
	"objectviewer/internal/config"
	"objectviewer/internal/mocks"
	"objectviewer/internal/sessionlog"
	"objectviewer/internal/testutil"
	"sync"
	"testing"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type recordingLog struct {
	mu     sync.Mutex
	events []sessionlog.Event
}

func (r *recordingLog) Log(_ context.Context, event sessionlog.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingLog) Events() []sessionlog.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sessionlog.Event(nil), r.events...)
}

type fixture struct {
	sessions   *SessionManager
	auth       *authentication.Manager
	log        *recordingLog
	logHandler *testutil.TestLogHandler
	now        time.Time
	cookie     *http.Cookie
}

func newFixture(t *testing.T, mutate ...func(*config.Config)) *fixture {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Sessions:    config.DefaultSessionConfig,
		Breadcrumbs: config.DefaultBreadcrumbsConfig,
	}
	for _, m := range mutate {
		m(cfg)
	}

	passwords, err := authentication.NewPasswordAuthenticator([]config.UserConfig{
		{Username: "sven", DisplayName: "Sven", PasswordHash: string(hash), Roles: []string{"admin"}},
	})
	require.NoError(t, err)

	f := &fixture{
		log:        &recordingLog{},
		logHandler: testutil.NewTestLogHandler(),
		now:        time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	logger := slog.New(f.logHandler)

	f.auth = authentication.NewManager(authentication.NewMemRegistry(), logger, passwords).
		WithClock(func() time.Time { return f.now })

	f.sessions, err = NewSessionManager(logger, cfg, nil, f.auth, f.log)
	require.NoError(t, err)

	return f
}

// do runs fn inside a request carrying the fixture's session cookie and keeps
// whatever cookie the response sets.
func (f *fixture) do(t *testing.T, fn func(ctx context.Context)) {
	t.Helper()

	handler := f.sessions.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if f.cookie != nil {
		req.AddCookie(f.cookie)
	}
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	for _, c := range rr.Result().Cookies() {
		if c.Name == f.sessions.Cookie.Name {
			f.cookie = c
		}
	}
}

func (f *fixture) signIn(t *testing.T) {
	t.Helper()
	f.do(t, func(ctx context.Context) {
		ok, err := f.sessions.Authenticate(ctx, "sven", "pass")
		require.NoError(t, err)
		require.True(t, ok)
	})
}

func TestNewSessionManager_Stores(t *testing.T) {
	logger := slog.New(testutil.NewTestLogHandler())

	_, err := NewSessionManager(logger, &config.Config{Sessions: config.SessionConfig{Store: "disk"}}, nil, nil, nil)
	assert.ErrorContains(t, err, "unsupported session store")

	_, err = NewSessionManager(logger, &config.Config{Sessions: config.SessionConfig{Store: "redis"}}, nil, nil, nil)
	assert.ErrorContains(t, err, "requires a redis client")

	sm, err := NewSessionManager(logger, &config.Config{Sessions: config.DefaultSessionConfig}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSessionConfig.Name, sm.Cookie.Name)
	assert.True(t, sm.Cookie.HttpOnly)
	assert.Equal(t, config.DefaultSessionConfig.IdleTimeout, sm.IdleTimeout)

	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	t.Cleanup(func() { _ = client.Close() })
	redisConfig := config.DefaultSessionConfig
	redisConfig.Store = "redis"
	sm, err = NewSessionManager(logger, &config.Config{Sessions: redisConfig}, client, nil, nil)
	require.NoError(t, err)
	assert.IsType(t, &goredisstore.RedisStore{}, sm.Store)
}

func TestAuthenticate_Success(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	f.do(t, func(ctx context.Context) {
		assert.True(t, f.sessions.IsSignedIn(ctx))
		assert.Equal(t, []string{RoleUser, "admin"}, f.sessions.Roles(ctx))

		session := f.sessions.AuthenticationSession(ctx)
		require.NotNil(t, session)
		assert.Equal(t, "sven", session.UserName)
		assert.Equal(t, f.sessions.GetString(ctx, string(SessionKeyLogID)), session.WebSessionID)
	})

	events := f.log.Events()
	require.Len(t, events, 1)
	assert.Equal(t, sessionlog.TypeLogin, events[0].Type)
	assert.Equal(t, "sven", events[0].Username)
	assert.Equal(t, sessionlog.CausedByNone, events[0].CausedBy)
	assert.Equal(t, f.now, events[0].Timestamp)
	assert.NotEmpty(t, events[0].SessionID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	f := newFixture(t)

	f.do(t, func(ctx context.Context) {
		ok, err := f.sessions.Authenticate(ctx, "sven", "wrong")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, f.sessions.IsSignedIn(ctx))
		assert.Nil(t, f.sessions.Roles(ctx))
		assert.Nil(t, f.sessions.AuthenticationSession(ctx))
	})

	assert.Empty(t, f.log.Events())
}

func TestAuthenticate_NoSuitableAuthenticator(t *testing.T) {
	f := newFixture(t)

	f.do(t, func(ctx context.Context) {
		ok, err := f.sessions.AuthenticateExternal(ctx, &authentication.ExternalRequest{Username: "ext"})
		assert.ErrorIs(t, err, authentication.ErrNoAuthenticator)
		assert.False(t, ok)
	})
}

func TestAuthenticate_LoggingFailureDoesNotFailLogin(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	failing := mocks.NewMockService(ctrl)
	failing.EXPECT().Log(gomock.Any(), gomock.Any()).Return(errors.New("sink down"))
	f.sessions.sessionLog = failing

	f.signIn(t)

	f.do(t, func(ctx context.Context) {
		assert.True(t, f.sessions.IsSignedIn(ctx))
	})
	assert.True(t, f.logHandler.ContainsMessage(slog.LevelError, "Failed to log session event"))
}

func TestAuthenticate_WithoutSessionLog(t *testing.T) {
	f := newFixture(t)
	f.sessions.sessionLog = nil

	f.signIn(t)
	f.do(t, func(ctx context.Context) {
		assert.NoError(t, f.sessions.Invalidate(ctx))
	})
}

func TestInvalidate_LogsUserLogout(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	var closed *authentication.Session
	f.do(t, func(ctx context.Context) {
		closed = f.sessions.AuthenticationSession(ctx)
		require.NoError(t, f.sessions.Invalidate(ctx))
	})

	assert.False(t, f.auth.IsSessionValid(context.Background(), closed))

	f.do(t, func(ctx context.Context) {
		assert.False(t, f.sessions.IsSignedIn(ctx))
	})

	events := f.log.Events()
	require.Len(t, events, 2)
	logout := events[1]
	assert.Equal(t, sessionlog.TypeLogout, logout.Type)
	assert.Equal(t, "sven", logout.Username)
	assert.Equal(t, sessionlog.CausedByUser, logout.CausedBy)
	assert.Equal(t, events[0].SessionID, logout.SessionID)
}

func TestInvalidate_WithoutAuthenticationSession(t *testing.T) {
	f := newFixture(t)

	f.do(t, func(ctx context.Context) {
		require.NoError(t, f.sessions.Invalidate(ctx))
	})

	events := f.log.Events()
	require.Len(t, events, 1)
	assert.Equal(t, sessionlog.TypeLogout, events[0].Type)
	assert.Empty(t, events[0].Username)
	assert.Equal(t, sessionlog.CausedByUser, events[0].CausedBy)
}

func TestExpire_LogsExpirationAndDropsBinding(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	f.now = f.now.Add(time.Hour)
	expired, err := f.auth.Expired(context.Background(), 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, expired, 1)

	require.NoError(t, f.sessions.Expire(context.Background(), expired[0]))
	assert.NoError(t, f.sessions.Expire(context.Background(), nil))

	f.do(t, func(ctx context.Context) {
		assert.False(t, f.sessions.IsSignedIn(ctx))
		assert.Nil(t, f.sessions.AuthenticationSession(ctx))
	})

	events := f.log.Events()
	require.Len(t, events, 2)
	assert.Equal(t, sessionlog.TypeLogout, events[1].Type)
	assert.Equal(t, "sven", events[1].Username)
	assert.Equal(t, sessionlog.CausedBySessionExpiration, events[1].CausedBy)
	assert.Equal(t, events[0].SessionID, events[1].SessionID)
}

func TestTouch_RefreshesLastSeen(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	f.now = f.now.Add(20 * time.Minute)
	f.do(t, func(ctx context.Context) {
		require.NoError(t, f.sessions.Touch(ctx))
	})

	f.now = f.now.Add(20 * time.Minute)
	expired, err := f.auth.Expired(context.Background(), 30*time.Minute)
	require.NoError(t, err)
	assert.Empty(t, expired)
}

func TestReplaceSession(t *testing.T) {
	tests := []struct {
		name         string
		renew        bool
		expectRotate bool
	}{
		{name: "token kept by default", renew: false, expectRotate: false},
		{name: "token renewed when configured", renew: true, expectRotate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, func(cfg *config.Config) { cfg.Sessions.RenewTokenOnLogin = tt.renew })

			f.do(t, func(ctx context.Context) {
				f.sessions.SetRedirectAfterLogin(ctx, "/objects/1")
			})
			require.NotNil(t, f.cookie)
			before := f.cookie.Value

			f.signIn(t)
			assert.Equal(t, tt.expectRotate, before != f.cookie.Value)

			f.do(t, func(ctx context.Context) {
				assert.True(t, f.sessions.IsSignedIn(ctx))
				assert.Equal(t, "/objects/1", f.sessions.GetRedirectAfterLogin(ctx))
			})
		})
	}
}

func TestBreadcrumbs_PersistAndDetach(t *testing.T) {
	f := newFixture(t)

	f.do(t, func(ctx context.Context) {
		require.NoError(t, f.sessions.Visit(ctx, breadcrumbs.Bookmark{OID: "a", Title: "A"}))
		require.NoError(t, f.sessions.Visit(ctx, breadcrumbs.Bookmark{OID: "b", Title: "B"}))
		assert.Equal(t, "b", f.sessions.Breadcrumbs(ctx).Current.OID)
		f.sessions.Detach(ctx)
	})

	f.do(t, func(ctx context.Context) {
		model := f.sessions.Breadcrumbs(ctx)
		assert.Nil(t, model.Current)
		require.Equal(t, 2, model.Len())
		assert.Equal(t, "b", model.List()[0].OID)

		assert.True(t, f.sessions.RemoveBreadcrumb(ctx, "a"))
		assert.False(t, f.sessions.RemoveBreadcrumb(ctx, "missing"))
	})

	f.do(t, func(ctx context.Context) {
		assert.Equal(t, 1, f.sessions.Breadcrumbs(ctx).Len())
	})
}

func TestBookmarks_Persist(t *testing.T) {
	f := newFixture(t)

	f.do(t, func(ctx context.Context) {
		require.NoError(t, f.sessions.BookmarkPage(ctx, breadcrumbs.Bookmark{OID: "root", Title: "Root"}))
		require.NoError(t, f.sessions.BookmarkPage(ctx, breadcrumbs.Bookmark{OID: "child", Parent: "root"}))
		assert.ErrorIs(t, f.sessions.BookmarkPage(ctx, breadcrumbs.Bookmark{}), breadcrumbs.ErrMissingOID)
	})

	f.do(t, func(ctx context.Context) {
		tree := f.sessions.Bookmarks(ctx).Tree()
		require.Len(t, tree, 1)
		require.Len(t, tree[0].Children, 1)
		assert.Equal(t, "child", tree[0].Children[0].OID)

		assert.True(t, f.sessions.RemoveBookmark(ctx, "child"))
	})

	f.do(t, func(ctx context.Context) {
		assert.Equal(t, 1, f.sessions.Bookmarks(ctx).Len())
		f.sessions.ClearBookmarks(ctx)
	})

	f.do(t, func(ctx context.Context) {
		assert.Equal(t, 0, f.sessions.Bookmarks(ctx).Len())
	})
}

func TestOauthState_RoundTrip(t *testing.T) {
	f := newFixture(t)

	f.do(t, func(ctx context.Context) {
		f.sessions.SetOauthState(ctx, "state")
		f.sessions.SetOauthNonce(ctx, "nonce")
		f.sessions.SetOauthCodeVerifier(ctx, "verifier")
	})

	f.do(t, func(ctx context.Context) {
		assert.Equal(t, "state", f.sessions.GetOauthState(ctx))
		assert.Equal(t, "nonce", f.sessions.GetOauthNonce(ctx))
		assert.Equal(t, "verifier", f.sessions.GetOauthCodeVerifier(ctx))
		f.sessions.ClearOauthState(ctx)
		f.sessions.ClearOauthNonce(ctx)
		f.sessions.ClearOauthCodeVerifier(ctx)
	})

	f.do(t, func(ctx context.Context) {
		assert.Empty(t, f.sessions.GetOauthState(ctx))
		assert.Empty(t, f.sessions.GetOauthNonce(ctx))
		assert.Empty(t, f.sessions.GetOauthCodeVerifier(ctx))
	})
}

func TestAuthenticate_FailedReloginSignsOut(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	var previous *authentication.Session
	f.do(t, func(ctx context.Context) {
		previous = f.sessions.AuthenticationSession(ctx)
		ok, err := f.sessions.Authenticate(ctx, "sven", "wrong")
		require.NoError(t, err)
		assert.False(t, ok)
	})
	require.NotNil(t, previous)

	f.do(t, func(ctx context.Context) {
		assert.False(t, f.sessions.IsSignedIn(ctx))
		assert.Nil(t, f.sessions.AuthenticationSession(ctx))
	})

	assert.False(t, f.auth.IsSessionValid(context.Background(), previous))
	// only the first login is logged
	assert.Len(t, f.log.Events(), 1)
}

func TestRoles_EmptyRolesSurviveRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.auth = authentication.NewManager(authentication.NewMemRegistry(), slog.New(f.logHandler), authentication.NewExternalAuthenticator(nil)).
		WithClock(func() time.Time { return f.now })
	f.sessions.auth = f.auth

	f.do(t, func(ctx context.Context) {
		ok, err := f.sessions.AuthenticateExternal(ctx, &authentication.ExternalRequest{Username: "ext", Groups: []string{"nobody"}})
		require.NoError(t, err)
		require.True(t, ok)
	})

	f.do(t, func(ctx context.Context) {
		require.True(t, f.sessions.IsSignedIn(ctx))
		roles := f.sessions.Roles(ctx)
		assert.NotNil(t, roles)
		assert.Empty(t, roles)
	})
}

func TestExpire_SkipsSessionTouchedSinceListing(t *testing.T) {
	f := newFixture(t)
	f.signIn(t)

	f.now = f.now.Add(time.Hour)
	expired, err := f.auth.Expired(context.Background(), 30*time.Minute)
	require.NoError(t, err)
	require.Len(t, expired, 1)

	f.do(t, func(ctx context.Context) {
		require.NoError(t, f.sessions.Touch(ctx))
	})

	err = f.sessions.Expire(context.Background(), expired[0])
	assert.ErrorIs(t, err, authentication.ErrSessionActive)

	f.do(t, func(ctx context.Context) {
		assert.True(t, f.sessions.IsSignedIn(ctx))
	})
	assert.Len(t, f.log.Events(), 1)
}
