package sessionlog_test

import (
	"context"
	"errors"
	"log/slog"
	"objectviewer/internal/metrics"
	"objectviewer/internal/sessionlog"
	"objectviewer/internal/testutil"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loginEvent = sessionlog.Event{
	Type:      sessionlog.TypeLogin,
	Username:  "sven",
	Timestamp: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	SessionID: "5f0c9a2e",
}

func TestSlogService_LogsEvent(t *testing.T) {
	handler := testutil.NewTestLogHandler()
	service := sessionlog.NewSlogService(slog.New(handler))

	logout := loginEvent
	logout.Type = sessionlog.TypeLogout
	logout.CausedBy = sessionlog.CausedBySessionExpiration

	require.NoError(t, service.Log(context.Background(), loginEvent))
	require.NoError(t, service.Log(context.Background(), logout))

	records := handler.GetRecordsByLevel(slog.LevelInfo)
	require.Len(t, records, 2)

	assert.Equal(t, "Session event", records[0].Message)
	assert.Equal(t, "LOGIN", records[0].Attrs["type"])
	assert.Equal(t, "sven", records[0].Attrs["username"])
	assert.Equal(t, "5f0c9a2e", records[0].Attrs["session_id"])
	assert.NotContains(t, records[0].Attrs, "caused_by")

	assert.Equal(t, "LOGOUT", records[1].Attrs["type"])
	assert.Equal(t, "SESSION_EXPIRATION", records[1].Attrs["caused_by"])
}

func TestMetricsService_CountsByTypeAndCause(t *testing.T) {
	login := metrics.SessionEventsTotal.WithLabelValues("LOGIN", "none")
	logout := metrics.SessionEventsTotal.WithLabelValues("LOGOUT", "USER")
	loginBefore := promtestutil.ToFloat64(login)
	logoutBefore := promtestutil.ToFloat64(logout)

	var service sessionlog.MetricsService
	require.NoError(t, service.Log(context.Background(), loginEvent))

	userLogout := loginEvent
	userLogout.Type = sessionlog.TypeLogout
	userLogout.CausedBy = sessionlog.CausedByUser
	require.NoError(t, service.Log(context.Background(), userLogout))

	assert.Equal(t, loginBefore+1, promtestutil.ToFloat64(login))
	assert.Equal(t, logoutBefore+1, promtestutil.ToFloat64(logout))
}

type recordingService struct {
	events []sessionlog.Event
	err    error
}

func (r *recordingService) Log(_ context.Context, event sessionlog.Event) error {
	r.events = append(r.events, event)
	return r.err
}

func TestMulti_CallsEveryServiceAndJoinsErrors(t *testing.T) {
	errFirst := errors.New("first")
	errThird := errors.New("third")
	first := &recordingService{err: errFirst}
	second := &recordingService{}
	third := &recordingService{err: errThird}

	err := sessionlog.Multi{first, second, third}.Log(context.Background(), loginEvent)

	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errThird)
	for _, s := range []*recordingService{first, second, third} {
		assert.Equal(t, []sessionlog.Event{loginEvent}, s.events)
	}
}

func TestMulti_EmptyIsNoop(t *testing.T) {
	assert.NoError(t, sessionlog.Multi{}.Log(context.Background(), loginEvent))
}

type failingStore struct{ err error }

func (f failingStore) InsertSessionEvent(context.Context, sessionlog.Event) error { return f.err }

func TestStorageService_WrapsStoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	err := sessionlog.NewStorageService(failingStore{err: boom}).Log(context.Background(), loginEvent)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to persist session event")

	assert.NoError(t, sessionlog.NewStorageService(failingStore{}).Log(context.Background(), loginEvent))
}
