package handlers

import (
	"errors"
	"net/http"
	"objectviewer/internal/sessionlog"
	"objectviewer/internal/testutil"
	"testing"
	"time"
)

func TestGETSessionEventsHandler_Recent(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/session/events")
	defer tc.Finish()

	events := []sessionlog.Event{
		{Type: sessionlog.TypeLogout, Username: "sven", CausedBy: sessionlog.CausedByUser, SessionID: "s1", Timestamp: time.Unix(200, 0).UTC()},
		{Type: sessionlog.TypeLogin, Username: "sven", SessionID: "s1", Timestamp: time.Unix(100, 0).UTC()},
	}
	tc.MockStorage.EXPECT().GetRecentSessionEvents(tc.AppContext, 0).Return(events, nil)

	tc.CallHandler(GETSessionEventsHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "count", float64(2))
}

func TestGETSessionEventsHandler_ByUserWithLimit(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/session/events?user=sven&limit=10")
	defer tc.Finish()

	tc.MockStorage.EXPECT().GetSessionEventsByUser(tc.AppContext, "sven", 10).Return(nil, nil)

	tc.CallHandler(GETSessionEventsHandler)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertJSONField(t, "count", float64(0))

	if events, ok := tc.GetJSONResponse(t)["events"].([]interface{}); !ok || len(events) != 0 {
		t.Errorf("Expected an empty events array, got %v", tc.GetJSONResponse(t)["events"])
	}
}

func TestGETSessionEventsHandler_InvalidLimit(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/session/events?limit=many")
	defer tc.Finish()

	tc.CallHandler(GETSessionEventsHandler)

	tc.AssertStatus(t, http.StatusBadRequest)
	tc.AssertJSONField(t, "error", "invalid limit")
}

func TestGETSessionEventsHandler_StorageDisabled(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/session/events").WithoutStorage()
	defer tc.Finish()

	tc.CallHandler(GETSessionEventsHandler)

	tc.AssertStatus(t, http.StatusNotFound)
}

func TestGETSessionEventsHandler_StorageError(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/session/events")
	defer tc.Finish()

	tc.MockStorage.EXPECT().GetRecentSessionEvents(tc.AppContext, 0).Return(nil, errors.New("db down"))

	tc.CallHandler(GETSessionEventsHandler)

	tc.AssertStatus(t, http.StatusInternalServerError)
}
