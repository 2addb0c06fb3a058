package handlers

import (
	"net/http"
	"objectviewer/internal/middlewares"
	"objectviewer/internal/sessionlog"
	"strconv"
)

// GETSessionEventsHandler lists persisted login and logout events, newest
// first, optionally filtered by user.
func GETSessionEventsHandler(ctx *middlewares.AppContext) {
	if ctx.Storage == nil {
		ctx.SetJSONError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}

	query := ctx.Request.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			ctx.SetJSONError(http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	var (
		events []sessionlog.Event
		err    error
	)
	if user := query.Get("user"); user != "" {
		events, err = ctx.Storage.GetSessionEventsByUser(ctx, user, limit)
	} else {
		events, err = ctx.Storage.GetRecentSessionEvents(ctx, limit)
	}
	if err != nil {
		ctx.SetInternalError("Failed to load session events", err)
		return
	}

	if events == nil {
		events = []sessionlog.Event{}
	}

	ctx.WriteJSON(http.StatusOK, SessionEventsResponse{Events: events, Count: len(events)})
}
