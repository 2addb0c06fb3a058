package handlers

import (
	"net/http"
	"objectviewer/internal/middlewares"
)

func SessionStatusHandler(ctx *middlewares.AppContext) {
	if !ctx.WebSession.IsSignedIn(ctx) {
		ctx.WriteJSON(http.StatusUnauthorized, SessionStatusResponse{Authenticated: false})
		return
	}

	response, ok := signedInStatus(ctx)
	if !ok {
		ctx.WriteJSON(http.StatusUnauthorized, response)
		return
	}

	ctx.WriteJSON(http.StatusOK, response)
}
