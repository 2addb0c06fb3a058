package handlers

import (
	"net/http"
	"objectviewer/internal/middlewares"
)

func POSTLogoutHandler(ctx *middlewares.AppContext) {
	if !ctx.WebSession.IsSignedIn(ctx) {
		ctx.SetJSONError(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	var username string
	if session := ctx.WebSession.AuthenticationSession(ctx); session != nil {
		username = session.UserName
	}

	if err := ctx.WebSession.Invalidate(ctx); err != nil {
		ctx.SetInternalError("Failed to logout user", err)
		return
	}

	ctx.Logger.Info("User logged out", "username", username)
	ctx.SetJSONStatus(http.StatusOK, "OK")
}
