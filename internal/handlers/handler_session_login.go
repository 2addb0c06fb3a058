package handlers

import (
	"net/http"
	"objectviewer/internal/middlewares"
)

func POSTSessionLoginHandler(ctx *middlewares.AppContext) {
	var req LoginRequest
	if err := decodeJSON(ctx, &req); err != nil {
		ctx.Logger.Debug("Rejected login request", "error", err)
		ctx.SetJSONError(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	if req.Username == "" {
		ctx.SetJSONError(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
		return
	}

	ok, err := ctx.WebSession.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		ctx.SetInternalError("Failed to authenticate user", err)
		return
	}

	if !ok {
		ctx.Logger.Info("Login failed", "username", req.Username, "client_ip", middlewares.ClientIP(ctx))
		ctx.WriteJSON(http.StatusUnauthorized, SessionStatusResponse{Authenticated: false})
		return
	}

	response, signedIn := signedInStatus(ctx)
	if !signedIn {
		ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	ctx.Logger.Info("User logged in", "username", req.Username)
	ctx.WriteJSON(http.StatusOK, response)
}
