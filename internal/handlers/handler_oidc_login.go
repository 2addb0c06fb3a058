package handlers

import (
	"net/http"
	"objectviewer/internal/apperrors"
	"objectviewer/internal/middlewares"
	"strings"
)

func GETLoginHandler(ctx *middlewares.AppContext) {
	if ctx.OIDCProvider == nil {
		ctx.SetInternalError("OIDC login requested", apperrors.NewWithMessage("oidc routes are mounted without an oidc provider"))
		return
	}

	if ctx.WebSession.IsSignedIn(ctx) {
		ctx.Logger.Debug("User already authenticated")
		ctx.SetJSONStatus(http.StatusOK, "ok")
		return
	}

	redirectTo := ctx.Request.URL.Query().Get("rd")
	if redirectTo == "" {
		redirectTo = refererPath(ctx.Request)
		if redirectTo == "" {
			redirectTo = "/"
		}
	}

	if strings.Contains(redirectTo, "/error") {
		ctx.Logger.Debug("Referer is error page, redirecting to root instead", "original_referer", redirectTo)
		redirectTo = "/"
	}

	if !isLocalRedirect(redirectTo) {
		ctx.Logger.Warn("Refusing off-site redirect after login", "target", redirectTo)
		redirectTo = "/"
	}

	ctx.WebSession.SetRedirectAfterLogin(ctx, redirectTo)

	authURL, err := ctx.OIDCProvider.StartLogin(ctx)
	if err != nil {
		ctx.SetInternalError("Failed to start login", err)
		return
	}

	ctx.Logger.Debug("Redirecting to OIDC Provider", "url", authURL)

	ctx.WriteJSON(http.StatusOK, map[string]string{
		"status":       "redirect_required",
		"redirect_url": authURL,
	})
}
