package handlers

import (
	"errors"
	"net/http"
	"objectviewer/internal/apperrors"
	"objectviewer/internal/auth"
	"objectviewer/internal/middlewares"
)

func GETCallbackHandler(ctx *middlewares.AppContext) {
	if ctx.OIDCProvider == nil {
		ctx.SetInternalError("OIDC callback received", apperrors.NewWithMessage("oidc routes are mounted without an oidc provider"))
		return
	}

	req, err := ctx.OIDCProvider.HandleCallback(ctx)
	if err != nil {
		var oidcErr *auth.OIDCError
		if errors.As(err, &oidcErr) {
			ctx.Logger.Warn("OIDC callback error", "error", oidcErr.Message)
			ctx.Redirect(oidcErr.RedirectURL, http.StatusFound)
			return
		}

		ctx.Logger.Error("Failed to handle OIDC callback", "error", err)
		ctx.Redirect("/callback?error=auth_failed", http.StatusFound)
		return
	}

	ok, err := ctx.WebSession.AuthenticateExternal(ctx, req)
	if err != nil {
		ctx.Logger.Error("Failed to sign in OIDC user", "username", req.Username, "error", err)
		ctx.Redirect("/callback?error=server_error", http.StatusFound)
		return
	}

	if !ok {
		ctx.Logger.Warn("OIDC user rejected", "username", req.Username)
		ctx.Redirect("/callback?error=access_denied", http.StatusFound)
		return
	}

	ctx.Logger.Debug("User successfully authenticated",
		"subject", req.Subject,
		"username", req.Username,
		"email", RedactEmail(req.Email),
	)

	redirectTo := ctx.WebSession.GetRedirectAfterLogin(ctx)
	if redirectTo != "" && isLocalRedirect(redirectTo) {
		ctx.Redirect(redirectTo, http.StatusFound)
		return
	}

	ctx.Redirect("/auth/complete?status=success", http.StatusFound)
}
