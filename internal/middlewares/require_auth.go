package middlewares

import (
	"net/http"
	"slices"
)

// RequireSignIn rejects requests without a valid signed-in web session.
func RequireSignIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if !appCtx.WebSession.IsSignedIn(appCtx) {
			appCtx.Response = w
			appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests whose session does not hold role. Anonymous
// requests get a 401, signed-in users without the role a 403.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			appCtx := GetAppContext(r)
			if appCtx == nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			appCtx.Response = w

			roles := appCtx.WebSession.Roles(appCtx)
			if roles == nil {
				appCtx.SetJSONError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			}

			if !slices.Contains(roles, role) {
				appCtx.Logger.Debug("Missing required role", "role", role)
				appCtx.SetJSONError(http.StatusForbidden, http.StatusText(http.StatusForbidden))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
