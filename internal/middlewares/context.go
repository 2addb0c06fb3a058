package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"objectviewer/internal/apperrors"
	"objectviewer/internal/config"
	"objectviewer/internal/storage"
)

type AppContext struct {
	context.Context
	Config       *config.Config
	Logger       *slog.Logger
	WebSession   WebSessionProvider
	OIDCProvider OIDCProvider
	Storage      storage.StorageProvider

	Request  *http.Request
	Response http.ResponseWriter
}

type contextKey string

const appContextKey contextKey = "appContext"

func AppContextMiddleware(baseCtx *AppContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCtx := &AppContext{
				Context:      r.Context(),
				Config:       baseCtx.Config,
				Logger:       baseCtx.Logger,
				WebSession:   baseCtx.WebSession,
				OIDCProvider: baseCtx.OIDCProvider,
				Storage:      baseCtx.Storage,
				Request:      r,
				Response:     w,
			}

			ctx := context.WithValue(r.Context(), appContextKey, requestCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type AppHandler func(*AppContext)

// Handler converts an AppHandler to an http.Handler
func (ctx *AppContext) Handler(h AppHandler) http.Handler {
	return ctx.HandlerFunc(h)
}

// HandlerFunc converts AppHandler to a http.HandlerFunc
func (ctx *AppContext) HandlerFunc(h AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// middlewares further down the chain may have wrapped the writer
		appCtx.Response = w
		h(appCtx)
	}
}

func (ctx *AppContext) Redirect(url string, status int) {
	http.Redirect(ctx.Response, ctx.Request, url, status)
}

func NewAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, webSession WebSessionProvider, oidcProvider OIDCProvider, storage storage.StorageProvider) *AppContext {
	return &AppContext{
		Context:      ctx,
		Config:       cfg,
		Logger:       logger,
		WebSession:   webSession,
		OIDCProvider: oidcProvider,
		Storage:      storage,
	}
}

func GetAppContext(r *http.Request) *AppContext {
	if ctx, ok := r.Context().Value(appContextKey).(*AppContext); ok {
		return ctx
	}

	return nil
}

func GetLogger(r *http.Request) *slog.Logger {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Logger
	}

	return nil
}

func GetConfig(r *http.Request) *config.Config {
	if appCtx := GetAppContext(r); appCtx != nil {
		return appCtx.Config
	}

	return nil
}

func (ctx *AppContext) WriteJSON(status int, data interface{}) {
	ctx.Response.Header().Set("Content-Type", "application/json")
	ctx.Response.WriteHeader(status)
	if err := json.NewEncoder(ctx.Response).Encode(data); err != nil {
		ctx.Logger.Error("failed to marshal json", "error", err)
	}
}

func (ctx *AppContext) SetJSONError(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"error": message,
	})
}

func (ctx *AppContext) SetJSONStatus(status int, message string) {
	ctx.WriteJSON(status, map[string]string{
		"status": message,
	})
}

// SetInternalError logs err and answers with a bare 500. Application errors
// point at broken code rather than bad input and are logged as such.
func (ctx *AppContext) SetInternalError(message string, err error) {
	var appErr *apperrors.ApplicationError
	if errors.As(err, &appErr) {
		ctx.Logger.Error("Application error", "context", message, "error", appErr.Error())
	} else {
		ctx.Logger.Error(message, "error", err)
	}

	ctx.SetJSONError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
