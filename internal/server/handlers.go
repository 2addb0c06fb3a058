package server

import (
	"net/http"
	"objectviewer/internal/handlers"
	"objectviewer/internal/middlewares"
	"objectviewer/internal/websession"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.WebSession.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))
	r.Use(middlewares.TouchMiddleware)
	r.Use(middlewares.DetachMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.NotFound(notFound)

	r.Route("/api", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Post("/login", ctx.HandlerFunc(handlers.POSTSessionLoginHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))
			r.Get("/status", ctx.HandlerFunc(handlers.SessionStatusHandler))

			if ctx.Storage != nil {
				r.Group(func(r chi.Router) {
					r.Use(middlewares.RequireRole(websession.RoleAdmin))
					r.Get("/events", ctx.HandlerFunc(handlers.GETSessionEventsHandler))
				})
			}
		})

		if ctx.OIDCProvider != nil {
			r.Route("/auth", func(r chi.Router) {
				r.Get("/login", ctx.HandlerFunc(handlers.GETLoginHandler))
				r.Get("/callback", ctx.HandlerFunc(handlers.GETCallbackHandler))
			})
		}

		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireSignIn)

			r.Route("/breadcrumbs", func(r chi.Router) {
				r.Get("/", ctx.HandlerFunc(handlers.GETBreadcrumbsHandler))
				r.Post("/", ctx.HandlerFunc(handlers.POSTBreadcrumbHandler))
				r.Delete("/{oid}", ctx.HandlerFunc(handlers.DELETEBreadcrumbHandler))
			})

			r.Route("/bookmarks", func(r chi.Router) {
				r.Get("/", ctx.HandlerFunc(handlers.GETBookmarksHandler))
				r.Post("/", ctx.HandlerFunc(handlers.POSTBookmarkHandler))
				r.Delete("/", ctx.HandlerFunc(handlers.DELETEBookmarksHandler))
				r.Delete("/{oid}", ctx.HandlerFunc(handlers.DELETEBookmarkHandler))
			})
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.HandlerHealth))
		})
	})

	return r
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}

// notFound keeps unknown API paths on the JSON error format.
func notFound(w http.ResponseWriter, r *http.Request) {
	ctx := middlewares.GetAppContext(r)
	if ctx == nil {
		http.NotFound(w, r)
		return
	}
	ctx.Response = w
	ctx.SetJSONError(http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
