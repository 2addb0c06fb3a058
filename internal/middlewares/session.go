package middlewares

import (
	"net/http"
	"sync"
)

// TouchMiddleware records activity on the signed-in user's authentication
// session so the expiry sweeper leaves it alone.
func TouchMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if err := appCtx.WebSession.Touch(appCtx); err != nil {
			appCtx.Logger.Warn("Failed to touch authentication session", "error", err)
		}

		next.ServeHTTP(w, r)
	})
}

// DetachMiddleware detaches the web session at the end of the request. The
// session is committed as soon as the response is written, so detaching
// happens right before the first write, or after the handler when it wrote
// nothing.
func DetachMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		appCtx := GetAppContext(r)
		if appCtx == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		dw := &detachingWriter{
			ResponseWriter: w,
			detach:         func() { appCtx.WebSession.Detach(appCtx) },
		}

		next.ServeHTTP(dw, r)
		dw.once.Do(dw.detach)
	})
}

type detachingWriter struct {
	http.ResponseWriter
	detach func()
	once   sync.Once
}

func (dw *detachingWriter) WriteHeader(code int) {
	dw.once.Do(dw.detach)
	dw.ResponseWriter.WriteHeader(code)
}

func (dw *detachingWriter) Write(b []byte) (int, error) {
	dw.once.Do(dw.detach)
	return dw.ResponseWriter.Write(b)
}

func (dw *detachingWriter) Unwrap() http.ResponseWriter {
	return dw.ResponseWriter
}
