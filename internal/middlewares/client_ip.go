package middlewares

import (
	"context"
	"net"
	"net/http"
	"strings"
)

const clientIPKey contextKey = "clientIP"

// proxy headers in order of trust; X-Forwarded-For is read left-most
var clientIPHeaders = []string{"True-Client-IP", "X-Real-IP", "X-Forwarded-For"}

// ClientIPMiddleware resolves the client address behind proxies, rewrites
// RemoteAddr to "IP:port" and records the IP for ClientIP.
func ClientIPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := extractClientIP(r)
		if clientIP == "" {
			next.ServeHTTP(w, r)
			return
		}

		port := "0"
		if _, p, err := net.SplitHostPort(r.RemoteAddr); err == nil && p != "" {
			port = p
		}
		r.RemoteAddr = net.JoinHostPort(clientIP, port)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientIPKey, clientIP)))
	})
}

// ClientIP returns the address ClientIPMiddleware resolved, or "".
func ClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

func extractClientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		if header == "X-Forwarded-For" {
			value, _, _ = strings.Cut(value, ",")
		}
		if ip := parseIP(value); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	if parsed := net.ParseIP(strings.TrimSpace(s)); parsed != nil {
		return parsed.String()
	}
	return ""
}
