package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

// Recorder stores one page view
type Recorder interface {
	Record(ctx context.Context, ip, userAgent, page string, userID *int64) bool
}

// AccessLogger middleware records every GET page view. Recording never
// affects the response.
func AccessLogger(recorder Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				recorder.Record(r.Context(), ClientIP(r), r.UserAgent(), r.URL.Path, nil)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the client address from request, checking
// X-Forwarded-For first
func ClientIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr without the port
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
