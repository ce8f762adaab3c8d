package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
)

// TrackSecretHeader carries the secret shared between the forum and the panel
const TrackSecretHeader = "X-Track-Secret"

// RequireSharedSecret rejects requests whose header does not carry secret.
// The forum sending the header is trusted to pass the visitor's address in
// X-Forwarded-For and the signed-in user's id.
func RequireSharedSecret(header, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			given := r.Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(given), []byte(secret)) != 1 {
				slog.Warn("rejected request without shared secret", "path", r.URL.Path, "ip", ClientIP(r))
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
