package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/finapp/backend/pkg/logger"
)

// Verifier hands a bearer token to the external identity service and returns
// the subject it asserts. Injected so tests can swap the platform out.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type Middleware struct {
	Verifier Verifier
}

func NewMiddleware(verifier Verifier) *Middleware {
	return &Middleware{Verifier: verifier}
}

// context key
type contextKey string

const UIDKey contextKey = "uid"

// Auth resolves the caller's identity. Every failure mode collapses to 401 so
// the caller can't distinguish a bad token from an unreachable identity
// service. Nothing is cached; every request re-verifies.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		header := r.Header.Get("Authorization")
		if header == "" {
			log.Warn("missing Authorization header")
			http.Error(w, "missing Authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			log.Warn("malformed Authorization header")
			http.Error(w, "invalid Authorization header", http.StatusUnauthorized)
			return
		}

		uid, err := m.Verifier.Verify(r.Context(), parts[1])
		if err != nil {
			log.Warn("token verification failed", "error", err)
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		// Add the verified subject to context
		ctx := context.WithValue(r.Context(), UIDKey, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UID extracts the verified owner identifier.
func UID(ctx context.Context) string {
	uid, _ := ctx.Value(UIDKey).(string)
	return uid
}
