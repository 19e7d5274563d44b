package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/pregnancy-care/internal/logger"
	"github.com/sbilibin2017/pregnancy-care/internal/models"
)

// SessionResolver defines the minimal interface needed by the middleware
type SessionResolver interface {
	Session(ctx context.Context, sessionID string) (*models.Session, error)
}

type sessionKey struct{}

type sessionValue struct {
	id      string
	session *models.Session
}

// WithSession stores the session id and its resolved identity in ctx.
func WithSession(ctx context.Context, id string, s *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionValue{id: id, session: s})
}

// SessionFromContext returns the authenticated session or nil.
func SessionFromContext(ctx context.Context) *models.Session {
	v, _ := ctx.Value(sessionKey{}).(sessionValue)
	if !v.session.Valid() {
		return nil
	}
	return v.session
}

// SessionIDFromContext returns the session id sent by the client, resolved or not.
func SessionIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(sessionKey{}).(sessionValue)
	return v.id
}

// SessionIDFromRequest reads the session id from the cookie, falling back to
// an "Authorization: Bearer" header.
func SessionIDFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if id, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(id)
	}
	return ""
}

// SessionMiddleware resolves the client's session and stores it in the request context.
// Requests without a usable session continue anonymously.
func SessionMiddleware(resolver SessionResolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id := SessionIDFromRequest(r, cookieName)
			var s *models.Session
			if id != "" {
				var err error
				s, err = resolver.Session(ctx, id)
				if err != nil {
					logger.Log.Errorw("session lookup failed", "err", err)
					s = nil
				}
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, id, s)))
		})
	}
}

// RequireAuth rejects requests without a valid session with 401 and a hint to log in.
func RequireAuth(message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionFromContext(r.Context()) == nil {
				logger.Log.Infow("authorization failed", "uri", r.RequestURI)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(models.FlashResponse{
					Flash:    models.NewFlash(message, models.SeverityWarning),
					Redirect: "/login",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
