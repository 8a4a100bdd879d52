package middleware

import (
	"context"
	"net/http"

	"vetify/pkg/flash"
	"vetify/pkg/session"

	"github.com/sirupsen/logrus"
)

type contextKey string

const sessionUserKey contextKey = "session_user"

type SessionMiddleware struct {
	sessions *session.Manager
	log      *logrus.Logger
}

func NewSessionMiddleware(sessions *session.Manager, log *logrus.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		sessions: sessions,
		log:      log,
	}
}

// Require gates a route behind an active session. Unauthenticated
// callers get a notice and a redirect to the login form.
func (m *SessionMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(session.CookieName)
		if err != nil {
			m.redirectToLogin(w, r)
			return
		}

		user, err := m.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			m.log.Warnf("Failed to load session: %+v", err)
			m.redirectToLogin(w, r)
			return
		}
		if user == nil {
			m.redirectToLogin(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), sessionUserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	flash.Set(w, flash.CategoryError, "Debes iniciar sesión para acceder.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

// UserFromContext extracts the session user injected by Require.
func UserFromContext(ctx context.Context) (*session.User, bool) {
	user, ok := ctx.Value(sessionUserKey).(*session.User)
	return user, ok
}
