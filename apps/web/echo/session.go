package echoapp

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/auth"
)

const (
	sessionCookieName = "sims_session"
	sessionContextKey = "session"
)

// SessionManager stores the typed auth.Session in a signed cookie. The cookie
// MaxAge doubles as the idle timeout; Refresh re-issues it on every request so
// the timeout slides while the client stays active.
type SessionManager struct {
	store *sessions.CookieStore
	idle  time.Duration
}

func NewSessionManager(conf *core.Config) *SessionManager {
	store := sessions.NewCookieStore([]byte(conf.SecretKey))
	// MaxAge also caps the codec: a cookie older than the idle timeout fails
	// decoding even if the client kept it around.
	store.MaxAge(int(conf.Server.SessionIdleTimeout.Seconds()))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = !conf.Debug
	store.Options.SameSite = http.SameSiteLaxMode
	return &SessionManager{store: store, idle: conf.Server.SessionIdleTimeout}
}

// Load returns the session carried by the request cookie. A missing, expired
// or tampered cookie yields the anonymous session.
func (m *SessionManager) Load(ctx echo.Context) auth.Session {
	sess, err := m.store.Get(ctx.Request(), sessionCookieName)
	if err != nil {
		return auth.Session{}
	}
	userID, _ := sess.Values["user_id"].(int)
	username, _ := sess.Values["username"].(string)
	role, _ := sess.Values["role"].(string)
	return auth.Session{UserID: userID, Username: username, Role: role}
}

func (m *SessionManager) Save(ctx echo.Context, s auth.Session) error {
	sess, _ := m.store.Get(ctx.Request(), sessionCookieName)
	sess.Values["user_id"] = s.UserID
	sess.Values["username"] = s.Username
	sess.Values["role"] = s.Role
	sess.Options.MaxAge = int(m.idle.Seconds())
	return sess.Save(ctx.Request(), ctx.Response())
}

func (m *SessionManager) Clear(ctx echo.Context) error {
	sess, _ := m.store.Get(ctx.Request(), sessionCookieName)
	for k := range sess.Values {
		delete(sess.Values, k)
	}
	sess.Options.MaxAge = -1
	return sess.Save(ctx.Request(), ctx.Response())
}

// Refresh loads the session into the echo context and slides the idle expiry
// for authenticated clients.
func (m *SessionManager) Refresh() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess := m.Load(ctx)
			ctx.Set(sessionContextKey, sess)
			if sess.IsAuthenticated() {
				if err := m.Save(ctx, sess); err != nil {
					ctx.Logger().Errorf("refreshing session: %v", err)
				}
			}
			return next(ctx)
		}
	}
}

// contextSession returns the session Refresh put on the context; the anonymous
// session when absent.
func contextSession(ctx echo.Context) auth.Session {
	s, _ := ctx.Get(sessionContextKey).(auth.Session)
	return s
}
