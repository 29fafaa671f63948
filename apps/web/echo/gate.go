package echoapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const loginPath = "/login"

// gate allows the request through only when the session's role holds the
// resource/action grant. Anonymous clients and unauthorized roles alike are
// sent to the login page, never to an error page.
func (s *server) gate(resource, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess := contextSession(ctx)
			if !s.opts.Perms.CanPerformAction(sess.Role, resource, action) {
				return ctx.Redirect(http.StatusSeeOther, loginPath)
			}
			return next(ctx)
		}
	}
}
