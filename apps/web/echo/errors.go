package echoapp

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/account"
	"github.com/duy-ank/asm-apdp/core/category"
	"github.com/duy-ank/asm-apdp/core/classroom"
	"github.com/duy-ank/asm-apdp/core/course"
	"github.com/duy-ank/asm-apdp/core/student"
	"github.com/duy-ank/asm-apdp/core/teacher"
)

// newHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how to
// handle our errors. It signals a graceful shutdown whenever a core.shutdown
// error is caught.
func (s *server) newHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var message interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			message = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(s.opts.Translator)
			}
			code = http.StatusBadRequest
			message = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				message = fldErrs
			} else {
				message = origErr.Error()
			}
			code = http.StatusBadRequest
		default:
			switch origErr {
			case account.ErrInvalidCredentials:
				code = http.StatusBadRequest
				message = origErr.Error()
			case category.ErrInUse:
				code = http.StatusConflict
				message = origErr.Error()
			case account.ErrNotFound, category.ErrNotFound, course.ErrNotFound,
				classroom.ErrNotFound, student.ErrNotFound, teacher.ErrNotFound:
				code = http.StatusNotFound
				message = origErr.Error()
			default: // any other error is a server error
				code = http.StatusInternalServerError
				msg := http.StatusText(http.StatusInternalServerError)
				message = msg

				acct := account.Account{}
				if sess := contextSession(ctx); sess.IsAuthenticated() {
					acct.ID = sess.UserID
					acct.Username = sess.Username
				}
				s.opts.Logger.Error(msg, errors.Wrap(err, msg), acct)

				// shutting down...
				if core.IsShutdown(err) {
					s.signalShutdown()
				}
			}
		}

		if ctx.Echo().Debug && code == http.StatusInternalServerError {
			message = err.Error()
		}
		if m, ok := message.(string); ok {
			message = echo.Map{"error": m}
		}

		// Send response
		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, message)
			}
			if err != nil {
				ctx.Echo().Logger.Error(err)
			}
		}
	}
}
