package echoapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core/account"
	"github.com/duy-ank/asm-apdp/core/auth"
	"github.com/duy-ank/asm-apdp/core/student"
	"github.com/duy-ank/asm-apdp/core/teacher"
)

func (s *server) registerAuthRoutes() {
	s.app.GET(loginPath, s.loginPage)
	s.app.POST(loginPath, s.login)
	s.app.POST("/logout", s.logout)

	// registration is open to anonymous clients; the role validator caps what
	// they may request
	s.app.GET("/register", s.registerPage)
	s.app.POST("/register", s.register)

	// registered account listing is an admin surface
	s.app.GET("/accounts", s.queryAccounts, s.gate(auth.ResourceRegister, auth.ActionIndex))
}

func (s *server) loginPage(ctx echo.Context) error {
	if contextSession(ctx).IsAuthenticated() {
		return ctx.Redirect(http.StatusSeeOther, "/")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"form": []string{"email", "password"}})
}

func (s *server) login(ctx echo.Context) error {
	if contextSession(ctx).IsAuthenticated() {
		return ctx.Redirect(http.StatusSeeOther, "/")
	}

	var data account.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	acct, err := s.opts.AccountSvc.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		return err
	}

	sess := auth.Session{UserID: acct.ID, Username: acct.Username, Role: acct.Role}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return errors.Wrap(err, "saving session")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"session": sess})
}

func (s *server) logout(ctx echo.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return errors.Wrap(err, "clearing session")
	}
	return ctx.Redirect(http.StatusSeeOther, loginPath)
}

func (s *server) registerPage(ctx echo.Context) error {
	if contextSession(ctx).IsAuthenticated() {
		return ctx.Redirect(http.StatusSeeOther, "/")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"roles": account.RegisterableRoles})
}

// register creates the account and the matching student or teacher profile.
func (s *server) register(ctx echo.Context) error {
	var data account.NewAccount
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAccount")
	}
	if err := data.Validate(ctx.Request().Context(), s.opts.Validate, s.opts.AccountSvc); err != nil {
		return err
	}

	acct, err := s.opts.AccountSvc.Register(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "registering account")
	}

	reqCtx := ctx.Request().Context()
	switch acct.Role {
	case account.RoleStudent:
		ns := student.NewStudent{
			FullName: data.FullName,
			Email:    acct.Email,
			Phone:    acct.Phone,
			Address:  acct.Address,
		}
		if _, err := s.opts.StudentSvc.Create(reqCtx, ns, null.IntFrom(acct.ID)); err != nil {
			return errors.Wrap(err, "creating student profile")
		}
	case account.RoleTeacher:
		nt := teacher.NewTeacher{
			FullName: data.FullName,
			Email:    acct.Email,
			Phone:    acct.Phone,
			Address:  acct.Address,
		}
		if _, err := s.opts.TeacherSvc.Create(reqCtx, nt, null.IntFrom(acct.ID)); err != nil {
			return errors.Wrap(err, "creating teacher profile")
		}
	}

	return ctx.JSON(http.StatusCreated, acct)
}

func (s *server) queryAccounts(ctx echo.Context) error {
	accts, err := s.opts.AccountSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying accounts")
	}
	if accts == nil {
		accts = []account.Account{}
	}
	return ctx.JSON(http.StatusOK, accts)
}
