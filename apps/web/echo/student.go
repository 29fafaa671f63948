package echoapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core/account"
	"github.com/duy-ank/asm-apdp/core/auth"
	"github.com/duy-ank/asm-apdp/core/student"
)

func (s *server) registerStudentRoutes() {
	g := s.app.Group("/students")
	g.GET("", s.queryStudents, s.gate(auth.ResourceStudent, auth.ActionIndex))
	g.POST("", s.createStudent, s.gate(auth.ResourceStudent, auth.ActionCreate))
	g.GET("/:id", s.retrieveStudent, s.gate(auth.ResourceStudent, auth.ActionEdit))
	g.PUT("/:id", s.updateStudent, s.gate(auth.ResourceStudent, auth.ActionEdit))
	g.DELETE("/:id", s.deleteStudent, s.gate(auth.ResourceStudent, auth.ActionDelete))
}

func (s *server) queryStudents(ctx echo.Context) error {
	filter := new(student.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		filter = new(student.QueryFilter)
	}

	stds, err := s.opts.StudentSvc.Query(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if stds == nil {
		stds = []student.Student{}
	}
	return ctx.JSON(http.StatusOK, stds)
}

type newStudentRequest struct {
	student.NewStudent
	// CreateAccount provisions a login for the student; the generated one-time
	// password is returned in the response and never stored in clear.
	CreateAccount bool `json:"create_account" form:"create_account"`
}

func (s *server) createStudent(ctx echo.Context) error {
	var data newStudentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewStudent")
	}

	reqCtx := ctx.Request().Context()
	if err := data.NewStudent.Validate(reqCtx, s.opts.Validate, s.opts.StudentSvc); err != nil {
		return err
	}

	var accountID null.Int
	var oneTimePwd string
	if data.CreateAccount {
		acct, pwd, err := s.opts.AccountSvc.Provision(reqCtx, data.Email, data.Phone, data.Address, account.RoleStudent)
		if err != nil {
			return err
		}
		accountID = null.IntFrom(acct.ID)
		oneTimePwd = pwd
	}

	std, err := s.opts.StudentSvc.Create(reqCtx, data.NewStudent, accountID)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}

	if oneTimePwd != "" {
		return ctx.JSON(http.StatusCreated, echo.Map{"student": std, "password": oneTimePwd})
	}
	return ctx.JSON(http.StatusCreated, std)
}

func (s *server) retrieveStudent(ctx echo.Context) error {
	std, err := s.opts.StudentSvc.GetByID(ctx.Request().Context(), pathID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, std)
}

func (s *server) updateStudent(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	std, err := s.opts.StudentSvc.GetByID(reqCtx, pathID(ctx))
	if err != nil {
		return err
	}

	var data student.UpdateStudent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateStudent")
	}
	if err := data.Validate(reqCtx, std, s.opts.Validate, s.opts.StudentSvc); err != nil {
		return err
	}

	std, err = s.opts.StudentSvc.Update(reqCtx, std.ID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, std)
}

func (s *server) deleteStudent(ctx echo.Context) error {
	if err := s.opts.StudentSvc.Delete(ctx.Request().Context(), pathID(ctx)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
