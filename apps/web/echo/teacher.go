package echoapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core/auth"
	"github.com/duy-ank/asm-apdp/core/teacher"
)

func (s *server) registerTeacherRoutes() {
	g := s.app.Group("/teachers")
	g.GET("", s.queryTeachers, s.gate(auth.ResourceTeacher, auth.ActionIndex))
	g.POST("", s.createTeacher, s.gate(auth.ResourceTeacher, auth.ActionCreate))
	g.GET("/:id", s.retrieveTeacher, s.gate(auth.ResourceTeacher, auth.ActionEdit))
	g.PUT("/:id", s.updateTeacher, s.gate(auth.ResourceTeacher, auth.ActionEdit))
	g.DELETE("/:id", s.deleteTeacher, s.gate(auth.ResourceTeacher, auth.ActionDelete))
}

func (s *server) queryTeachers(ctx echo.Context) error {
	tchs, err := s.opts.TeacherSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying teachers")
	}
	if tchs == nil {
		tchs = []teacher.Teacher{}
	}
	return ctx.JSON(http.StatusOK, tchs)
}

func (s *server) createTeacher(ctx echo.Context) error {
	var data teacher.NewTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewTeacher")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	tch, err := s.opts.TeacherSvc.Create(ctx.Request().Context(), data, null.Int{})
	if err != nil {
		return errors.Wrap(err, "creating teacher")
	}
	return ctx.JSON(http.StatusCreated, tch)
}

func (s *server) retrieveTeacher(ctx echo.Context) error {
	tch, err := s.opts.TeacherSvc.GetByID(ctx.Request().Context(), pathID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tch)
}

func (s *server) updateTeacher(ctx echo.Context) error {
	var data teacher.UpdateTeacher
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateTeacher")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	tch, err := s.opts.TeacherSvc.Update(ctx.Request().Context(), pathID(ctx), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tch)
}

func (s *server) deleteTeacher(ctx echo.Context) error {
	if err := s.opts.TeacherSvc.Delete(ctx.Request().Context(), pathID(ctx)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
