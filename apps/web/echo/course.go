package echoapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core/auth"
	"github.com/duy-ank/asm-apdp/core/course"
)

func (s *server) registerCourseRoutes() {
	g := s.app.Group("/courses")
	g.GET("", s.queryCourses, s.gate(auth.ResourceCourse, auth.ActionIndex))
	g.POST("", s.createCourse, s.gate(auth.ResourceCourse, auth.ActionCreate))
	g.GET("/:id", s.retrieveCourse, s.gate(auth.ResourceCourse, auth.ActionEdit))
	g.PUT("/:id", s.updateCourse, s.gate(auth.ResourceCourse, auth.ActionEdit))
	g.DELETE("/:id", s.deleteCourse, s.gate(auth.ResourceCourse, auth.ActionDelete))
}

func (s *server) queryCourses(ctx echo.Context) error {
	filter := new(course.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		filter = new(course.QueryFilter)
	}

	crss, err := s.opts.CourseSvc.Query(ctx.Request().Context(), *filter)
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if crss == nil {
		crss = []course.Course{}
	}
	return ctx.JSON(http.StatusOK, crss)
}

func (s *server) createCourse(ctx echo.Context) error {
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	crs, err := s.opts.CourseSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (s *server) retrieveCourse(ctx echo.Context) error {
	crs, err := s.opts.CourseSvc.GetByID(ctx.Request().Context(), pathID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (s *server) updateCourse(ctx echo.Context) error {
	var data course.UpdateCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCourse")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	crs, err := s.opts.CourseSvc.Update(ctx.Request().Context(), pathID(ctx), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (s *server) deleteCourse(ctx echo.Context) error {
	if err := s.opts.CourseSvc.Delete(ctx.Request().Context(), pathID(ctx)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
