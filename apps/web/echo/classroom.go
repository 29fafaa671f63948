package echoapp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core/auth"
	"github.com/duy-ank/asm-apdp/core/classroom"
	"github.com/duy-ank/asm-apdp/core/student"
)

func (s *server) registerClassRoomRoutes() {
	g := s.app.Group("/classrooms")
	g.GET("", s.queryClassRooms, s.gate(auth.ResourceClassRoom, auth.ActionIndex))
	g.POST("", s.createClassRoom, s.gate(auth.ResourceClassRoom, auth.ActionCreate))
	g.GET("/:id", s.classRoomDetails, s.gate(auth.ResourceClassRoom, auth.ActionDetails))
	g.PUT("/:id", s.updateClassRoom, s.gate(auth.ResourceClassRoom, auth.ActionEdit))
	g.DELETE("/:id", s.deleteClassRoom, s.gate(auth.ResourceClassRoom, auth.ActionDelete))
	g.POST("/:id/students", s.addStudentToClass, s.gate(auth.ResourceClassRoom, auth.ActionAddStudentToClass))
}

func (s *server) queryClassRooms(ctx echo.Context) error {
	clss, err := s.opts.ClassRoomSvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying classrooms")
	}
	if clss == nil {
		clss = []classroom.ClassRoom{}
	}
	return ctx.JSON(http.StatusOK, clss)
}

func (s *server) createClassRoom(ctx echo.Context) error {
	var data classroom.NewClassRoom
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClassRoom")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	cls, err := s.opts.ClassRoomSvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating classroom")
	}
	return ctx.JSON(http.StatusCreated, cls)
}

// classRoomDetails returns the classroom along with its enrolled students.
func (s *server) classRoomDetails(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	cls, err := s.opts.ClassRoomSvc.GetByID(reqCtx, pathID(ctx))
	if err != nil {
		return err
	}

	stds, err := s.opts.StudentSvc.Query(reqCtx, student.QueryFilter{ClassRoomID: cls.ID})
	if err != nil {
		return errors.Wrap(err, "querying classroom students")
	}
	if stds == nil {
		stds = []student.Student{}
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"classroom": cls,
		"students":  stds,
	})
}

func (s *server) updateClassRoom(ctx echo.Context) error {
	var data classroom.UpdateClassRoom
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateClassRoom")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	cls, err := s.opts.ClassRoomSvc.Update(ctx.Request().Context(), pathID(ctx), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (s *server) deleteClassRoom(ctx echo.Context) error {
	if err := s.opts.ClassRoomSvc.Delete(ctx.Request().Context(), pathID(ctx)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

type addStudentRequest struct {
	StudentID int `json:"student_id" form:"student_id" validate:"required"`
}

// addStudentToClass moves an existing student into this classroom after the
// per-class uniqueness re-check.
func (s *server) addStudentToClass(ctx echo.Context) error {
	var data addStudentRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to addStudentRequest")
	}
	if err := s.opts.Validate.Struct(&data); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()

	// the target classroom must be live
	cls, err := s.opts.ClassRoomSvc.GetByID(reqCtx, pathID(ctx))
	if err != nil {
		return err
	}

	std, err := s.opts.StudentSvc.AssignClassRoom(reqCtx, data.StudentID, cls.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, std)
}
