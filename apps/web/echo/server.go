package echoapp

import (
	"context"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/account"
	"github.com/duy-ank/asm-apdp/core/auth"
	"github.com/duy-ank/asm-apdp/core/category"
	"github.com/duy-ank/asm-apdp/core/classroom"
	"github.com/duy-ank/asm-apdp/core/course"
	"github.com/duy-ank/asm-apdp/core/student"
	"github.com/duy-ank/asm-apdp/core/teacher"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		Conf       *core.Config
		Logger     core.Logger
		Perms      *auth.PermissionTable
		Validate   *validator.Validate
		Translator ut.Translator

		AccountSvc   *account.Service
		CategorySvc  *category.Service
		CourseSvc    *course.Service
		StudentSvc   *student.Service
		ClassRoomSvc *classroom.Service
		TeacherSvc   *teacher.Service
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		sessions *SessionManager
		shutdown chan struct{}
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts:     opts,
		app:      echo.New(),
		sessions: NewSessionManager(opts.Conf),
		shutdown: make(chan struct{}, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	conf := s.opts.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(s.sessions.Refresh())

	s.app.HTTPErrorHandler = s.newHTTPErrorHandler()
	s.app.Debug = conf.Debug

	s.app.GET("/", s.home)

	s.registerAuthRoutes()
	s.registerCategoryRoutes()
	s.registerCourseRoutes()
	s.registerClassRoomRoutes()
	s.registerStudentRoutes()
	s.registerTeacherRoutes()
}

func (s *server) Start() {
	go func() {
		<-s.shutdown
		s.app.Logger.Error("shutdown signal caught, stopping server")
		_ = s.Stop(context.Background())
	}()
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

// signalShutdown triggers a graceful stop; the error handler calls it when an
// unrecoverable error surfaces.
func (s *server) signalShutdown() {
	select {
	case s.shutdown <- struct{}{}:
	default:
	}
}

func (s *server) home(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"app":     s.opts.Conf.AppName,
		"session": contextSession(ctx),
	})
}
