package echoapp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/account"
	"github.com/duy-ank/asm-apdp/core/auth"
	"github.com/duy-ank/asm-apdp/core/category"
	"github.com/duy-ank/asm-apdp/core/classroom"
	"github.com/duy-ank/asm-apdp/core/course"
	"github.com/duy-ank/asm-apdp/core/student"
	"github.com/duy-ank/asm-apdp/core/teacher"
	emailsvc "github.com/duy-ank/asm-apdp/services/email"
	inmemdb "github.com/duy-ank/asm-apdp/storage/database/inmem"
)

type testEnv struct {
	srv Server

	accountRepo  account.Repository
	accountSvc   *account.Service
	categorySvc  *category.Service
	courseSvc    *course.Service
	studentSvc   *student.Service
	classRoomSvc *classroom.Service
	teacherSvc   *teacher.Service
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvIdle(t, 30*time.Minute)
}

func newTestEnvIdle(t *testing.T, idle time.Duration) *testEnv {
	t.Helper()

	conf := &core.Config{
		Debug:            true,
		TestMode:         true,
		Env:              "TEST",
		AppName:          "SIMS",
		SecretKey:        "secret",
		DefaultFromEmail: "noreply@localhost",
		Server: core.ServerConfig{
			Addr:               ":0",
			SessionIdleTimeout: idle,
		},
	}

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed, %v", err)
	}
	accountRepo := inmemdb.NewAccountRepository(db)
	categoryRepo := inmemdb.NewCategoryRepository(db)
	courseRepo := inmemdb.NewCourseRepository(db)
	studentRepo := inmemdb.NewStudentRepository(db)
	classRoomRepo := inmemdb.NewClassRoomRepository(db)
	teacherRepo := inmemdb.NewTeacherRepository(db)

	env := &testEnv{
		accountRepo:  accountRepo,
		accountSvc:   account.NewService(accountRepo, emailsvc.NewConsoleServiceMock(conf), conf),
		categorySvc:  category.NewService(categoryRepo, courseRepo),
		courseSvc:    course.NewService(courseRepo, categoryRepo),
		studentSvc:   student.NewService(studentRepo),
		classRoomSvc: classroom.NewService(classRoomRepo),
		teacherSvc:   teacher.NewService(teacherRepo),
	}

	if _, err := env.accountSvc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() failed, %v", err)
	}

	validate, translator := core.NewValidator()
	account.RegisterValidators(validate, translator)

	env.srv = NewServer(&Options{
		Address:        conf.Server.Addr,
		DisableReqLogs: true,
		Conf:           conf,
		Logger:         core.NewStdLogger(log.New(io.Discard, "", 0)),
		Perms:          auth.DefaultPermissions(),
		Validate:       validate,
		Translator:     translator,
		AccountSvc:     env.accountSvc,
		CategorySvc:    env.categorySvc,
		CourseSvc:      env.courseSvc,
		StudentSvc:     env.studentSvc,
		ClassRoomSvc:   env.classRoomSvc,
		TeacherSvc:     env.teacherSvc,
	})
	return env
}

func (env *testEnv) request(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body failed, %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	env.srv.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) login(t *testing.T, email, pwd string) []*http.Cookie {
	t.Helper()

	rec := env.request(t, http.MethodPost, loginPath, echo.Map{"email": email, "password": pwd})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed, code = %d, body = %s", rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login did not set a session cookie")
	}
	return cookies
}

func (env *testEnv) loginAdmin(t *testing.T) []*http.Cookie {
	return env.login(t, account.SeedAdminEmail, account.SeedAdminPassword)
}

// createAccount registers a login directly in the store, bypassing the
// password policy.
func (env *testEnv) createAccount(t *testing.T, role, email, pwd string) account.Account {
	t.Helper()

	acct := account.Account{
		Role:      role,
		Username:  core.CleanString(email, true),
		Email:     email,
		Phone:     "0123456789",
		Status:    core.StatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := acct.SetPassword(pwd); err != nil {
		t.Fatalf("SetPassword() failed, %v", err)
	}
	acct, err := env.accountRepo.CreateAccount(context.Background(), acct)
	if err != nil {
		t.Fatalf("CreateAccount() failed, %v", err)
	}
	return acct
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response body failed, %v; body = %s", err, rec.Body.String())
	}
}

func checkRedirect(t *testing.T, rec *httptest.ResponseRecorder, wantLocation string) {
	t.Helper()

	if rec.Code != http.StatusSeeOther {
		t.Errorf("code = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != wantLocation {
		t.Errorf("location = %s, want %s", loc, wantLocation)
	}
}
