package main

import (
	"context"
	"log"
	"os"

	echoapp "github.com/duy-ank/asm-apdp/apps/web/echo"
	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/account"
	"github.com/duy-ank/asm-apdp/core/auth"
	"github.com/duy-ank/asm-apdp/core/category"
	"github.com/duy-ank/asm-apdp/core/classroom"
	"github.com/duy-ank/asm-apdp/core/course"
	"github.com/duy-ank/asm-apdp/core/student"
	"github.com/duy-ank/asm-apdp/core/teacher"
	emailsvc "github.com/duy-ank/asm-apdp/services/email"
	logsvc "github.com/duy-ank/asm-apdp/services/logger"
	"github.com/duy-ank/asm-apdp/storage/database"
	sqlxrepos "github.com/duy-ank/asm-apdp/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "WEB : ", log.LstdFlags|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(std, err)

	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(std, conf)
	} else {
		logger = core.NewStdLogger(std)
	}

	// set up DB
	errAndDie(std, database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	errAndDie(std, err)
	defer func() { _ = db.Close() }()
	errAndDie(std, database.Migrate(db))

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(logger, conf)
	}

	accountRepo := sqlxrepos.NewAccountRepository(db)
	categoryRepo := sqlxrepos.NewCategoryRepository(db)
	courseRepo := sqlxrepos.NewCourseRepository(db)
	studentRepo := sqlxrepos.NewStudentRepository(db)
	classRoomRepo := sqlxrepos.NewClassRoomRepository(db)
	teacherRepo := sqlxrepos.NewTeacherRepository(db)

	accountSvc := account.NewService(accountRepo, mailSvc, conf)
	categorySvc := category.NewService(categoryRepo, courseRepo)
	courseSvc := course.NewService(courseRepo, categoryRepo)
	studentSvc := student.NewService(studentRepo)
	classRoomSvc := classroom.NewService(classRoomRepo)
	teacherSvc := teacher.NewService(teacherRepo)

	// seed the default admin on an empty store
	if created, err := accountSvc.Seed(context.Background()); err != nil {
		errAndDie(std, err)
	} else if created {
		logger.Info("default admin account created")
	}

	validate, translator := core.NewValidator()
	account.RegisterValidators(validate, translator)

	// start web server
	app := echoapp.NewServer(&echoapp.Options{
		Address:      conf.Server.Addr,
		Conf:         conf,
		Logger:       logger,
		Perms:        auth.DefaultPermissions(),
		Validate:     validate,
		Translator:   translator,
		AccountSvc:   accountSvc,
		CategorySvc:  categorySvc,
		CourseSvc:    courseSvc,
		StudentSvc:   studentSvc,
		ClassRoomSvc: classRoomSvc,
		TeacherSvc:   teacherSvc,
	})
	app.Start()
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatalf("%+v", err)
	}
}
