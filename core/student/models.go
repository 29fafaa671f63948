package student

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
)

type Student struct {
	ID          int       `json:"id" db:"id"`
	AccountID   null.Int  `json:"account_id" db:"account_id"`
	FullName    string    `json:"full_name" db:"full_name"`
	Email       string    `json:"email" db:"email"`
	Phone       string    `json:"phone" db:"phone"`
	Address     string    `json:"address" db:"address"`
	ClassRoomID null.Int  `json:"classroom_id" db:"classroom_id"`
	CourseID    null.Int  `json:"course_id" db:"course_id"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   null.Time `json:"updated_at" db:"updated_at"` // UTC
	DeletedAt   null.Time `json:"-" db:"deleted_at"`          // UTC
}

func (s *Student) IsLive() bool {
	return !s.DeletedAt.Valid
}

// NewStudent contains information needed to enroll a new Student.
type NewStudent struct {
	FullName    string   `json:"full_name" form:"full_name" validate:"required,max=100"`
	Email       string   `json:"email" form:"email" validate:"required,email"`
	Phone       string   `json:"phone" form:"phone" validate:"required,phone"`
	Address     string   `json:"address" form:"address"`
	ClassRoomID null.Int `json:"classroom_id" form:"classroom_id"`
	CourseID    null.Int `json:"course_id" form:"course_id"`
}

func (ns *NewStudent) Validate(ctx context.Context, validate *validator.Validate, svc *Service) error {
	ns.FullName = core.CleanString(ns.FullName)
	ns.Email = core.CleanString(ns.Email, true /* lower */)
	ns.Phone = core.CleanString(ns.Phone)
	ns.Address = core.CleanString(ns.Address)

	if err := validate.Struct(ns); err != nil {
		return err
	}
	return svc.CheckClassUniqueness(ctx, ns.Email, ns.Phone, ns.ClassRoomID)
}

// UpdateStudent defines what may be changed on an existing Student.
type UpdateStudent struct {
	FullName    string   `json:"full_name" form:"full_name" validate:"required,max=100"`
	Email       string   `json:"email" form:"email" validate:"required,email"`
	Phone       string   `json:"phone" form:"phone" validate:"required,phone"`
	Address     string   `json:"address" form:"address"`
	ClassRoomID null.Int `json:"classroom_id" form:"classroom_id"`
	CourseID    null.Int `json:"course_id" form:"course_id"`
	Status      string   `json:"status" form:"status"`
}

// Validate checks the form and re-checks email/phone uniqueness within the
// target classroom, excluding the record being edited.
func (us *UpdateStudent) Validate(ctx context.Context, orig Student, validate *validator.Validate, svc *Service) error {
	us.FullName = core.CleanString(us.FullName)
	us.Email = core.CleanString(us.Email, true /* lower */)
	us.Phone = core.CleanString(us.Phone)
	us.Address = core.CleanString(us.Address)

	if err := validate.Struct(us); err != nil {
		return err
	}
	return svc.CheckClassUniqueness(ctx, us.Email, us.Phone, us.ClassRoomID, orig)
}

// QueryFilter narrows student listings.
type QueryFilter struct {
	ClassRoomID int `query:"classroom_id"`
	CourseID    int `query:"course_id"`
}
