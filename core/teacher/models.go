package teacher

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
)

// Teacher is the profile record owned by a teacher Account.
type Teacher struct {
	ID        int       `json:"id" db:"id"`
	AccountID null.Int  `json:"account_id" db:"account_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt null.Time `json:"updated_at" db:"updated_at"` // UTC
	DeletedAt null.Time `json:"-" db:"deleted_at"`          // UTC
}

func (t *Teacher) IsLive() bool {
	return !t.DeletedAt.Valid
}

type NewTeacher struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,max=100"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone" validate:"required,phone"`
	Address  string `json:"address" form:"address"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate) error {
	nt.FullName = core.CleanString(nt.FullName)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Phone = core.CleanString(nt.Phone)
	nt.Address = core.CleanString(nt.Address)
	return validate.Struct(nt)
}

type UpdateTeacher struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,max=100"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone" validate:"required,phone"`
	Address  string `json:"address" form:"address"`
	Status   string `json:"status" form:"status"`
}

func (ut *UpdateTeacher) Validate(validate *validator.Validate) error {
	ut.FullName = core.CleanString(ut.FullName)
	ut.Email = core.CleanString(ut.Email, true /* lower */)
	ut.Phone = core.CleanString(ut.Phone)
	ut.Address = core.CleanString(ut.Address)
	return validate.Struct(ut)
}
