package account

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/duy-ank/asm-apdp/core"
)

// Roles. The set is closed; an account's role never changes once assigned.
const (
	RoleAdmin   = "Admin"
	RoleTeacher = "Teacher"
	RoleStudent = "Student"
)

var (
	AllRoles = []string{RoleAdmin, RoleTeacher, RoleStudent}

	// RegisterableRoles are the roles self-registration may request.
	RegisterableRoles = []string{RoleStudent, RoleTeacher}
)

type Account struct {
	ID           int       `json:"id" db:"id"`
	Role         string    `json:"role" db:"role"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	Address      string    `json:"address" db:"address"`
	PasswordHash []byte    `json:"-" db:"password_hash"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt    null.Time `json:"updated_at" db:"updated_at"` // UTC
	DeletedAt    null.Time `json:"-" db:"deleted_at"`          // UTC
}

func (a *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

func (a *Account) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
}

// IsLive reports whether the account has not been soft-deleted.
func (a *Account) IsLive() bool {
	return !a.DeletedAt.Valid
}

// NewAccount contains information needed to register a new Account.
type NewAccount struct {
	Username        string `json:"username" form:"username" validate:"required,min=3,max=60,alphanum_"`
	FullName        string `json:"full_name" form:"full_name" validate:"required,max=100"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	Password        string `json:"password" form:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm" validate:"required,eqfield=Password"`
	Phone           string `json:"phone" form:"phone" validate:"required,phone"`
	Address         string `json:"address" form:"address"`
	Role            string `json:"role" form:"role" validate:"required,registerable"`
}

func (na *NewAccount) Validate(ctx context.Context, validate *validator.Validate, svc *Service) error {
	na.Username = core.CleanString(na.Username, true /* lower */)
	na.FullName = core.CleanString(na.FullName)
	na.Email = core.CleanString(na.Email, true /* lower */)
	na.Phone = core.CleanString(na.Phone)
	na.Address = core.CleanString(na.Address)

	if err := validate.Struct(na); err != nil {
		return err
	}
	return svc.CheckUniqueness(ctx, na.Username, na.Email, na.Phone)
}

// Credentials is a login request.
type Credentials struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Email = core.CleanString(c.Email, true /* lower */)
	return validate.Struct(c)
}
