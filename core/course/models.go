package course

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
)

type Course struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CategoryID  int       `json:"category_id" db:"category_id"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	Vote        int       `json:"vote" db:"vote"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   null.Time `json:"updated_at" db:"updated_at"` // UTC
	DeletedAt   null.Time `json:"-" db:"deleted_at"`          // UTC
}

func (c *Course) IsLive() bool {
	return !c.DeletedAt.Valid
}

// NewCourse contains information needed to create a new Course. The category
// is referenced by name; the service resolves it to an id.
type NewCourse struct {
	Name         string    `json:"name" form:"name" validate:"required,max=100"`
	Description  string    `json:"description" form:"description"`
	CategoryName string    `json:"category_name" form:"category_name" validate:"required"`
	StartDate    time.Time `json:"start_date" form:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" form:"end_date" validate:"required,gtefield=StartDate"`
	Vote         int       `json:"vote" form:"vote"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Description = core.CleanString(nc.Description)
	nc.CategoryName = core.CleanString(nc.CategoryName)
	return validate.Struct(nc)
}

// UpdateCourse defines what may be changed on an existing Course.
type UpdateCourse struct {
	Name         string    `json:"name" form:"name" validate:"required,max=100"`
	Description  string    `json:"description" form:"description"`
	CategoryName string    `json:"category_name" form:"category_name" validate:"required"`
	StartDate    time.Time `json:"start_date" form:"start_date" validate:"required"`
	EndDate      time.Time `json:"end_date" form:"end_date" validate:"required,gtefield=StartDate"`
	Vote         int       `json:"vote" form:"vote"`
	Status       string    `json:"status" form:"status"`
}

func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	uc.Name = core.CleanString(uc.Name)
	uc.Description = core.CleanString(uc.Description)
	uc.CategoryName = core.CleanString(uc.CategoryName)
	return validate.Struct(uc)
}

// QueryFilter narrows course listings.
type QueryFilter struct {
	CategoryID int `query:"category_id"`
}
