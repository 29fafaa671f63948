package classroom

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
)

type ClassRoom struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Capacity    int       `json:"capacity" db:"capacity"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   null.Time `json:"updated_at" db:"updated_at"` // UTC
	DeletedAt   null.Time `json:"-" db:"deleted_at"`          // UTC
}

func (c *ClassRoom) IsLive() bool {
	return !c.DeletedAt.Valid
}

// NewClassRoom contains information needed to create a new ClassRoom.
type NewClassRoom struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description"`
	Capacity    int    `json:"capacity" form:"capacity" validate:"omitempty,gt=0"`
}

func (nc *NewClassRoom) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Description = core.CleanString(nc.Description)
	return validate.Struct(nc)
}

// UpdateClassRoom defines what may be changed on an existing ClassRoom.
type UpdateClassRoom struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description"`
	Capacity    int    `json:"capacity" form:"capacity" validate:"omitempty,gt=0"`
	Status      string `json:"status" form:"status"`
}

func (uc *UpdateClassRoom) Validate(validate *validator.Validate) error {
	uc.Name = core.CleanString(uc.Name)
	uc.Description = core.CleanString(uc.Description)
	return validate.Struct(uc)
}
