package category

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
)

type Category struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Avatar      string    `json:"avatar" db:"avatar"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   null.Time `json:"updated_at" db:"updated_at"` // UTC
	DeletedAt   null.Time `json:"-" db:"deleted_at"`          // UTC
}

func (c *Category) IsLive() bool {
	return !c.DeletedAt.Valid
}

// NewCategory contains information needed to create a new Category.
type NewCategory struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description"`
	Avatar      string `json:"avatar" form:"avatar"`
}

func (nc *NewCategory) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.Description = core.CleanString(nc.Description)
	return validate.Struct(nc)
}

// UpdateCategory defines what may be changed on an existing Category.
// An empty Avatar keeps the stored one.
type UpdateCategory struct {
	Name        string `json:"name" form:"name" validate:"required,max=100"`
	Description string `json:"description" form:"description"`
	Avatar      string `json:"avatar" form:"avatar"`
	Status      string `json:"status" form:"status"`
}

func (uc *UpdateCategory) Validate(validate *validator.Validate) error {
	uc.Name = core.CleanString(uc.Name)
	uc.Description = core.CleanString(uc.Description)
	return validate.Struct(uc)
}
