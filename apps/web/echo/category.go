package echoapp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core/auth"
	"github.com/duy-ank/asm-apdp/core/category"
)

func (s *server) registerCategoryRoutes() {
	g := s.app.Group("/categories")
	g.GET("", s.queryCategories, s.gate(auth.ResourceCategory, auth.ActionIndex))
	g.POST("", s.createCategory, s.gate(auth.ResourceCategory, auth.ActionCreate))
	g.GET("/:id", s.retrieveCategory, s.gate(auth.ResourceCategory, auth.ActionEdit))
	g.PUT("/:id", s.updateCategory, s.gate(auth.ResourceCategory, auth.ActionEdit))
	g.DELETE("/:id", s.deleteCategory, s.gate(auth.ResourceCategory, auth.ActionDelete))
}

// pathID parses the :id path param; 0 means the param is malformed and the
// record lookup will miss.
func pathID(ctx echo.Context) int {
	id, _ := strconv.Atoi(ctx.Param("id"))
	return id
}

func (s *server) queryCategories(ctx echo.Context) error {
	cats, err := s.opts.CategorySvc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying categories")
	}
	if cats == nil {
		cats = []category.Category{}
	}
	return ctx.JSON(http.StatusOK, cats)
}

func (s *server) createCategory(ctx echo.Context) error {
	var data category.NewCategory
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCategory")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	cat, err := s.opts.CategorySvc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating category")
	}
	return ctx.JSON(http.StatusCreated, cat)
}

func (s *server) retrieveCategory(ctx echo.Context) error {
	cat, err := s.opts.CategorySvc.GetByID(ctx.Request().Context(), pathID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cat)
}

func (s *server) updateCategory(ctx echo.Context) error {
	var data category.UpdateCategory
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCategory")
	}
	if err := data.Validate(s.opts.Validate); err != nil {
		return err
	}

	cat, err := s.opts.CategorySvc.Update(ctx.Request().Context(), pathID(ctx), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cat)
}

func (s *server) deleteCategory(ctx echo.Context) error {
	if err := s.opts.CategorySvc.Delete(ctx.Request().Context(), pathID(ctx)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
