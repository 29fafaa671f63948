package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/category"
	"github.com/duy-ank/asm-apdp/core/course"
)

type categoryRepository struct {
	db core.DBExecutor
}

var (
	_ category.Repository     = (*categoryRepository)(nil)
	_ course.CategoryResolver = (*categoryRepository)(nil)
)

func NewCategoryRepository(db core.DBExecutor) *categoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, cat category.Category) (category.Category, error) {
	const q = `
		INSERT INTO categories (name, description, avatar, status, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.db, &cat.ID, q,
		cat.Name, cat.Description, cat.Avatar, cat.Status, cat.CreatedAt, cat.UpdatedAt, cat.DeletedAt)
	if err != nil {
		return category.Category{}, errors.Wrap(err, "creating category")
	}
	return cat, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, filter category.GetFilter) (category.Category, error) {
	var (
		cond string
		arg  interface{}
	)
	switch {
	case filter.ID != 0:
		cond, arg = `id = $1`, filter.ID
	case filter.Name != "":
		cond, arg = `name = $1`, filter.Name
	default:
		return category.Category{}, category.ErrNotFound
	}

	q := `SELECT * FROM categories WHERE ` + cond
	if !filter.IncludeDeleted {
		q += ` AND deleted_at IS NULL`
	}

	var cat category.Category
	if err := sqlx.GetContext(ctx, r.db, &cat, q, arg); err != nil {
		return category.Category{}, trapNoRowsErr(err, category.ErrNotFound)
	}
	return cat, nil
}

func (r *categoryRepository) QueryCategories(ctx context.Context, ordering ...core.DBOrdering) ([]category.Category, error) {
	var cats []category.Category
	q := `SELECT * FROM categories WHERE deleted_at IS NULL` + orderBy(ordering)
	if err := sqlx.SelectContext(ctx, r.db, &cats, q); err != nil {
		return nil, errors.Wrap(err, "querying categories")
	}
	return cats, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, cat category.Category) (category.Category, error) {
	const q = `
		UPDATE categories
		SET name = $2, description = $3, avatar = $4, status = $5, updated_at = $6, deleted_at = $7
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		cat.ID, cat.Name, cat.Description, cat.Avatar, cat.Status, cat.UpdatedAt, cat.DeletedAt)
	if err != nil {
		return category.Category{}, errors.Wrap(err, "updating category")
	}
	if n, err := res.RowsAffected(); err != nil {
		return category.Category{}, errors.Wrap(err, "updating category")
	} else if n == 0 {
		return category.Category{}, category.ErrNotFound
	}
	return cat, nil
}

func (r *categoryRepository) MarkCategoryDeleted(ctx context.Context, id int, at time.Time) error {
	const q = `
		UPDATE categories
		SET deleted_at = $2, status = $3
		WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, q, id, at, core.StatusDeleted)
	if err != nil {
		return errors.Wrap(err, "deleting category")
	}
	if n, err := res.RowsAffected(); err != nil {
		return errors.Wrap(err, "deleting category")
	} else if n == 0 {
		return category.ErrNotFound
	}
	return nil
}

// ResolveCategoryIDByName matches live and soft-deleted categories alike.
func (r *categoryRepository) ResolveCategoryIDByName(ctx context.Context, name string) (int, error) {
	cat, err := r.GetCategory(ctx, category.GetFilter{Name: name, IncludeDeleted: true})
	if err != nil {
		if errors.Cause(err) == category.ErrNotFound {
			return 0, course.ErrUnknownCategory
		}
		return 0, err
	}
	return cat.ID, nil
}
