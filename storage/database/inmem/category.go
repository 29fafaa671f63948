package inmemdb

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/category"
	"github.com/duy-ank/asm-apdp/core/course"
)

type categoryRepository struct {
	db *categoryTable
}

var (
	_ category.Repository     = (*categoryRepository)(nil)
	_ course.CategoryResolver = (*categoryRepository)(nil)
)

func NewCategoryRepository(db *DB) *categoryRepository {
	return &categoryRepository{db: db.category}
}

func (r *categoryRepository) CreateCategory(_ context.Context, cat category.Category) (category.Category, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.pk++
	cat.ID = r.db.pk
	r.db.t[cat.ID] = &cat
	return cat, nil
}

func (r *categoryRepository) GetCategory(_ context.Context, filter category.GetFilter) (category.Category, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, cat := range r.db.t {
		if !filter.IncludeDeleted && !cat.IsLive() {
			continue
		}
		if (filter.ID != 0 && cat.ID == filter.ID) ||
			(filter.Name != "" && cat.Name == filter.Name) {
			return *cat, nil
		}
	}
	return category.Category{}, category.ErrNotFound
}

func (r *categoryRepository) QueryCategories(_ context.Context, _ ...core.DBOrdering) ([]category.Category, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]category.Category, 0, len(r.db.t))
	for _, cat := range r.db.t {
		if cat.IsLive() {
			res = append(res, *cat)
		}
	}
	return res, nil
}

func (r *categoryRepository) UpdateCategory(_ context.Context, cat category.Category) (category.Category, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[cat.ID]; !ok {
		return category.Category{}, category.ErrNotFound
	}
	r.db.t[cat.ID] = &cat
	return cat, nil
}

func (r *categoryRepository) MarkCategoryDeleted(_ context.Context, id int, at time.Time) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	cat, ok := r.db.t[id]
	if !ok || !cat.IsLive() {
		return category.ErrNotFound
	}
	cat.DeletedAt = null.TimeFrom(at)
	cat.Status = core.StatusDeleted
	return nil
}

// ResolveCategoryIDByName matches live and soft-deleted categories alike.
func (r *categoryRepository) ResolveCategoryIDByName(ctx context.Context, name string) (int, error) {
	cat, err := r.GetCategory(ctx, category.GetFilter{Name: name, IncludeDeleted: true})
	if err != nil {
		return 0, course.ErrUnknownCategory
	}
	return cat.ID, nil
}
