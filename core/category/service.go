package category

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
)

var (
	ErrNotFound = errors.New("category not found")

	// ErrInUse blocks soft deletion while live courses still reference the
	// category. It is a domain outcome, not a fault.
	ErrInUse = errors.New("this category is being used by one or more courses")
)

type (
	GetFilter struct {
		ID   int
		Name string
		// IncludeDeleted also matches soft-deleted records. Name→ID
		// resolution for courses uses it; everything else wants live rows.
		IncludeDeleted bool
	}

	Repository interface {
		CreateCategory(ctx context.Context, cat Category) (Category, error)
		GetCategory(ctx context.Context, filter GetFilter) (Category, error)
		// QueryCategories returns live categories only.
		QueryCategories(ctx context.Context, ordering ...core.DBOrdering) ([]Category, error)
		UpdateCategory(ctx context.Context, cat Category) (Category, error)
		// MarkCategoryDeleted sets DeletedAt and Status="Deleted" in a
		// single write.
		MarkCategoryDeleted(ctx context.Context, id int, at time.Time) error
	}

	// CourseRefChecker reports whether live courses reference a category.
	// Implemented by the course repository.
	CourseRefChecker interface {
		HasLiveCoursesInCategory(ctx context.Context, categoryID int) (bool, error)
	}

	Service struct {
		repo    Repository
		courses CourseRefChecker
	}
)

func NewService(repo Repository, courses CourseRefChecker) *Service {
	return &Service{repo: repo, courses: courses}
}

func (svc *Service) Create(ctx context.Context, nc NewCategory) (Category, error) {
	cat := Category{
		Name:        nc.Name,
		Description: nc.Description,
		Avatar:      nc.Avatar,
		Status:      core.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateCategory(ctx, cat)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Category, error) {
	return svc.repo.GetCategory(ctx, GetFilter{ID: id})
}

func (svc *Service) QueryAll(ctx context.Context) ([]Category, error) {
	return svc.repo.QueryCategories(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateCategory) (Category, error) {
	cat, err := svc.repo.GetCategory(ctx, GetFilter{ID: id})
	if err != nil {
		return Category{}, err
	}

	cat.Name = uc.Name
	cat.Description = uc.Description
	if uc.Avatar != "" {
		cat.Avatar = uc.Avatar
	}
	if uc.Status != "" {
		cat.Status = uc.Status
	}
	cat.UpdatedAt.SetValid(time.Now().UTC())

	return svc.repo.UpdateCategory(ctx, cat)
}

// Delete soft-deletes a live category. It fails with ErrInUse while any live
// course still references the category; nothing changes in that case.
func (svc *Service) Delete(ctx context.Context, id int) error {
	cat, err := svc.repo.GetCategory(ctx, GetFilter{ID: id})
	if err != nil {
		return err
	}

	referenced, err := svc.courses.HasLiveCoursesInCategory(ctx, cat.ID)
	if err != nil {
		return errors.Wrap(err, "checking category references")
	}
	if referenced {
		return ErrInUse
	}

	return svc.repo.MarkCategoryDeleted(ctx, cat.ID, time.Now().UTC())
}
