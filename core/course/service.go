package course

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
)

var (
	ErrNotFound        = errors.New("course not found")
	ErrUnknownCategory = errors.New("this category does not exist")
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		// GetCourse finds a live course by id; ErrNotFound otherwise.
		GetCourse(ctx context.Context, id int) (Course, error)
		// QueryCourses returns live courses matching the filter.
		QueryCourses(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Course, error)
		UpdateCourse(ctx context.Context, crs Course) (Course, error)
		MarkCourseDeleted(ctx context.Context, id int, at time.Time) error
	}

	// CategoryResolver resolves a category name to its id, matching both
	// live and soft-deleted categories. Implemented by the category
	// repository.
	CategoryResolver interface {
		ResolveCategoryIDByName(ctx context.Context, name string) (int, error)
	}

	Service struct {
		repo       Repository
		categories CategoryResolver
	}
)

func NewService(repo Repository, categories CategoryResolver) *Service {
	return &Service{repo: repo, categories: categories}
}

// resolveCategory maps an unresolvable name to a field-level validation
// error instead of a fault.
func (svc *Service) resolveCategory(ctx context.Context, name string) (int, error) {
	id, err := svc.categories.ResolveCategoryIDByName(ctx, name)
	if err != nil {
		if errors.Cause(err) == ErrUnknownCategory {
			return 0, core.NewValidationError(err, core.FieldError{Field: "category_name", Error: err.Error()})
		}
		return 0, errors.Wrap(err, "resolving category name")
	}
	return id, nil
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	catID, err := svc.resolveCategory(ctx, nc.CategoryName)
	if err != nil {
		return Course{}, err
	}

	crs := Course{
		Name:        nc.Name,
		Description: nc.Description,
		CategoryID:  catID,
		StartDate:   nc.StartDate,
		EndDate:     nc.EndDate,
		Vote:        nc.Vote,
		Status:      core.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Course, error) {
	return svc.repo.GetCourse(ctx, id)
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Course, error) {
	return svc.repo.QueryCourses(ctx, filter)
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateCourse) (Course, error) {
	crs, err := svc.repo.GetCourse(ctx, id)
	if err != nil {
		return Course{}, err
	}

	catID, err := svc.resolveCategory(ctx, uc.CategoryName)
	if err != nil {
		return Course{}, err
	}

	crs.Name = uc.Name
	crs.Description = uc.Description
	crs.CategoryID = catID
	crs.StartDate = uc.StartDate
	crs.EndDate = uc.EndDate
	crs.Vote = uc.Vote
	if uc.Status != "" {
		crs.Status = uc.Status
	}
	crs.UpdatedAt.SetValid(time.Now().UTC())

	return svc.repo.UpdateCourse(ctx, crs)
}

// Delete soft-deletes a live course. Courses carry no reference guard.
func (svc *Service) Delete(ctx context.Context, id int) error {
	crs, err := svc.repo.GetCourse(ctx, id)
	if err != nil {
		return err
	}
	return svc.repo.MarkCourseDeleted(ctx, crs.ID, time.Now().UTC())
}
