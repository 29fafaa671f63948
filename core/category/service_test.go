package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/category"
	"github.com/duy-ank/asm-apdp/core/course"
	inmemdb "github.com/duy-ank/asm-apdp/storage/database/inmem"
)

func newTestServices(t *testing.T) (*category.Service, *course.Service, category.Repository) {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed, %v", err)
	}
	catRepo := inmemdb.NewCategoryRepository(db)
	crsRepo := inmemdb.NewCourseRepository(db)
	return category.NewService(catRepo, crsRepo), course.NewService(crsRepo, catRepo), catRepo
}

func TestService_Update(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	cat, err := svc.Create(ctx, category.NewCategory{Name: "Math", Avatar: "math.png"})
	if err != nil {
		t.Fatalf("Create() failed, %v", err)
	}

	// an empty avatar keeps the stored one
	cat, err = svc.Update(ctx, cat.ID, category.UpdateCategory{Name: "Mathematics"})
	assert.NoError(t, err)
	assert.Equal(t, "Mathematics", cat.Name)
	assert.Equal(t, "math.png", cat.Avatar)
	assert.True(t, cat.UpdatedAt.Valid)

	cat, err = svc.Update(ctx, cat.ID, category.UpdateCategory{Name: "Mathematics", Avatar: "new.png"})
	assert.NoError(t, err)
	assert.Equal(t, "new.png", cat.Avatar)
}

func TestService_Delete_referenceGuard(t *testing.T) {
	catSvc, crsSvc, catRepo := newTestServices(t)
	ctx := context.Background()

	cat, err := catSvc.Create(ctx, category.NewCategory{Name: "Math"})
	if err != nil {
		t.Fatalf("Create() failed, %v", err)
	}
	start := time.Now().UTC()
	crs, err := crsSvc.Create(ctx, course.NewCourse{
		Name:         "Algebra",
		CategoryName: "Math",
		StartDate:    start,
		EndDate:      start.AddDate(0, 3, 0),
	})
	if err != nil {
		t.Fatalf("course Create() failed, %v", err)
	}

	// a live course blocks deletion and nothing changes
	err = catSvc.Delete(ctx, cat.ID)
	assert.Equal(t, category.ErrInUse, errors.Cause(err))

	got, err := catSvc.GetByID(ctx, cat.ID)
	assert.NoError(t, err)
	assert.Equal(t, core.StatusActive, got.Status)
	assert.False(t, got.DeletedAt.Valid)

	// soft-deleting the course lifts the guard
	if err := crsSvc.Delete(ctx, crs.ID); err != nil {
		t.Fatalf("course Delete() failed, %v", err)
	}
	assert.NoError(t, catSvc.Delete(ctx, cat.ID))

	// the category is gone from live reads but kept in the store
	_, err = catSvc.GetByID(ctx, cat.ID)
	assert.Equal(t, category.ErrNotFound, errors.Cause(err))

	kept, err := catRepo.GetCategory(ctx, category.GetFilter{ID: cat.ID, IncludeDeleted: true})
	assert.NoError(t, err)
	assert.Equal(t, core.StatusDeleted, kept.Status)
	assert.True(t, kept.DeletedAt.Valid)

	// deleting twice is a not-found
	err = catSvc.Delete(ctx, cat.ID)
	assert.Equal(t, category.ErrNotFound, errors.Cause(err))
}

func TestService_QueryAll_liveOnly(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, category.NewCategory{Name: "Math"}); err != nil {
		t.Fatalf("Create() failed, %v", err)
	}
	gone, err := svc.Create(ctx, category.NewCategory{Name: "History"})
	if err != nil {
		t.Fatalf("Create() failed, %v", err)
	}
	if err := svc.Delete(ctx, gone.ID); err != nil {
		t.Fatalf("Delete() failed, %v", err)
	}

	cats, err := svc.QueryAll(ctx)
	assert.NoError(t, err)
	if assert.Len(t, cats, 1) {
		assert.Equal(t, "Math", cats[0].Name)
	}
}
