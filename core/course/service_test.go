package course_test

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

func newTestServices(t *testing.T) (*course.Service, *category.Service) {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed, %v", err)
	}
	catRepo := inmemdb.NewCategoryRepository(db)
	crsRepo := inmemdb.NewCourseRepository(db)
	return course.NewService(crsRepo, catRepo), category.NewService(catRepo, crsRepo)
}

func newCourse(name, catName string) course.NewCourse {
	start := time.Now().UTC()
	return course.NewCourse{
		Name:         name,
		CategoryName: catName,
		StartDate:    start,
		EndDate:      start.AddDate(0, 3, 0),
	}
}

func TestService_Create_categoryResolution(t *testing.T) {
	crsSvc, catSvc := newTestServices(t)
	ctx := context.Background()

	cat, err := catSvc.Create(ctx, category.NewCategory{Name: "Math"})
	if err != nil {
		t.Fatalf("category Create() failed, %v", err)
	}

	t.Run("resolves by name", func(t *testing.T) {
		crs, err := crsSvc.Create(ctx, newCourse("Algebra", "Math"))
		assert.NoError(t, err)
		assert.Equal(t, cat.ID, crs.CategoryID)
		assert.Equal(t, core.StatusActive, crs.Status)
	})

	t.Run("unknown name is a field error", func(t *testing.T) {
		_, err := crsSvc.Create(ctx, newCourse("Potions", "Magic"))
		var vErr *core.ValidationError
		if assert.ErrorAs(t, err, &vErr) {
			assert.Equal(t, "category_name", vErr.Fields[0].Field)
			assert.Equal(t, course.ErrUnknownCategory.Error(), vErr.Fields[0].Error)
		}
	})

	t.Run("soft-deleted category still resolves", func(t *testing.T) {
		gone, err := catSvc.Create(ctx, category.NewCategory{Name: "History"})
		if err != nil {
			t.Fatalf("category Create() failed, %v", err)
		}
		if err := catSvc.Delete(ctx, gone.ID); err != nil {
			t.Fatalf("category Delete() failed, %v", err)
		}

		crs, err := crsSvc.Create(ctx, newCourse("Antiquity", "History"))
		assert.NoError(t, err)
		assert.Equal(t, gone.ID, crs.CategoryID)
	})
}

func TestService_Update(t *testing.T) {
	crsSvc, catSvc := newTestServices(t)
	ctx := context.Background()

	if _, err := catSvc.Create(ctx, category.NewCategory{Name: "Math"}); err != nil {
		t.Fatalf("category Create() failed, %v", err)
	}
	sci, err := catSvc.Create(ctx, category.NewCategory{Name: "Science"})
	if err != nil {
		t.Fatalf("category Create() failed, %v", err)
	}
	crs, err := crsSvc.Create(ctx, newCourse("Algebra", "Math"))
	if err != nil {
		t.Fatalf("Create() failed, %v", err)
	}

	upd := course.UpdateCourse{
		Name:         "Physics",
		CategoryName: "Science",
		StartDate:    crs.StartDate,
		EndDate:      crs.EndDate,
		Vote:         4,
	}
	crs, err = crsSvc.Update(ctx, crs.ID, upd)
	assert.NoError(t, err)
	assert.Equal(t, "Physics", crs.Name)
	assert.Equal(t, sci.ID, crs.CategoryID)
	assert.Equal(t, 4, crs.Vote)
	assert.True(t, crs.UpdatedAt.Valid)

	// unknown target category rejects the whole update
	upd.CategoryName = "Magic"
	_, err = crsSvc.Update(ctx, crs.ID, upd)
	var vErr *core.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestService_Delete(t *testing.T) {
	crsSvc, catSvc := newTestServices(t)
	ctx := context.Background()

	if _, err := catSvc.Create(ctx, category.NewCategory{Name: "Math"}); err != nil {
		t.Fatalf("category Create() failed, %v", err)
	}
	crs, err := crsSvc.Create(ctx, newCourse("Algebra", "Math"))
	if err != nil {
		t.Fatalf("Create() failed, %v", err)
	}

	assert.NoError(t, crsSvc.Delete(ctx, crs.ID))
	_, err = crsSvc.GetByID(ctx, crs.ID)
	assert.Equal(t, course.ErrNotFound, errors.Cause(err))

	crss, err := crsSvc.Query(ctx, course.QueryFilter{})
	assert.NoError(t, err)
	assert.Empty(t, crss)
}
