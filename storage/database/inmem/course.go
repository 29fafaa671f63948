package inmemdb

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/category"
	"github.com/duy-ank/asm-apdp/core/course"
)

type courseRepository struct {
	db *courseTable
}

var (
	_ course.Repository         = (*courseRepository)(nil)
	_ category.CourseRefChecker = (*courseRepository)(nil)
)

func NewCourseRepository(db *DB) *courseRepository {
	return &courseRepository{db: db.course}
}

func (r *courseRepository) CreateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.pk++
	crs.ID = r.db.pk
	r.db.t[crs.ID] = &crs
	return crs, nil
}

func (r *courseRepository) GetCourse(_ context.Context, id int) (course.Course, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if crs, ok := r.db.t[id]; ok && crs.IsLive() {
		return *crs, nil
	}
	return course.Course{}, course.ErrNotFound
}

func (r *courseRepository) QueryCourses(_ context.Context, filter course.QueryFilter, _ ...core.DBOrdering) ([]course.Course, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]course.Course, 0, len(r.db.t))
	for _, crs := range r.db.t {
		if !crs.IsLive() {
			continue
		}
		if filter.CategoryID != 0 && crs.CategoryID != filter.CategoryID {
			continue
		}
		res = append(res, *crs)
	}
	return res, nil
}

func (r *courseRepository) UpdateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[crs.ID]; !ok {
		return course.Course{}, course.ErrNotFound
	}
	r.db.t[crs.ID] = &crs
	return crs, nil
}

func (r *courseRepository) MarkCourseDeleted(_ context.Context, id int, at time.Time) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	crs, ok := r.db.t[id]
	if !ok || !crs.IsLive() {
		return course.ErrNotFound
	}
	crs.DeletedAt = null.TimeFrom(at)
	crs.Status = core.StatusDeleted
	return nil
}

func (r *courseRepository) HasLiveCoursesInCategory(_ context.Context, categoryID int) (bool, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, crs := range r.db.t {
		if crs.IsLive() && crs.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}
