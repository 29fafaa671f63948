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

type courseRepository struct {
	db core.DBExecutor
}

var (
	_ course.Repository         = (*courseRepository)(nil)
	_ category.CourseRefChecker = (*courseRepository)(nil)
)

func NewCourseRepository(db core.DBExecutor) *courseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	const q = `
		INSERT INTO courses (name, description, category_id, start_date, end_date, vote, status, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.db, &crs.ID, q,
		crs.Name, crs.Description, crs.CategoryID, crs.StartDate, crs.EndDate,
		crs.Vote, crs.Status, crs.CreatedAt, crs.UpdatedAt, crs.DeletedAt)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "creating course")
	}
	return crs, nil
}

func (r *courseRepository) GetCourse(ctx context.Context, id int) (course.Course, error) {
	var crs course.Course
	q := `SELECT * FROM courses WHERE deleted_at IS NULL AND id = $1`
	if err := sqlx.GetContext(ctx, r.db, &crs, q, id); err != nil {
		return course.Course{}, trapNoRowsErr(err, course.ErrNotFound)
	}
	return crs, nil
}

func (r *courseRepository) QueryCourses(ctx context.Context, filter course.QueryFilter, ordering ...core.DBOrdering) ([]course.Course, error) {
	q := `SELECT * FROM courses WHERE deleted_at IS NULL`
	var args []interface{}
	if filter.CategoryID != 0 {
		q += ` AND category_id = $1`
		args = append(args, filter.CategoryID)
	}
	q += orderBy(ordering)

	var crss []course.Course
	if err := sqlx.SelectContext(ctx, r.db, &crss, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	return crss, nil
}

func (r *courseRepository) UpdateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	const q = `
		UPDATE courses
		SET name = $2, description = $3, category_id = $4, start_date = $5, end_date = $6,
		    vote = $7, status = $8, updated_at = $9, deleted_at = $10
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		crs.ID, crs.Name, crs.Description, crs.CategoryID, crs.StartDate, crs.EndDate,
		crs.Vote, crs.Status, crs.UpdatedAt, crs.DeletedAt)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "updating course")
	}
	if n, err := res.RowsAffected(); err != nil {
		return course.Course{}, errors.Wrap(err, "updating course")
	} else if n == 0 {
		return course.Course{}, course.ErrNotFound
	}
	return crs, nil
}

func (r *courseRepository) MarkCourseDeleted(ctx context.Context, id int, at time.Time) error {
	const q = `
		UPDATE courses
		SET deleted_at = $2, status = $3
		WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, q, id, at, core.StatusDeleted)
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}
	if n, err := res.RowsAffected(); err != nil {
		return errors.Wrap(err, "deleting course")
	} else if n == 0 {
		return course.ErrNotFound
	}
	return nil
}

func (r *courseRepository) HasLiveCoursesInCategory(ctx context.Context, categoryID int) (bool, error) {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM courses WHERE deleted_at IS NULL AND category_id = $1)`
	if err := sqlx.GetContext(ctx, r.db, &exists, q, categoryID); err != nil {
		return false, errors.Wrap(err, "checking category references")
	}
	return exists, nil
}
