package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/student"
)

var studentUniqueSentinels = map[string]error{
	"students_classroom_email_key": student.ErrEmailExistsInClass,
	"students_classroom_phone_key": student.ErrPhoneExistsInClass,
}

type studentRepository struct {
	db core.DBExecutor
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db core.DBExecutor) *studentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) CheckClassUniqueness(ctx context.Context, email, phone string, classRoomID null.Int, excluded ...student.Student) error {
	// IS NOT DISTINCT FROM puts students without a classroom in one bucket
	q := `SELECT email, phone FROM students
		WHERE deleted_at IS NULL AND classroom_id IS NOT DISTINCT FROM ? AND (email = ? OR phone = ?)`
	args := []interface{}{classRoomID, email, phone}
	if len(excluded) > 0 {
		ids := make([]int, len(excluded))
		for i, s := range excluded {
			ids[i] = s.ID
		}
		q += ` AND id NOT IN (?)`
		args = append(args, ids)
	}

	q, flatArgs, err := sqlx.In(q, args...)
	if err != nil {
		return errors.Wrap(err, "building uniqueness query")
	}

	var clashes []student.Student
	if err := sqlx.SelectContext(ctx, r.db, &clashes, r.db.Rebind(q), flatArgs...); err != nil {
		return errors.Wrap(err, "checking student uniqueness")
	}
	for _, c := range clashes {
		switch {
		case c.Email == email:
			return student.ErrEmailExistsInClass
		case c.Phone == phone:
			return student.ErrPhoneExistsInClass
		}
	}
	return nil
}

func (r *studentRepository) CreateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	const q = `
		INSERT INTO students (account_id, full_name, email, phone, address, classroom_id, course_id, status, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.db, &std.ID, q,
		std.AccountID, std.FullName, std.Email, std.Phone, std.Address,
		std.ClassRoomID, std.CourseID, std.Status, std.CreatedAt, std.UpdatedAt, std.DeletedAt)
	if err != nil {
		return student.Student{}, trapUniqueErr(err, studentUniqueSentinels)
	}
	return std, nil
}

func (r *studentRepository) GetStudent(ctx context.Context, id int) (student.Student, error) {
	var std student.Student
	q := `SELECT * FROM students WHERE deleted_at IS NULL AND id = $1`
	if err := sqlx.GetContext(ctx, r.db, &std, q, id); err != nil {
		return student.Student{}, trapNoRowsErr(err, student.ErrNotFound)
	}
	return std, nil
}

func (r *studentRepository) QueryStudents(ctx context.Context, filter student.QueryFilter, ordering ...core.DBOrdering) ([]student.Student, error) {
	q := `SELECT * FROM students WHERE deleted_at IS NULL`
	var args []interface{}
	if filter.ClassRoomID != 0 {
		args = append(args, filter.ClassRoomID)
		q += ` AND classroom_id = $1`
	}
	if filter.CourseID != 0 {
		args = append(args, filter.CourseID)
		if len(args) == 1 {
			q += ` AND course_id = $1`
		} else {
			q += ` AND course_id = $2`
		}
	}
	q += orderBy(ordering)

	var stds []student.Student
	if err := sqlx.SelectContext(ctx, r.db, &stds, q, args...); err != nil {
		return nil, errors.Wrap(err, "querying students")
	}
	return stds, nil
}

func (r *studentRepository) UpdateStudent(ctx context.Context, std student.Student) (student.Student, error) {
	const q = `
		UPDATE students
		SET account_id = $2, full_name = $3, email = $4, phone = $5, address = $6,
		    classroom_id = $7, course_id = $8, status = $9, updated_at = $10, deleted_at = $11
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		std.ID, std.AccountID, std.FullName, std.Email, std.Phone, std.Address,
		std.ClassRoomID, std.CourseID, std.Status, std.UpdatedAt, std.DeletedAt)
	if err != nil {
		return student.Student{}, trapUniqueErr(err, studentUniqueSentinels)
	}
	if n, err := res.RowsAffected(); err != nil {
		return student.Student{}, errors.Wrap(err, "updating student")
	} else if n == 0 {
		return student.Student{}, student.ErrNotFound
	}
	return std, nil
}

func (r *studentRepository) MarkStudentDeleted(ctx context.Context, id int, at time.Time) error {
	const q = `
		UPDATE students
		SET deleted_at = $2, status = $3
		WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, q, id, at, core.StatusDeleted)
	if err != nil {
		return errors.Wrap(err, "deleting student")
	}
	if n, err := res.RowsAffected(); err != nil {
		return errors.Wrap(err, "deleting student")
	} else if n == 0 {
		return student.ErrNotFound
	}
	return nil
}
