package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/teacher"
)

type teacherRepository struct {
	db core.DBExecutor
}

var _ teacher.Repository = (*teacherRepository)(nil)

func NewTeacherRepository(db core.DBExecutor) *teacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) CreateTeacher(ctx context.Context, tch teacher.Teacher) (teacher.Teacher, error) {
	const q = `
		INSERT INTO teachers (account_id, full_name, email, phone, address, status, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.db, &tch.ID, q,
		tch.AccountID, tch.FullName, tch.Email, tch.Phone, tch.Address,
		tch.Status, tch.CreatedAt, tch.UpdatedAt, tch.DeletedAt)
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "creating teacher")
	}
	return tch, nil
}

func (r *teacherRepository) GetTeacher(ctx context.Context, id int) (teacher.Teacher, error) {
	var tch teacher.Teacher
	q := `SELECT * FROM teachers WHERE deleted_at IS NULL AND id = $1`
	if err := sqlx.GetContext(ctx, r.db, &tch, q, id); err != nil {
		return teacher.Teacher{}, trapNoRowsErr(err, teacher.ErrNotFound)
	}
	return tch, nil
}

func (r *teacherRepository) QueryTeachers(ctx context.Context, ordering ...core.DBOrdering) ([]teacher.Teacher, error) {
	var tchs []teacher.Teacher
	q := `SELECT * FROM teachers WHERE deleted_at IS NULL` + orderBy(ordering)
	if err := sqlx.SelectContext(ctx, r.db, &tchs, q); err != nil {
		return nil, errors.Wrap(err, "querying teachers")
	}
	return tchs, nil
}

func (r *teacherRepository) UpdateTeacher(ctx context.Context, tch teacher.Teacher) (teacher.Teacher, error) {
	const q = `
		UPDATE teachers
		SET account_id = $2, full_name = $3, email = $4, phone = $5, address = $6,
		    status = $7, updated_at = $8, deleted_at = $9
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		tch.ID, tch.AccountID, tch.FullName, tch.Email, tch.Phone, tch.Address,
		tch.Status, tch.UpdatedAt, tch.DeletedAt)
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "updating teacher")
	}
	if n, err := res.RowsAffected(); err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "updating teacher")
	} else if n == 0 {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	return tch, nil
}

func (r *teacherRepository) MarkTeacherDeleted(ctx context.Context, id int, at time.Time) error {
	const q = `
		UPDATE teachers
		SET deleted_at = $2, status = $3
		WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, q, id, at, core.StatusDeleted)
	if err != nil {
		return errors.Wrap(err, "deleting teacher")
	}
	if n, err := res.RowsAffected(); err != nil {
		return errors.Wrap(err, "deleting teacher")
	} else if n == 0 {
		return teacher.ErrNotFound
	}
	return nil
}
