package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/classroom"
)

type classRoomRepository struct {
	db core.DBExecutor
}

var _ classroom.Repository = (*classRoomRepository)(nil)

func NewClassRoomRepository(db core.DBExecutor) *classRoomRepository {
	return &classRoomRepository{db: db}
}

func (r *classRoomRepository) CreateClassRoom(ctx context.Context, cls classroom.ClassRoom) (classroom.ClassRoom, error) {
	const q = `
		INSERT INTO classrooms (name, description, capacity, status, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := sqlx.GetContext(ctx, r.db, &cls.ID, q,
		cls.Name, cls.Description, cls.Capacity, cls.Status, cls.CreatedAt, cls.UpdatedAt, cls.DeletedAt)
	if err != nil {
		return classroom.ClassRoom{}, errors.Wrap(err, "creating classroom")
	}
	return cls, nil
}

func (r *classRoomRepository) GetClassRoom(ctx context.Context, id int) (classroom.ClassRoom, error) {
	var cls classroom.ClassRoom
	q := `SELECT * FROM classrooms WHERE deleted_at IS NULL AND id = $1`
	if err := sqlx.GetContext(ctx, r.db, &cls, q, id); err != nil {
		return classroom.ClassRoom{}, trapNoRowsErr(err, classroom.ErrNotFound)
	}
	return cls, nil
}

func (r *classRoomRepository) QueryClassRooms(ctx context.Context, ordering ...core.DBOrdering) ([]classroom.ClassRoom, error) {
	var clss []classroom.ClassRoom
	q := `SELECT * FROM classrooms WHERE deleted_at IS NULL` + orderBy(ordering)
	if err := sqlx.SelectContext(ctx, r.db, &clss, q); err != nil {
		return nil, errors.Wrap(err, "querying classrooms")
	}
	return clss, nil
}

func (r *classRoomRepository) UpdateClassRoom(ctx context.Context, cls classroom.ClassRoom) (classroom.ClassRoom, error) {
	const q = `
		UPDATE classrooms
		SET name = $2, description = $3, capacity = $4, status = $5, updated_at = $6, deleted_at = $7
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		cls.ID, cls.Name, cls.Description, cls.Capacity, cls.Status, cls.UpdatedAt, cls.DeletedAt)
	if err != nil {
		return classroom.ClassRoom{}, errors.Wrap(err, "updating classroom")
	}
	if n, err := res.RowsAffected(); err != nil {
		return classroom.ClassRoom{}, errors.Wrap(err, "updating classroom")
	} else if n == 0 {
		return classroom.ClassRoom{}, classroom.ErrNotFound
	}
	return cls, nil
}

func (r *classRoomRepository) MarkClassRoomDeleted(ctx context.Context, id int, at time.Time) error {
	const q = `
		UPDATE classrooms
		SET deleted_at = $2, status = $3
		WHERE id = $1 AND deleted_at IS NULL`
	res, err := r.db.ExecContext(ctx, q, id, at, core.StatusDeleted)
	if err != nil {
		return errors.Wrap(err, "deleting classroom")
	}
	if n, err := res.RowsAffected(); err != nil {
		return errors.Wrap(err, "deleting classroom")
	} else if n == 0 {
		return classroom.ErrNotFound
	}
	return nil
}
