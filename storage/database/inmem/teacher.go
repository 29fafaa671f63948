package inmemdb

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

var _ teacher.Repository = (*teacherRepository)(nil)

func NewTeacherRepository(db *DB) *teacherRepository {
	return &teacherRepository{db: db.teacher}
}

func (r *teacherRepository) CreateTeacher(_ context.Context, tch teacher.Teacher) (teacher.Teacher, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.pk++
	tch.ID = r.db.pk
	r.db.t[tch.ID] = &tch
	return tch, nil
}

func (r *teacherRepository) GetTeacher(_ context.Context, id int) (teacher.Teacher, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if tch, ok := r.db.t[id]; ok && tch.IsLive() {
		return *tch, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (r *teacherRepository) QueryTeachers(_ context.Context, _ ...core.DBOrdering) ([]teacher.Teacher, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]teacher.Teacher, 0, len(r.db.t))
	for _, tch := range r.db.t {
		if tch.IsLive() {
			res = append(res, *tch)
		}
	}
	return res, nil
}

func (r *teacherRepository) UpdateTeacher(_ context.Context, tch teacher.Teacher) (teacher.Teacher, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[tch.ID]; !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	r.db.t[tch.ID] = &tch
	return tch, nil
}

func (r *teacherRepository) MarkTeacherDeleted(_ context.Context, id int, at time.Time) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	tch, ok := r.db.t[id]
	if !ok || !tch.IsLive() {
		return teacher.ErrNotFound
	}
	tch.DeletedAt = null.TimeFrom(at)
	tch.Status = core.StatusDeleted
	return nil
}
