package inmemdb

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) *studentRepository {
	return &studentRepository{db: db.student}
}

func (r *studentRepository) CheckClassUniqueness(_ context.Context, email, phone string, classRoomID null.Int, excluded ...student.Student) error {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	skip := make(map[int]struct{}, len(excluded))
	for _, s := range excluded {
		skip[s.ID] = struct{}{}
	}

	// scoped to live classmates only
	for _, std := range r.db.t {
		if !std.IsLive() {
			continue
		}
		if _, ok := skip[std.ID]; ok {
			continue
		}
		if std.ClassRoomID != classRoomID {
			continue
		}
		if std.Email == email {
			return student.ErrEmailExistsInClass
		}
		if std.Phone == phone {
			return student.ErrPhoneExistsInClass
		}
	}
	return nil
}

func (r *studentRepository) CreateStudent(_ context.Context, std student.Student) (student.Student, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.pk++
	std.ID = r.db.pk
	r.db.t[std.ID] = &std
	return std, nil
}

func (r *studentRepository) GetStudent(_ context.Context, id int) (student.Student, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if std, ok := r.db.t[id]; ok && std.IsLive() {
		return *std, nil
	}
	return student.Student{}, student.ErrNotFound
}

func (r *studentRepository) QueryStudents(_ context.Context, filter student.QueryFilter, _ ...core.DBOrdering) ([]student.Student, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]student.Student, 0, len(r.db.t))
	for _, std := range r.db.t {
		if !std.IsLive() {
			continue
		}
		if filter.ClassRoomID != 0 && std.ClassRoomID.Int != filter.ClassRoomID {
			continue
		}
		if filter.CourseID != 0 && std.CourseID.Int != filter.CourseID {
			continue
		}
		res = append(res, *std)
	}
	return res, nil
}

func (r *studentRepository) UpdateStudent(_ context.Context, std student.Student) (student.Student, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[std.ID]; !ok {
		return student.Student{}, student.ErrNotFound
	}
	r.db.t[std.ID] = &std
	return std, nil
}

func (r *studentRepository) MarkStudentDeleted(_ context.Context, id int, at time.Time) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	std, ok := r.db.t[id]
	if !ok || !std.IsLive() {
		return student.ErrNotFound
	}
	std.DeletedAt = null.TimeFrom(at)
	std.Status = core.StatusDeleted
	return nil
}
