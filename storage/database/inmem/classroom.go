package inmemdb

import (
	"context"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/classroom"
)

type classRoomRepository struct {
	db *classRoomTable
}

var _ classroom.Repository = (*classRoomRepository)(nil)

func NewClassRoomRepository(db *DB) *classRoomRepository {
	return &classRoomRepository{db: db.classRoom}
}

func (r *classRoomRepository) CreateClassRoom(_ context.Context, cls classroom.ClassRoom) (classroom.ClassRoom, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.pk++
	cls.ID = r.db.pk
	r.db.t[cls.ID] = &cls
	return cls, nil
}

func (r *classRoomRepository) GetClassRoom(_ context.Context, id int) (classroom.ClassRoom, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if cls, ok := r.db.t[id]; ok && cls.IsLive() {
		return *cls, nil
	}
	return classroom.ClassRoom{}, classroom.ErrNotFound
}

func (r *classRoomRepository) QueryClassRooms(_ context.Context, _ ...core.DBOrdering) ([]classroom.ClassRoom, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]classroom.ClassRoom, 0, len(r.db.t))
	for _, cls := range r.db.t {
		if cls.IsLive() {
			res = append(res, *cls)
		}
	}
	return res, nil
}

func (r *classRoomRepository) UpdateClassRoom(_ context.Context, cls classroom.ClassRoom) (classroom.ClassRoom, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[cls.ID]; !ok {
		return classroom.ClassRoom{}, classroom.ErrNotFound
	}
	r.db.t[cls.ID] = &cls
	return cls, nil
}

func (r *classRoomRepository) MarkClassRoomDeleted(_ context.Context, id int, at time.Time) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	cls, ok := r.db.t[id]
	if !ok || !cls.IsLive() {
		return classroom.ErrNotFound
	}
	cls.DeletedAt = null.TimeFrom(at)
	cls.Status = core.StatusDeleted
	return nil
}
