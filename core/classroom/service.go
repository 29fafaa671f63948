package classroom

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/duy-ank/asm-apdp/core"
)

var ErrNotFound = errors.New("classroom not found")

type (
	Repository interface {
		CreateClassRoom(ctx context.Context, cls ClassRoom) (ClassRoom, error)
		// GetClassRoom finds a live classroom by id; ErrNotFound otherwise.
		GetClassRoom(ctx context.Context, id int) (ClassRoom, error)
		QueryClassRooms(ctx context.Context, ordering ...core.DBOrdering) ([]ClassRoom, error)
		UpdateClassRoom(ctx context.Context, cls ClassRoom) (ClassRoom, error)
		MarkClassRoomDeleted(ctx context.Context, id int, at time.Time) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewClassRoom) (ClassRoom, error) {
	cls := ClassRoom{
		Name:        nc.Name,
		Description: nc.Description,
		Capacity:    nc.Capacity,
		Status:      core.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateClassRoom(ctx, cls)
}

func (svc *Service) GetByID(ctx context.Context, id int) (ClassRoom, error) {
	return svc.repo.GetClassRoom(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]ClassRoom, error) {
	return svc.repo.QueryClassRooms(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateClassRoom) (ClassRoom, error) {
	cls, err := svc.repo.GetClassRoom(ctx, id)
	if err != nil {
		return ClassRoom{}, err
	}

	cls.Name = uc.Name
	cls.Description = uc.Description
	if uc.Capacity > 0 {
		cls.Capacity = uc.Capacity
	}
	if uc.Status != "" {
		cls.Status = uc.Status
	}
	cls.UpdatedAt.SetValid(time.Now().UTC())

	return svc.repo.UpdateClassRoom(ctx, cls)
}

// Delete soft-deletes a live classroom.
func (svc *Service) Delete(ctx context.Context, id int) error {
	cls, err := svc.repo.GetClassRoom(ctx, id)
	if err != nil {
		return err
	}
	return svc.repo.MarkClassRoomDeleted(ctx, cls.ID, time.Now().UTC())
}
