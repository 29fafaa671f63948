package teacher

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
)

var ErrNotFound = errors.New("teacher not found")

type (
	Repository interface {
		CreateTeacher(ctx context.Context, tch Teacher) (Teacher, error)
		// GetTeacher finds a live teacher by id; ErrNotFound otherwise.
		GetTeacher(ctx context.Context, id int) (Teacher, error)
		QueryTeachers(ctx context.Context, ordering ...core.DBOrdering) ([]Teacher, error)
		UpdateTeacher(ctx context.Context, tch Teacher) (Teacher, error)
		MarkTeacherDeleted(ctx context.Context, id int, at time.Time) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nt NewTeacher, accountID null.Int) (Teacher, error) {
	tch := Teacher{
		AccountID: accountID,
		FullName:  nt.FullName,
		Email:     nt.Email,
		Phone:     nt.Phone,
		Address:   nt.Address,
		Status:    core.StatusActive,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateTeacher(ctx, tch)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Teacher, error) {
	return svc.repo.GetTeacher(ctx, id)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Teacher, error) {
	return svc.repo.QueryTeachers(ctx)
}

func (svc *Service) Update(ctx context.Context, id int, ut UpdateTeacher) (Teacher, error) {
	tch, err := svc.repo.GetTeacher(ctx, id)
	if err != nil {
		return Teacher{}, err
	}

	tch.FullName = ut.FullName
	tch.Email = ut.Email
	tch.Phone = ut.Phone
	tch.Address = ut.Address
	if ut.Status != "" {
		tch.Status = ut.Status
	}
	tch.UpdatedAt.SetValid(time.Now().UTC())

	return svc.repo.UpdateTeacher(ctx, tch)
}

func (svc *Service) Delete(ctx context.Context, id int) error {
	tch, err := svc.repo.GetTeacher(ctx, id)
	if err != nil {
		return err
	}
	return svc.repo.MarkTeacherDeleted(ctx, tch.ID, time.Now().UTC())
}
