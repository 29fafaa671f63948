package student

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
)

var (
	ErrNotFound = errors.New("student not found")

	// Uniqueness of email and phone is scoped to a classroom, not global:
	// two students in different classrooms may share an email.
	ErrEmailExistsInClass = errors.New("email already exists in this class")
	ErrPhoneExistsInClass = errors.New("phone number already exists in this class")
)

type (
	Repository interface {
		// CheckClassUniqueness verifies email and phone against live
		// students sharing the same classroom, skipping the excluded ones.
		// It returns ErrEmailExistsInClass or ErrPhoneExistsInClass.
		CheckClassUniqueness(ctx context.Context, email, phone string, classRoomID null.Int, excluded ...Student) error
		CreateStudent(ctx context.Context, std Student) (Student, error)
		// GetStudent finds a live student by id; ErrNotFound otherwise.
		GetStudent(ctx context.Context, id int) (Student, error)
		// QueryStudents returns live students matching the filter.
		QueryStudents(ctx context.Context, filter QueryFilter, ordering ...core.DBOrdering) ([]Student, error)
		UpdateStudent(ctx context.Context, std Student) (Student, error)
		MarkStudentDeleted(ctx context.Context, id int, at time.Time) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CheckClassUniqueness converts repository uniqueness failures into
// field-level validation errors on the originating form.
func (svc *Service) CheckClassUniqueness(ctx context.Context, email, phone string, classRoomID null.Int, excl ...Student) error {
	if err := svc.repo.CheckClassUniqueness(ctx, email, phone, classRoomID, excl...); err != nil {
		var field string
		switch errors.Cause(err) {
		case ErrEmailExistsInClass:
			field = "email"
		case ErrPhoneExistsInClass:
			field = "phone"
		default:
			return err
		}
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return nil
}

func (svc *Service) Create(ctx context.Context, ns NewStudent, accountID null.Int) (Student, error) {
	std := Student{
		AccountID:   accountID,
		FullName:    ns.FullName,
		Email:       ns.Email,
		Phone:       ns.Phone,
		Address:     ns.Address,
		ClassRoomID: ns.ClassRoomID,
		CourseID:    ns.CourseID,
		Status:      core.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateStudent(ctx, std)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Student, error) {
	return svc.repo.GetStudent(ctx, id)
}

func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Student, error) {
	return svc.repo.QueryStudents(ctx, filter)
}

func (svc *Service) Update(ctx context.Context, id int, us UpdateStudent) (Student, error) {
	std, err := svc.repo.GetStudent(ctx, id)
	if err != nil {
		return Student{}, err
	}

	std.FullName = us.FullName
	std.Email = us.Email
	std.Phone = us.Phone
	std.Address = us.Address
	std.ClassRoomID = us.ClassRoomID
	std.CourseID = us.CourseID
	if us.Status != "" {
		std.Status = us.Status
	}
	std.UpdatedAt.SetValid(time.Now().UTC())

	return svc.repo.UpdateStudent(ctx, std)
}

// AssignClassRoom moves a live student into a classroom after re-checking the
// per-class email/phone uniqueness in the target class.
func (svc *Service) AssignClassRoom(ctx context.Context, id, classRoomID int) (Student, error) {
	std, err := svc.repo.GetStudent(ctx, id)
	if err != nil {
		return Student{}, err
	}

	target := null.IntFrom(classRoomID)
	if err := svc.CheckClassUniqueness(ctx, std.Email, std.Phone, target, std); err != nil {
		return Student{}, err
	}

	std.ClassRoomID = target
	std.UpdatedAt.SetValid(time.Now().UTC())
	return svc.repo.UpdateStudent(ctx, std)
}

// Delete soft-deletes a live student. Students carry no reference guard.
func (svc *Service) Delete(ctx context.Context, id int) error {
	std, err := svc.repo.GetStudent(ctx, id)
	if err != nil {
		return err
	}
	return svc.repo.MarkStudentDeleted(ctx, std.ID, time.Now().UTC())
}
