package student_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/duy-ank/asm-apdp/core"
	"github.com/duy-ank/asm-apdp/core/student"
	inmemdb "github.com/duy-ank/asm-apdp/storage/database/inmem"
)

func newTestService(t *testing.T) *student.Service {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed, %v", err)
	}
	return student.NewService(inmemdb.NewStudentRepository(db))
}

func enroll(t *testing.T, svc *student.Service, email, phone string, classRoomID null.Int) student.Student {
	t.Helper()

	std, err := svc.Create(context.Background(), student.NewStudent{
		FullName:    "Test Student",
		Email:       email,
		Phone:       phone,
		ClassRoomID: classRoomID,
	}, null.Int{})
	if err != nil {
		t.Fatalf("Create() failed, %v", err)
	}
	return std
}

func TestService_CheckClassUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	classA := null.IntFrom(1)
	classB := null.IntFrom(2)
	std := enroll(t, svc, "awe@test.cd", "0123456789", classA)

	tests := []struct {
		name      string
		email     string
		phone     string
		class     null.Int
		excl      []student.Student
		wantField string
	}{
		{name: "email clash in same class", email: "awe@test.cd", phone: "9876543210", class: classA, wantField: "email"},
		{name: "phone clash in same class", email: "lol@test.cd", phone: "0123456789", class: classA, wantField: "phone"},
		{name: "same email in another class is fine", email: "awe@test.cd", phone: "9876543210", class: classB},
		{name: "same phone in another class is fine", email: "lol@test.cd", phone: "0123456789", class: classB},
		{name: "no classroom is its own scope", email: "awe@test.cd", phone: "0123456789", class: null.Int{}},
		{name: "editing yourself is not a clash", email: "awe@test.cd", phone: "0123456789", class: classA, excl: []student.Student{std}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckClassUniqueness(ctx, tt.email, tt.phone, tt.class, tt.excl...)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *core.ValidationError
			if assert.ErrorAs(t, err, &vErr) {
				assert.Equal(t, tt.wantField, vErr.Fields[0].Field)
			}
		})
	}

	t.Run("soft-deleted classmate frees the identity", func(t *testing.T) {
		if err := svc.Delete(ctx, std.ID); err != nil {
			t.Fatalf("Delete() failed, %v", err)
		}
		assert.NoError(t, svc.CheckClassUniqueness(ctx, "awe@test.cd", "0123456789", classA))
	})
}

func TestService_AssignClassRoom(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	classA := null.IntFrom(1)
	classB := null.IntFrom(2)
	std := enroll(t, svc, "awe@test.cd", "0123456789", classA)
	enroll(t, svc, "awe@test.cd", "5550001111", classB)

	// the target class holds a live student with the same email
	_, err := svc.AssignClassRoom(ctx, std.ID, 2)
	var vErr *core.ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		assert.Equal(t, "email", vErr.Fields[0].Field)
	}

	// moving within the same class excludes the record itself
	moved, err := svc.AssignClassRoom(ctx, std.ID, 1)
	assert.NoError(t, err)
	assert.Equal(t, classA, moved.ClassRoomID)

	// a free class accepts the student
	free, err := svc.AssignClassRoom(ctx, std.ID, 3)
	assert.NoError(t, err)
	assert.Equal(t, null.IntFrom(3), free.ClassRoomID)
	assert.True(t, free.UpdatedAt.Valid)
}

func TestService_Update(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	std := enroll(t, svc, "awe@test.cd", "0123456789", null.IntFrom(1))

	upd := student.UpdateStudent{
		FullName:    "Renamed Student",
		Email:       "new@test.cd",
		Phone:       std.Phone,
		ClassRoomID: std.ClassRoomID,
		CourseID:    null.IntFrom(7),
	}
	got, err := svc.Update(ctx, std.ID, upd)
	assert.NoError(t, err)
	assert.Equal(t, "Renamed Student", got.FullName)
	assert.Equal(t, "new@test.cd", got.Email)
	assert.Equal(t, null.IntFrom(7), got.CourseID)
	assert.Equal(t, core.StatusActive, got.Status)

	_, err = svc.Update(ctx, 999, upd)
	assert.Equal(t, student.ErrNotFound, errors.Cause(err))
}
