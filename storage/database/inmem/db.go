package inmemdb

import (
	"sync"

	"github.com/duy-ank/asm-apdp/core/account"
	"github.com/duy-ank/asm-apdp/core/category"
	"github.com/duy-ank/asm-apdp/core/classroom"
	"github.com/duy-ank/asm-apdp/core/course"
	"github.com/duy-ank/asm-apdp/core/student"
	"github.com/duy-ank/asm-apdp/core/teacher"
)

// DB is an in-memory store used by tests in place of postgres. Each table is
// guarded by its own RWMutex; ids are assigned from a per-table counter.
type (
	DB struct {
		account   *accountTable
		category  *categoryTable
		course    *courseTable
		student   *studentTable
		classRoom *classRoomTable
		teacher   *teacherTable
	}

	accountTable struct {
		t     map[int]*account.Account
		pk    int
		mutex sync.RWMutex
	}

	categoryTable struct {
		t     map[int]*category.Category
		pk    int
		mutex sync.RWMutex
	}

	courseTable struct {
		t     map[int]*course.Course
		pk    int
		mutex sync.RWMutex
	}

	studentTable struct {
		t     map[int]*student.Student
		pk    int
		mutex sync.RWMutex
	}

	classRoomTable struct {
		t     map[int]*classroom.ClassRoom
		pk    int
		mutex sync.RWMutex
	}

	teacherTable struct {
		t     map[int]*teacher.Teacher
		pk    int
		mutex sync.RWMutex
	}
)

func Open() (*DB, error) {
	db := &DB{
		account:   &accountTable{t: make(map[int]*account.Account)},
		category:  &categoryTable{t: make(map[int]*category.Category)},
		course:    &courseTable{t: make(map[int]*course.Course)},
		student:   &studentTable{t: make(map[int]*student.Student)},
		classRoom: &classRoomTable{t: make(map[int]*classroom.ClassRoom)},
		teacher:   &teacherTable{t: make(map[int]*teacher.Teacher)},
	}
	return db, nil
}
