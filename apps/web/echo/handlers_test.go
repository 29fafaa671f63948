package echoapp

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/duy-ank/asm-apdp/core/student"
)

func Test_categoryLifecycle(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginAdmin(t)

	rec := env.request(t, http.MethodPost, "/categories", echo.Map{"name": "Math"}, cookies...)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var cat struct {
		ID int `json:"id"`
	}
	decodeBody(t, rec, &cat)

	start := time.Now().UTC()
	rec = env.request(t, http.MethodPost, "/courses", echo.Map{
		"name":          "Algebra",
		"category_name": "Math",
		"start_date":    start,
		"end_date":      start.AddDate(0, 3, 0),
	}, cookies...)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var crs struct {
		ID         int `json:"id"`
		CategoryID int `json:"category_id"`
	}
	decodeBody(t, rec, &crs)
	assert.Equal(t, cat.ID, crs.CategoryID)

	// a referenced category cannot be deleted
	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/categories/%d", cat.ID), nil, cookies...)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// dropping the course lifts the guard
	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/courses/%d", crs.ID), nil, cookies...)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = env.request(t, http.MethodDelete, fmt.Sprintf("/categories/%d", cat.ID), nil, cookies...)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.request(t, http.MethodGet, fmt.Sprintf("/categories/%d", cat.ID), nil, cookies...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_courseCreate_unknownCategory(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginAdmin(t)

	start := time.Now().UTC()
	rec := env.request(t, http.MethodPost, "/courses", echo.Map{
		"name":          "Potions",
		"category_name": "Magic",
		"start_date":    start,
		"end_date":      start.AddDate(0, 3, 0),
	}, cookies...)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var fldErrs map[string]string
	decodeBody(t, rec, &fldErrs)
	assert.Contains(t, fldErrs, "category_name")
}

func Test_studentCreate(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginAdmin(t)

	rec := env.request(t, http.MethodPost, "/classrooms", echo.Map{"name": "C0122", "capacity": 30}, cookies...)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var cls struct {
		ID int `json:"id"`
	}
	decodeBody(t, rec, &cls)

	body := echo.Map{
		"full_name":    "Jane Doe",
		"email":        "jane@test.cd",
		"phone":        "0123456789",
		"classroom_id": cls.ID,
	}
	rec = env.request(t, http.MethodPost, "/students", body, cookies...)
	assert.Equal(t, http.StatusCreated, rec.Code)

	t.Run("duplicate email in the same class", func(t *testing.T) {
		dup := echo.Map{
			"full_name":    "Jane Imposter",
			"email":        "jane@test.cd",
			"phone":        "9876543210",
			"classroom_id": cls.ID,
		}
		rec := env.request(t, http.MethodPost, "/students", dup, cookies...)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var fldErrs map[string]string
		decodeBody(t, rec, &fldErrs)
		assert.Contains(t, fldErrs, "email")
	})

	t.Run("same email in another class", func(t *testing.T) {
		other := echo.Map{
			"full_name": "Jane Twin",
			"email":     "jane@test.cd",
			"phone":     "9876543210",
		}
		rec := env.request(t, http.MethodPost, "/students", other, cookies...)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("with a provisioned login", func(t *testing.T) {
		withAcct := echo.Map{
			"full_name":      "John Doe",
			"email":          "john@test.cd",
			"phone":          "5550001111",
			"classroom_id":   cls.ID,
			"create_account": true,
		}
		rec := env.request(t, http.MethodPost, "/students", withAcct, cookies...)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var res struct {
			Student  student.Student `json:"student"`
			Password string          `json:"password"`
		}
		decodeBody(t, rec, &res)
		assert.NotEmpty(t, res.Password)
		assert.True(t, res.Student.AccountID.Valid)

		// the one-time password works
		env.login(t, "john@test.cd", res.Password)
	})
}

func Test_classRoomDetails(t *testing.T) {
	env := newTestEnv(t)
	cookies := env.loginAdmin(t)

	rec := env.request(t, http.MethodPost, "/classrooms", echo.Map{"name": "C0122", "capacity": 30}, cookies...)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var cls struct {
		ID int `json:"id"`
	}
	decodeBody(t, rec, &cls)

	// an unassigned student to move into the class
	rec = env.request(t, http.MethodPost, "/students", echo.Map{
		"full_name": "Jane Doe",
		"email":     "jane@test.cd",
		"phone":     "0123456789",
	}, cookies...)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var std struct {
		ID int `json:"id"`
	}
	decodeBody(t, rec, &std)

	rec = env.request(t, http.MethodPost, fmt.Sprintf("/classrooms/%d/students", cls.ID),
		echo.Map{"student_id": std.ID}, cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.request(t, http.MethodGet, fmt.Sprintf("/classrooms/%d", cls.ID), nil, cookies...)
	assert.Equal(t, http.StatusOK, rec.Code)

	var details struct {
		ClassRoom struct {
			Name string `json:"name"`
		} `json:"classroom"`
		Students []student.Student `json:"students"`
	}
	decodeBody(t, rec, &details)
	assert.Equal(t, "C0122", details.ClassRoom.Name)
	if assert.Len(t, details.Students, 1) {
		assert.Equal(t, std.ID, details.Students[0].ID)
	}

	t.Run("adding to a missing classroom", func(t *testing.T) {
		rec := env.request(t, http.MethodPost, "/classrooms/999/students",
			echo.Map{"student_id": std.ID}, cookies...)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
