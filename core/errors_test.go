package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	sentinel := errors.New("this email is already registered")
	err := NewValidationError(sentinel, FieldError{Field: "email", Error: sentinel.Error()})

	vErr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("NewValidationError() = %T, want *ValidationError", err)
	}
	assert.Equal(t, sentinel.Error(), vErr.Error())
	assert.ErrorIs(t, err, sentinel)
	if assert.Len(t, vErr.Fields, 1) {
		assert.Equal(t, "email", vErr.Fields[0].Field)
	}

	assert.Empty(t, (&ValidationError{}).Error())
}

func TestIsShutdown(t *testing.T) {
	err := NewShutdownError("database gone")
	assert.True(t, IsShutdown(err))
	assert.True(t, IsShutdown(errors.Wrap(err, "handling request")))
	assert.False(t, IsShutdown(errors.New("database gone")))
}
