package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindNone},
		{name: "not found", err: ErrTaskNotFound, want: KindNotFound},
		{name: "wrapped not found", err: fmt.Errorf("update: %w", ErrTaskNotFound), want: KindNotFound},
		{name: "persistence", err: ErrPersistenceFailed, want: KindPersistence},
		{name: "validation", err: &ValidationError{Violations: []Violation{{Field: "name", Message: "required"}}}, want: KindValidation},
		{name: "port", err: errors.New("disk I/O error"), want: KindPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrTaskNotFound))
	assert.Equal(t, http.StatusConflict, StatusCode(ErrPersistenceFailed))
	assert.Equal(t, http.StatusBadRequest, StatusCode(ErrTaskIDRequired))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusCode(&ValidationError{}))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestValidationError(t *testing.T) {
	ve := &ValidationError{}
	assert.False(t, ve.HasViolations())
	assert.Equal(t, "validation failed", ve.Error())

	ve.Add("name", "name is required")
	ve.Add("status", "status is required")
	ve.Add("name", "name must be at most 20 characters")

	assert.True(t, ve.HasViolations())
	assert.Equal(t, []string{"name is required", "name must be at most 20 characters"}, ve.Field("name"))
	assert.Equal(t, "validation failed: name: name is required; status: status is required; name: name must be at most 20 characters", ve.Error())

	other := &ValidationError{}
	other.Add("startDate", "invalid date")
	ve.Merge(other)
	ve.Merge(nil)
	assert.Len(t, ve.Violations, 4)

	var nilErr *ValidationError
	assert.False(t, nilErr.HasViolations())
	assert.Nil(t, nilErr.Field("name"))
}
