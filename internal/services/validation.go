package services

import (
	"strings"
	"unicode/utf8"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/pkg/models"
)

const MaxTaskNameLength = 20

// ValidateTask checks the fields every persisted task must carry. It
// returns nil when the task is valid.
func ValidateTask(task *model.Task) *apperrors.ValidationError {
	ve := &apperrors.ValidationError{}

	name := strings.TrimSpace(task.Name)
	switch {
	case name == "":
		ve.Add("name", "name is required")
	case utf8.RuneCountInString(name) > MaxTaskNameLength:
		ve.Add("name", "name must be at most 20 characters")
	}

	if strings.TrimSpace(task.Status) == "" {
		ve.Add("status", "status is required")
	}

	if !ve.HasViolations() {
		return nil
	}
	return ve
}
