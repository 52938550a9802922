package validators

import (
	"strconv"
	"strings"
	"time"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/pkg/models"
)

// ParseTaskForm converts a submitted form into a task. It only reports
// values that cannot be parsed; business rules belong to the task service.
// requireID is set for the edit form.
func ParseTaskForm(form *dto.TaskForm, requireID bool) (*model.Task, *apperrors.ValidationError) {
	ve := &apperrors.ValidationError{}
	task := &model.Task{
		Name:   strings.TrimSpace(form.TaskName),
		Status: strings.TrimSpace(form.TaskStatus),
	}

	if requireID {
		id, err := ParseTaskID(form.TaskID)
		if err != nil {
			ve.Add("taskId", apperrors.ErrTaskIDRequired.Message)
		}
		task.ID = id
	}

	if v := strings.TrimSpace(form.Version); v != "" {
		version, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			ve.Add("version", "version must be a positive integer")
		}
		task.Version = uint(version)
	}

	task.StartDate = parseDate(ve, "startDate", form.StartDate)
	task.EndDate = parseDate(ve, "endDate", form.EndDate)

	if ve.HasViolations() {
		return task, ve
	}
	return task, nil
}

// ParseTaskID accepts positive decimal ids only.
func ParseTaskID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, apperrors.ErrTaskIDRequired
	}
	return id, nil
}

func parseDate(ve *apperrors.ValidationError, field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	d, err := time.Parse(dto.DateLayout, raw)
	if err != nil {
		ve.Add(field, "date must be in YYYY-MM-DD format")
		return nil
	}
	return &d
}
