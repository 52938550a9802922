package services

import (
	"context"
	"errors"
	"fmt"

	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/pkg/constants"
	model "task-manager.com/task-manager/pkg/models"
)

type TaskService struct {
	store            TaskStore
	clock            Clock
	completionStatus string
}

type TaskServiceOption func(*TaskService)

// WithCompletionStatus replaces the status value that marks a task as
// finished. Empty values are ignored.
func WithCompletionStatus(status string) TaskServiceOption {
	return func(s *TaskService) {
		if status != "" {
			s.completionStatus = status
		}
	}
}

func NewTaskService(store TaskStore, clock Clock, opts ...TaskServiceOption) *TaskService {
	s := &TaskService{
		store:            store,
		clock:            clock,
		completionStatus: constants.StatusDone,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *TaskService) CompletionStatus() string {
	return s.completionStatus
}

func (s *TaskService) GetTask(ctx context.Context, id int) (*model.Task, error) {
	return s.store.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.store.FindAll(ctx)
}

func (s *TaskService) ListTasksByStatus(ctx context.Context, status string) ([]model.Task, error) {
	return s.store.FindByStatus(ctx, status)
}

// CreateTask validates task, fills in a missing start date and inserts it.
// The start date default is written back into task.
func (s *TaskService) CreateTask(ctx context.Context, task *model.Task) error {
	if ve := ValidateTask(task); ve != nil {
		return ve
	}

	if task.StartDate == nil {
		today := s.clock.Today()
		task.StartDate = &today
	}

	rows, err := s.store.Insert(ctx, task)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	return requireAffected(rows)
}

// UpdateTask validates task, checks that it still exists and stamps the end
// date when the task moves to the completion status without one. A zero
// Version takes the stored one, so only a version sent by the caller guards
// against concurrent edits.
func (s *TaskService) UpdateTask(ctx context.Context, task *model.Task) error {
	if ve := ValidateTask(task); ve != nil {
		return ve
	}

	existing, err := s.ensureExists(ctx, task.ID)
	if err != nil {
		return err
	}

	if task.Version == 0 {
		task.Version = existing.Version
	}

	if task.Status == s.completionStatus && task.EndDate == nil {
		today := s.clock.Today()
		task.EndDate = &today
	}

	rows, err := s.store.Update(ctx, task)
	if err != nil {
		return fmt.Errorf("update task %d: %w", task.ID, err)
	}

	return requireAffected(rows)
}

func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	if _, err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	rows, err := s.store.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	return requireAffected(rows)
}

func (s *TaskService) ensureExists(ctx context.Context, id int) (*model.Task, error) {
	if id == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}

	return existing, nil
}

func requireAffected(rows int64) error {
	if rows == 0 {
		return apperrors.ErrPersistenceFailed
	}
	return nil
}
