package services

import (
	"context"
	"time"

	model "task-manager.com/task-manager/pkg/models"
)

// TaskStore is the persistence contract the task service relies on.
// FindByID reports a missing task with errors.ErrTaskNotFound. The write
// methods return the number of affected rows.
type TaskStore interface {
	FindByID(ctx context.Context, id int) (*model.Task, error)
	FindAll(ctx context.Context) ([]model.Task, error)
	FindByStatus(ctx context.Context, status string) ([]model.Task, error)
	Insert(ctx context.Context, task *model.Task) (int64, error)
	Update(ctx context.Context, task *model.Task) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

// Clock supplies the current calendar date.
type Clock interface {
	Today() time.Time
}
