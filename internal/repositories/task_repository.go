package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	apperrors "task-manager.com/task-manager/internal/errors"
	model "task-manager.com/task-manager/pkg/models"
)

var tracer = otel.Tracer("task-manager.com/task-manager/internal/repositories")

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) FindByID(ctx context.Context, id int) (*model.Task, error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.FindByID",
		trace.WithAttributes(attribute.Int("task.id", id)),
	)
	defer span.End()

	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetAttributes(attribute.Bool("task.found", false))
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.Bool("task.found", true))
	return &task, nil
}

func (r *TaskRepository) FindAll(ctx context.Context) ([]model.Task, error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.FindAll")
	defer span.End()

	var tasks []model.Task
	if err := r.db.WithContext(ctx).Order("id asc").Find(&tasks).Error; err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.Int("task.count", len(tasks)))
	return tasks, nil
}

func (r *TaskRepository) FindByStatus(ctx context.Context, status string) ([]model.Task, error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.FindByStatus",
		trace.WithAttributes(attribute.String("task.status", status)),
	)
	defer span.End()

	var tasks []model.Task
	query := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id asc")

	if err := query.Find(&tasks).Error; err != nil {
		return nil, recordError(span, err)
	}

	span.SetAttributes(attribute.Int("task.count", len(tasks)))
	return tasks, nil
}

// Insert stores a new task and writes the generated id back into task.
func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) (int64, error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.Insert",
		trace.WithAttributes(attribute.String("task.status", task.Status)),
	)
	defer span.End()

	task.ID = 0
	task.Version = 1

	res := r.db.WithContext(ctx).Create(task)
	if res.Error != nil {
		return 0, recordError(span, res.Error)
	}

	span.SetAttributes(attribute.Int("task.id", task.ID))
	return res.RowsAffected, nil
}

// Update writes every mutable column of task, guarded by its version. A
// stale version affects no rows. On success task.Version is advanced.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) (int64, error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.Update",
		trace.WithAttributes(
			attribute.Int("task.id", task.ID),
			attribute.Int64("task.version", int64(task.Version)),
		),
	)
	defer span.End()

	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"name":       task.Name,
			"status":     task.Status,
			"start_date": task.StartDate,
			"end_date":   task.EndDate,
			"version":    gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return 0, recordError(span, res.Error)
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", res.RowsAffected))
	if res.RowsAffected > 0 {
		task.Version++
	}
	return res.RowsAffected, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int) (int64, error) {
	ctx, span := tracer.Start(ctx, "TaskRepository.Delete",
		trace.WithAttributes(attribute.Int("task.id", id)),
	)
	defer span.End()

	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return 0, recordError(span, res.Error)
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", res.RowsAffected))
	return res.RowsAffected, nil
}

// Count backs the tasks_total gauge.
func (r *TaskRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Count(&count).Error
	return count, err
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
