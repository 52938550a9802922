package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	dto "task-manager.com/task-manager/internal/data_models"
	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/internal/http/validators"
	"task-manager.com/task-manager/internal/services"
	"task-manager.com/task-manager/pkg/constants"
	model "task-manager.com/task-manager/pkg/models"
)

const listPath = "/tasks/list"

const (
	msgCreated       = "Task created."
	msgUpdated       = "Task updated."
	msgDeleted       = "Task deleted."
	msgCreateFailed  = "The task could not be created."
	msgUpdateFailed  = "The task could not be updated."
	msgDeleteFailed  = "The task could not be deleted."
	msgNotFound      = "The task no longer exists."
	msgStaleEdit     = "The task was changed by someone else. Reload it and try again."
	msgLoadFailed    = "failed to load tasks"
	msgInvalidTaskID = "invalid task id"
)

type Handler struct {
	taskService *services.TaskService
	flash       *Flasher
	logger      *slog.Logger
}

func NewHandler(taskService *services.TaskService, flash *Flasher, logger *slog.Logger) *Handler {
	return &Handler{
		taskService: taskService,
		flash:       flash,
		logger:      logger,
	}
}

func (h *Handler) Home(c echo.Context) error {
	return c.Redirect(http.StatusFound, listPath)
}

func (h *Handler) ShowTaskList(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "failed to list tasks", slog.Any("error", err))
		return echo.NewHTTPError(http.StatusInternalServerError, msgLoadFailed)
	}

	return c.Render(http.StatusOK, "list", h.page("Tasks", func(p *PageData) {
		p.Tasks = tasks
		p.Flash = h.flash.Consume(c)
	}))
}

func (h *Handler) ShowAddForm(c echo.Context) error {
	return c.Render(http.StatusOK, "add", h.page("Add task", nil))
}

func (h *Handler) AddTask(c echo.Context) error {
	var form dto.TaskForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidForm.Message)
	}

	task, ve := validators.ParseTaskForm(&form, false)
	if ve != nil {
		ve.Merge(services.ValidateTask(task))
		return h.renderForm(c, "add", form, ve)
	}

	ctx := c.Request().Context()
	if err := h.taskService.CreateTask(ctx, task); err != nil {
		return h.renderForm(c, "add", form, h.describe(c, "create task", err, msgCreateFailed))
	}

	h.logger.InfoContext(ctx, "task created", slog.Int("id", task.ID))
	h.flash.Success(c, msgCreated)
	return c.Redirect(http.StatusSeeOther, listPath)
}

func (h *Handler) ShowEditForm(c echo.Context) error {
	id, err := validators.ParseTaskID(c.Param("id"))
	if err != nil {
		return c.Redirect(http.StatusFound, listPath)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTaskNotFound) {
			return c.Redirect(http.StatusFound, listPath)
		}
		h.logger.ErrorContext(c.Request().Context(), "failed to load task", slog.Int("id", id), slog.Any("error", err))
		return echo.NewHTTPError(http.StatusInternalServerError, msgLoadFailed)
	}

	return c.Render(http.StatusOK, "edit", h.page("Edit task", func(p *PageData) {
		p.Form = dto.FormFromTask(task)
	}))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var form dto.TaskForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidForm.Message)
	}

	task, ve := validators.ParseTaskForm(&form, true)
	if ve != nil {
		if task.ID == 0 {
			h.flash.Error(c, msgNotFound)
			return c.Redirect(http.StatusSeeOther, listPath)
		}
		ve.Merge(services.ValidateTask(task))
		return h.renderForm(c, "edit", form, ve)
	}

	ctx := c.Request().Context()
	err := h.taskService.UpdateTask(ctx, task)
	switch apperrors.KindOf(err) {
	case apperrors.KindNone:
		h.logger.InfoContext(ctx, "task updated", slog.Int("id", task.ID), slog.String("status", task.Status))
		h.flash.Success(c, msgUpdated)
		return c.Redirect(http.StatusSeeOther, listPath)
	case apperrors.KindNotFound:
		h.flash.Error(c, msgNotFound)
		return c.Redirect(http.StatusSeeOther, listPath)
	case apperrors.KindPersistence:
		return h.renderForm(c, "edit", form, h.describe(c, "update task", err, msgStaleEdit))
	default:
		return h.renderForm(c, "edit", form, h.describe(c, "update task", err, msgUpdateFailed))
	}
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := validators.ParseTaskID(c.FormValue("taskId"))
	if err != nil {
		h.flash.Error(c, msgDeleteFailed)
		return c.Redirect(http.StatusSeeOther, listPath)
	}

	ctx := c.Request().Context()
	if err := h.taskService.DeleteTask(ctx, id); err != nil {
		if apperrors.KindOf(err) == apperrors.KindPort {
			h.logger.ErrorContext(ctx, "failed to delete task", slog.Int("id", id), slog.Any("error", err))
		}
		h.flash.Error(c, msgDeleteFailed)
		return c.Redirect(http.StatusSeeOther, listPath)
	}

	h.logger.InfoContext(ctx, "task deleted", slog.Int("id", id))
	h.flash.Success(c, msgDeleted)
	return c.Redirect(http.StatusSeeOther, listPath)
}

func (h *Handler) ListTasks(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		tasks []model.Task
		err   error
	)
	if status := c.QueryParam("status"); status != "" {
		tasks, err = h.taskService.ListTasksByStatus(ctx, status)
	} else {
		tasks, err = h.taskService.ListTasks(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list tasks", slog.Any("error", err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list tasks")
	}

	if tasks == nil {
		tasks = []model.Task{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidTaskID)
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(apperrors.StatusCode(err), http.StatusText(apperrors.StatusCode(err)))
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) page(title string, fill func(*PageData)) PageData {
	p := PageData{
		Title:            title,
		Statuses:         constants.Statuses,
		CompletionStatus: h.taskService.CompletionStatus(),
	}
	if fill != nil {
		fill(&p)
	}
	return p
}

// renderForm shows a rejected submission again. err is either the
// violations to display or a message for the whole form.
func (h *Handler) renderForm(c echo.Context, name string, form dto.TaskForm, err error) error {
	title := "Add task"
	if name == "edit" {
		title = "Edit task"
	}

	return c.Render(apperrors.StatusCode(err), name, h.page(title, func(p *PageData) {
		p.Form = form
		var ve *apperrors.ValidationError
		if errors.As(err, &ve) {
			p.Errors = ve
		} else {
			p.Error = err.Error()
		}
	}))
}

// describe logs port failures and swaps everything except validation
// errors for a user-facing message with the same status code.
func (h *Handler) describe(c echo.Context, op string, err error, message string) error {
	if apperrors.KindOf(err) == apperrors.KindValidation {
		return err
	}

	if apperrors.KindOf(err) == apperrors.KindPort {
		h.logger.ErrorContext(c.Request().Context(), "failed to "+op, slog.Any("error", err))
	}

	return &apperrors.Exception{
		Kind:       apperrors.KindOf(err),
		Message:    message,
		StatusCode: apperrors.StatusCode(err),
	}
}
