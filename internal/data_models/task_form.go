package dto

import (
	"strconv"
	"time"

	model "task-manager.com/task-manager/pkg/models"
)

const DateLayout = "2006-01-02"

// TaskForm mirrors the fields of the add and edit forms. Values stay raw
// strings so a rejected submission can be shown back unchanged.
type TaskForm struct {
	TaskID     string `form:"taskId"`
	TaskName   string `form:"taskName"`
	TaskStatus string `form:"taskStatus"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Version    string `form:"version"`
}

func FormFromTask(task *model.Task) TaskForm {
	form := TaskForm{
		TaskName:   task.Name,
		TaskStatus: task.Status,
		StartDate:  formatDate(task.StartDate),
		EndDate:    formatDate(task.EndDate),
	}
	if task.ID != 0 {
		form.TaskID = strconv.Itoa(task.ID)
	}
	if task.Version != 0 {
		form.Version = strconv.FormatUint(uint64(task.Version), 10)
	}
	return form
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}
