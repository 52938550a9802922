package model

import (
	"time"
)

// Task is a single persisted task. An ID of 0 means the task has not been
// stored yet. StartDate and EndDate hold calendar dates at midnight UTC.
type Task struct {
	ID        int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string     `gorm:"size:20;not null" json:"name"`
	Status    string     `gorm:"type:varchar(20);not null;index" json:"status"`
	StartDate *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate   *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Version   uint       `gorm:"not null;default:1" json:"version"`
}

func (Task) TableName() string {
	return "tasks"
}

// DateOf truncates t to its calendar date in t's location and returns it
// as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
