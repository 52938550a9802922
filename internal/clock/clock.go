package clock

import (
	"time"

	model "task-manager.com/task-manager/pkg/models"
)

// System reads the wall clock. Today is evaluated in Location, so a task
// created just after midnight in Asia/Tokyo gets the Tokyo date.
type System struct {
	Location *time.Location
}

func NewSystem(loc *time.Location) System {
	if loc == nil {
		loc = time.UTC
	}
	return System{Location: loc}
}

func (s System) Today() time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return model.DateOf(time.Now().In(loc))
}

// Fixed always reports the same date.
type Fixed struct {
	Date time.Time
}

func NewFixed(year int, month time.Month, day int) Fixed {
	return Fixed{Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (f Fixed) Today() time.Time {
	return model.DateOf(f.Date)
}
