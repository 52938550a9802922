package errors

import (
	"fmt"
	"strings"
)

// Violation is a single failed constraint on one field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found on a task, in field order.
type ValidationError struct {
	Violations []Violation `json:"violations"`
}

func (ve *ValidationError) Error() string {
	if len(ve.Violations) == 0 {
		return "validation failed"
	}

	messages := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		messages = append(messages, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

func (ve *ValidationError) Add(field, message string) {
	ve.Violations = append(ve.Violations, Violation{Field: field, Message: message})
}

func (ve *ValidationError) HasViolations() bool {
	return ve != nil && len(ve.Violations) > 0
}

// Field returns the messages recorded for field, used by the form templates.
func (ve *ValidationError) Field(field string) []string {
	if ve == nil {
		return nil
	}

	var messages []string
	for _, v := range ve.Violations {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Merge appends other's violations; a nil other is ignored.
func (ve *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	ve.Violations = append(ve.Violations, other.Violations...)
}
