package flash

import (
	"context"
	"errors"
)

// Message is a one-shot notice shown on the next rendered page.
type Message struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (m Message) IsEmpty() bool {
	return m.Success == "" && m.Error == ""
}

// Store keeps flash messages between a redirect and the page it lands on.
// Pop removes the message so it is shown once.
type Store interface {
	Put(ctx context.Context, id string, msg Message) error

	Pop(ctx context.Context, id string) (Message, bool, error)
}

var ErrEmptyID = errors.New("flash id must not be empty")
