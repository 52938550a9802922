package errors

import "net/http"

// ErrPersistenceFailed is returned when the store accepted a write but
// reported no affected rows, e.g. the task was deleted or its version
// moved on between the existence check and the write.
var ErrPersistenceFailed = &Exception{
	Kind:       KindPersistence,
	Message:    "task was not persisted",
	StatusCode: http.StatusConflict,
}
