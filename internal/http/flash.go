package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"task-manager.com/task-manager/internal/flash"
)

const flashCookie = "flash_id"

// Flasher carries one-shot messages across a redirect. The message lives in
// the flash store; the browser only holds its id in a cookie.
type Flasher struct {
	store  flash.Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewFlasher(store flash.Store, ttl time.Duration, logger *slog.Logger) *Flasher {
	return &Flasher{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (f *Flasher) Success(c echo.Context, message string) {
	f.put(c, flash.Message{Success: message})
}

func (f *Flasher) Error(c echo.Context, message string) {
	f.put(c, flash.Message{Error: message})
}

func (f *Flasher) put(c echo.Context, msg flash.Message) {
	id := uuid.NewString()
	if err := f.store.Put(c.Request().Context(), id, msg); err != nil {
		f.logger.WarnContext(c.Request().Context(), "failed to store flash message", slog.Any("error", err))
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(f.ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Consume returns the pending message, if any, and clears the cookie.
func (f *Flasher) Consume(c echo.Context) flash.Message {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return flash.Message{}
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	msg, ok, err := f.store.Pop(c.Request().Context(), cookie.Value)
	if err != nil {
		f.logger.WarnContext(c.Request().Context(), "failed to read flash message", slog.Any("error", err))
		return flash.Message{}
	}
	if !ok {
		return flash.Message{}
	}
	return msg
}
