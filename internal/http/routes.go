package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "task-manager.com/task-manager/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Limit:  rateLimitPerMinute,
		Window: time.Minute,
		Skip:   func(c echo.Context) bool { return c.Path() == "/health" },
	}))

	e.GET("/", h.Home)
	e.GET("/health", h.Health)

	tasks := e.Group("/tasks")
	tasks.GET("/", h.Home)
	tasks.GET("/list", h.ShowTaskList)
	tasks.GET("/add", h.ShowAddForm)
	tasks.POST("/add", h.AddTask)
	tasks.GET("/edit/:id", h.ShowEditForm)
	tasks.POST("/edit", h.UpdateTask)
	tasks.POST("/delete", h.DeleteTask)

	api := e.Group("/api")
	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/:id", h.GetTask)
}
