package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Tomlord1122/dayplanner-backend/internal/service"
)

// HealthChecker reports store health; database.Service satisfies it.
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Todos          service.TodoService
	Categories     service.CategoryService
	Rollover       service.RolloverService
	Dashboard      service.DashboardService
	Health         HealthChecker
	Logger         *slog.Logger
	AllowedOrigins []string
	// Today returns the current calendar date as YYYY-MM-DD.
	Today func() string
}

type Server struct {
	deps Dependencies
}

func newServer(deps Dependencies) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Server{deps: deps}
}

func NewServer(port int, deps Dependencies) *http.Server {
	appServer := newServer(deps)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      appServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(deps.Logger.Handler(), slog.LevelError),
	}
}
