package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.deps.Logger))
	r.Use(middleware.Recoverer)

	origins := s.deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"https://*", "http://*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.healthHandler)
		r.Get("/dashboard", s.dashboardHandler)

		r.Route("/todos", func(r chi.Router) {
			r.Get("/", s.listTodosHandler)
			r.Post("/", s.createTodoHandler)
			r.Post("/migrate", s.migrateTodosHandler)
			r.Get("/migrations", s.listMigrationsHandler)
			r.Get("/{id}", s.getTodoHandler)
			r.Put("/{id}", s.updateTodoHandler)
			r.Patch("/{id}", s.updateTodoHandler)
			r.Delete("/{id}", s.deleteTodoHandler)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", s.listCategoriesHandler)
			r.Post("/", s.createCategoryHandler)
			r.Put("/{id}", s.updateCategoryHandler)
			r.Patch("/{id}", s.updateCategoryHandler)
			r.Delete("/{id}", s.deleteCategoryHandler)
		})
	})

	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if s.deps.Health == nil {
		respondWithData(w, http.StatusOK, map[string]string{"status": "up"})
		return
	}
	healthStats := s.deps.Health.Health(r.Context())
	if status, ok := healthStats["status"]; ok && status == "down" {
		respondWithJSON(w, http.StatusServiceUnavailable, APIResponse{Success: false, Data: healthStats, Error: "database unavailable"})
		return
	}
	respondWithData(w, http.StatusOK, healthStats)
}
