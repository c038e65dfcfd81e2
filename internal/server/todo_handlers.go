package server

import (
	"net/http"
	"strconv"

	"github.com/Tomlord1122/dayplanner-backend/internal/service"
)

func (s *Server) createTodoHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := s.deps.Todos.CreateTodo(r.Context(), req)
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to create todo")
		return
	}
	respondWithJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Message: "Todo created successfully",
		Data:    idResponse{ID: todo.ID},
	})
}

func (s *Server) listTodosHandler(w http.ResponseWriter, r *http.Request) {
	todos, err := s.deps.Todos.ListTodos(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to retrieve todos")
		return
	}
	respondWithData(w, http.StatusOK, todos)
}

func (s *Server) getTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID provided")
		return
	}

	todo, err := s.deps.Todos.GetTodo(r.Context(), id)
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to retrieve todo")
		return
	}
	respondWithData(w, http.StatusOK, todo)
}

func (s *Server) updateTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID provided")
		return
	}

	var req service.UpdateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.deps.Todos.UpdateTodo(r.Context(), id, req); err != nil {
		s.respondWithServiceError(w, r, err, "Failed to update todo")
		return
	}
	respondWithMessage(w, http.StatusOK, "Todo updated successfully")
}

func (s *Server) deleteTodoHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid todo ID provided")
		return
	}

	if err := s.deps.Todos.DeleteTodo(r.Context(), id); err != nil {
		s.respondWithServiceError(w, r, err, "Failed to delete todo")
		return
	}
	respondWithMessage(w, http.StatusOK, "Todo deleted successfully")
}

func (s *Server) migrateTodosHandler(w http.ResponseWriter, r *http.Request) {
	result, err := s.deps.Rollover.RunRollover(r.Context(), s.deps.Today())
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to migrate todos")
		return
	}
	respondWithJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Message: "Migrated " + strconv.Itoa(result.MigratedCount) + " todos to today",
		Data:    result,
	})
}

func (s *Server) listMigrationsHandler(w http.ResponseWriter, r *http.Request) {
	var todoID *uint
	if raw := r.URL.Query().Get("todo_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid todo_id provided")
			return
		}
		v := uint(id)
		todoID = &v
	}

	migrations, err := s.deps.Rollover.ListMigrations(r.Context(), todoID)
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to list migrations")
		return
	}
	respondWithData(w, http.StatusOK, migrations)
}

func (s *Server) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	// A malformed offset falls back to the current week.
	weekOffset, err := strconv.Atoi(r.URL.Query().Get("weekOffset"))
	if err != nil {
		weekOffset = 0
	}

	snapshot, err := s.deps.Dashboard.BuildDashboard(r.Context(), weekOffset, s.deps.Today())
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to load dashboard")
		return
	}
	respondWithData(w, http.StatusOK, snapshot)
}
