package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
	"github.com/Tomlord1122/dayplanner-backend/internal/repository"
)

// CreateTodoRequest holds the data needed to create a new todo.
// Empty optional strings are stored as NULL.
type CreateTodoRequest struct {
	Title            string `json:"title"`
	CategoryID       *uint  `json:"category_id,omitempty"`
	ScheduledDate    string `json:"scheduled_date,omitempty"`
	Color            string `json:"color,omitempty"`
	RecurringPattern string `json:"recurring_pattern,omitempty"`
}

// UpdateTodoRequest holds a partial update. Pointer fields are applied when
// non-nil; Optional fields are applied when Set and may clear the column with null.
type UpdateTodoRequest struct {
	Title            *string                 `json:"title"`
	Completed        *bool                   `json:"completed"`
	CategoryID       domain.Optional[uint]   `json:"category_id"`
	ScheduledDate    domain.Optional[string] `json:"scheduled_date"`
	SortOrder        *int                    `json:"sort_order"`
	Color            domain.Optional[string] `json:"color"`
	RecurringPattern domain.Optional[string] `json:"recurring_pattern"`
	ParentID         domain.Optional[uint]   `json:"parent_id"`
}

// TodoService defines the operations for managing todos.
type TodoService interface {
	CreateTodo(ctx context.Context, req CreateTodoRequest) (*domain.Todo, error)
	GetTodo(ctx context.Context, id uint) (*domain.TodoView, error)
	// ListTodos returns the todos scheduled on date, or all todos when date is empty.
	ListTodos(ctx context.Context, date string) ([]domain.TodoView, error)
	UpdateTodo(ctx context.Context, id uint, req UpdateTodoRequest) error
	DeleteTodo(ctx context.Context, id uint) error
}

type todoService struct {
	repo   repository.TodoRepository
	logger *slog.Logger
}

func NewTodoService(repo repository.TodoRepository, logger *slog.Logger) TodoService {
	return &todoService{repo: repo, logger: logger}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func validateRecurring(p string) error {
	if p != "" && !domain.RecurringPattern(p).IsValid() {
		return invalid("recurring_pattern must be one of daily, weekly, monthly, yearly")
	}
	return nil
}

func (s *todoService) CreateTodo(ctx context.Context, req CreateTodoRequest) (*domain.Todo, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, invalid("title cannot be empty")
	}
	if req.ScheduledDate != "" && !domain.ValidDate(req.ScheduledDate) {
		return nil, invalid("scheduled_date %q is not a valid YYYY-MM-DD date", req.ScheduledDate)
	}
	if err := validateRecurring(req.RecurringPattern); err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		Title:            req.Title,
		CategoryID:       req.CategoryID,
		ScheduledDate:    nullIfEmpty(req.ScheduledDate),
		Color:            nullIfEmpty(req.Color),
		RecurringPattern: nullIfEmpty(req.RecurringPattern),
	}

	if err := s.repo.Create(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, invalid("category_id refers to a missing category")
		}
		return nil, storeError("create todo", err)
	}

	s.logger.Debug("todo created", "todo_id", todo.ID, "scheduled_date", req.ScheduledDate)
	return todo, nil
}

func (s *todoService) GetTodo(ctx context.Context, id uint) (*domain.TodoView, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeError("get todo", err)
	}
	return todo, nil
}

func (s *todoService) ListTodos(ctx context.Context, date string) ([]domain.TodoView, error) {
	var filter *string
	if date != "" {
		if !domain.ValidDate(date) {
			return nil, invalid("date %q is not a valid YYYY-MM-DD date", date)
		}
		filter = &date
	}

	todos, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError("list todos", err)
	}
	return todos, nil
}

// updateFields validates req and converts it to column/value pairs.
func (req UpdateTodoRequest) updateFields() (map[string]any, error) {
	fields := map[string]any{}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, invalid("title cannot be empty")
		}
		fields["title"] = *req.Title
	}
	if req.Completed != nil {
		fields["completed"] = *req.Completed
	}
	if req.CategoryID.Set {
		if req.CategoryID.Valid {
			fields["category_id"] = req.CategoryID.Value
		} else {
			fields["category_id"] = nil
		}
	}
	if req.ScheduledDate.Set {
		if req.ScheduledDate.Valid && req.ScheduledDate.Value != "" {
			if !domain.ValidDate(req.ScheduledDate.Value) {
				return nil, invalid("scheduled_date %q is not a valid YYYY-MM-DD date", req.ScheduledDate.Value)
			}
			fields["scheduled_date"] = req.ScheduledDate.Value
		} else {
			fields["scheduled_date"] = nil
		}
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if req.Color.Set {
		if req.Color.Valid && req.Color.Value != "" {
			fields["color"] = req.Color.Value
		} else {
			fields["color"] = nil
		}
	}
	if req.RecurringPattern.Set {
		if req.RecurringPattern.Valid && req.RecurringPattern.Value != "" {
			if err := validateRecurring(req.RecurringPattern.Value); err != nil {
				return nil, err
			}
			fields["recurring_pattern"] = req.RecurringPattern.Value
		} else {
			fields["recurring_pattern"] = nil
		}
	}
	if req.ParentID.Set {
		if req.ParentID.Valid {
			fields["parent_id"] = req.ParentID.Value
		} else {
			fields["parent_id"] = nil
		}
	}

	if len(fields) == 0 {
		return nil, invalid("no fields to update")
	}
	return fields, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, id uint, req UpdateTodoRequest) error {
	fields, err := req.updateFields()
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrNotFound
		case errors.Is(err, repository.ErrInvalidReference):
			return invalid("category_id or parent_id refers to a missing row")
		}
		return storeError("update todo", err)
	}
	return nil
}

func (s *todoService) DeleteTodo(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return storeError("delete todo", err)
	}
	s.logger.Debug("todo deleted", "todo_id", id)
	return nil
}
