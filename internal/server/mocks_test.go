package server

import (
	"context"
	"io"
	"log/slog"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
	"github.com/Tomlord1122/dayplanner-backend/internal/service"
)

type mockTodoService struct {
	createFn func(ctx context.Context, req service.CreateTodoRequest) (*domain.Todo, error)
	getFn    func(ctx context.Context, id uint) (*domain.TodoView, error)
	listFn   func(ctx context.Context, date string) ([]domain.TodoView, error)
	updateFn func(ctx context.Context, id uint, req service.UpdateTodoRequest) error
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockTodoService) CreateTodo(ctx context.Context, req service.CreateTodoRequest) (*domain.Todo, error) {
	return m.createFn(ctx, req)
}
func (m *mockTodoService) GetTodo(ctx context.Context, id uint) (*domain.TodoView, error) {
	return m.getFn(ctx, id)
}
func (m *mockTodoService) ListTodos(ctx context.Context, date string) ([]domain.TodoView, error) {
	return m.listFn(ctx, date)
}
func (m *mockTodoService) UpdateTodo(ctx context.Context, id uint, req service.UpdateTodoRequest) error {
	return m.updateFn(ctx, id, req)
}
func (m *mockTodoService) DeleteTodo(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockCategoryService struct {
	createFn func(ctx context.Context, req service.CreateCategoryRequest) (*domain.Category, error)
	listFn   func(ctx context.Context) ([]domain.Category, error)
	updateFn func(ctx context.Context, id uint, req service.UpdateCategoryRequest) error
	deleteFn func(ctx context.Context, id uint) error
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, req service.CreateCategoryRequest) (*domain.Category, error) {
	return m.createFn(ctx, req)
}
func (m *mockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.listFn(ctx)
}
func (m *mockCategoryService) UpdateCategory(ctx context.Context, id uint, req service.UpdateCategoryRequest) error {
	return m.updateFn(ctx, id, req)
}
func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

type mockRolloverService struct {
	runFn  func(ctx context.Context, today string) (*service.RolloverResult, error)
	listFn func(ctx context.Context, todoID *uint) ([]domain.TodoMigration, error)
}

func (m *mockRolloverService) RunRollover(ctx context.Context, today string) (*service.RolloverResult, error) {
	return m.runFn(ctx, today)
}
func (m *mockRolloverService) ListMigrations(ctx context.Context, todoID *uint) ([]domain.TodoMigration, error) {
	return m.listFn(ctx, todoID)
}

type mockDashboardService struct {
	buildFn func(ctx context.Context, weekOffset int, today string) (*service.DashboardSnapshot, error)
}

func (m *mockDashboardService) BuildDashboard(ctx context.Context, weekOffset int, today string) (*service.DashboardSnapshot, error) {
	return m.buildFn(ctx, weekOffset, today)
}

type stubHealth map[string]string

func (h stubHealth) Health(context.Context) map[string]string { return h }

func testDeps() Dependencies {
	return Dependencies{
		Todos:      &mockTodoService{},
		Categories: &mockCategoryService{},
		Rollover:   &mockRolloverService{},
		Dashboard:  &mockDashboardService{},
		Health:     stubHealth{"status": "up"},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Today:      func() string { return "2025-03-14" },
	}
}
