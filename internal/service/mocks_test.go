package service_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
	"github.com/Tomlord1122/dayplanner-backend/internal/repository"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

// --- Mock Todo Repository ---

type mockTodoRepo struct {
	createFn   func(ctx context.Context, todo *domain.Todo) error
	findByIDFn func(ctx context.Context, id uint) (*domain.TodoView, error)
	listFn     func(ctx context.Context, date *string) ([]domain.TodoView, error)
	updateFn   func(ctx context.Context, id uint, fields map[string]any) error
	deleteFn   func(ctx context.Context, id uint) error
}

var _ repository.TodoRepository = (*mockTodoRepo)(nil)

func (m *mockTodoRepo) Create(ctx context.Context, todo *domain.Todo) error {
	return m.createFn(ctx, todo)
}
func (m *mockTodoRepo) FindByID(ctx context.Context, id uint) (*domain.TodoView, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockTodoRepo) List(ctx context.Context, date *string) ([]domain.TodoView, error) {
	return m.listFn(ctx, date)
}
func (m *mockTodoRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	return m.updateFn(ctx, id, fields)
}
func (m *mockTodoRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock Category Repository ---

type mockCategoryRepo struct {
	createFn func(ctx context.Context, category *domain.Category) error
	listFn   func(ctx context.Context) ([]domain.Category, error)
	updateFn func(ctx context.Context, id uint, fields map[string]any) error
	deleteFn func(ctx context.Context, id uint) (int64, error)
}

var _ repository.CategoryRepository = (*mockCategoryRepo)(nil)

func (m *mockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	return m.createFn(ctx, category)
}
func (m *mockCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	return m.listFn(ctx)
}
func (m *mockCategoryRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	return m.updateFn(ctx, id, fields)
}
func (m *mockCategoryRepo) Delete(ctx context.Context, id uint) (int64, error) {
	return m.deleteFn(ctx, id)
}

// --- Mock Rollover Repository ---

type mockRolloverRepo struct {
	migrateFn        func(ctx context.Context, today string, migratedAt time.Time) ([]domain.TodoMigration, error)
	listMigrationsFn func(ctx context.Context, todoID *uint) ([]domain.TodoMigration, error)
}

var _ repository.RolloverRepository = (*mockRolloverRepo)(nil)

func (m *mockRolloverRepo) MigratePastTodos(ctx context.Context, today string, migratedAt time.Time) ([]domain.TodoMigration, error) {
	return m.migrateFn(ctx, today, migratedAt)
}
func (m *mockRolloverRepo) ListMigrations(ctx context.Context, todoID *uint) ([]domain.TodoMigration, error) {
	return m.listMigrationsFn(ctx, todoID)
}

// --- Mock Dashboard Repository ---

type mockDashboardRepo struct {
	loadFn func(ctx context.Context, from, to string) (*repository.DashboardRows, error)
}

var _ repository.DashboardRepository = (*mockDashboardRepo)(nil)

func (m *mockDashboardRepo) Load(ctx context.Context, from, to string) (*repository.DashboardRows, error) {
	return m.loadFn(ctx, from, to)
}
