package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
	"github.com/Tomlord1122/dayplanner-backend/internal/repository"
	"github.com/Tomlord1122/dayplanner-backend/internal/service"
)

func view(id uint, date string) domain.TodoView {
	v := domain.TodoView{ID: id, Title: "t"}
	if date != "" {
		v.ScheduledDate = ptr(date)
	}
	return v
}

func TestDashboardService_BuildDashboard(t *testing.T) {
	var from, to string
	repo := &mockDashboardRepo{
		loadFn: func(_ context.Context, f, tt string) (*repository.DashboardRows, error) {
			from, to = f, tt
			return &repository.DashboardRows{
				Scheduled: []domain.TodoView{
					view(1, "2025-03-14"),
					view(2, "2025-03-14"),
					view(3, "2025-03-17"),
				},
				Someday:    []domain.TodoView{view(4, "")},
				Categories: []domain.Category{{ID: 1, Name: "Personal"}},
			}, nil
		},
	}
	svc := service.NewDashboardService(repo, discardLogger())

	snap, err := svc.BuildDashboard(context.Background(), 0, "2025-03-14")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14", from)
	assert.Equal(t, "2025-03-20", to)
	assert.Equal(t, "2025-03-14", snap.TodayDate)
	assert.Equal(t, "2025-03-14", snap.WeekStartDate)

	require.Len(t, snap.WeeklyTodos, 7)
	assert.Equal(t, "2025-03-14", snap.WeeklyTodos[0].Date)
	assert.Equal(t, "Friday", snap.WeeklyTodos[0].Day)
	assert.Equal(t, "2025-03-20", snap.WeeklyTodos[6].Date)
	assert.Equal(t, "Thursday", snap.WeeklyTodos[6].Day)

	require.Len(t, snap.WeeklyTodos[0].Todos, 2)
	assert.Equal(t, uint(1), snap.WeeklyTodos[0].Todos[0].ID)
	assert.Equal(t, uint(2), snap.WeeklyTodos[0].Todos[1].ID)
	require.Len(t, snap.WeeklyTodos[3].Todos, 1)
	assert.Equal(t, uint(3), snap.WeeklyTodos[3].Todos[0].ID)
	for _, i := range []int{1, 2, 4, 5, 6} {
		assert.NotNil(t, snap.WeeklyTodos[i].Todos)
		assert.Empty(t, snap.WeeklyTodos[i].Todos)
	}

	assert.Len(t, snap.SomedayTodos, 1)
	assert.Len(t, snap.Categories, 1)
}

func TestDashboardService_WeekOffset(t *testing.T) {
	tests := []struct {
		offset    int
		wantStart string
		wantEnd   string
	}{
		{offset: 7, wantStart: "2025-03-21", wantEnd: "2025-03-27"},
		{offset: -7, wantStart: "2025-03-07", wantEnd: "2025-03-13"},
		{offset: 1, wantStart: "2025-03-15", wantEnd: "2025-03-21"},
	}
	for _, tt := range tests {
		var from, to string
		repo := &mockDashboardRepo{
			loadFn: func(_ context.Context, f, e string) (*repository.DashboardRows, error) {
				from, to = f, e
				return &repository.DashboardRows{}, nil
			},
		}
		svc := service.NewDashboardService(repo, discardLogger())

		snap, err := svc.BuildDashboard(context.Background(), tt.offset, "2025-03-14")
		require.NoError(t, err)
		assert.Equal(t, tt.wantStart, from)
		assert.Equal(t, tt.wantEnd, to)
		assert.Equal(t, tt.wantStart, snap.WeekStartDate)
		assert.Equal(t, "2025-03-14", snap.TodayDate)
		assert.NotNil(t, snap.SomedayTodos)
		assert.NotNil(t, snap.Categories)
	}
}

func TestDashboardService_Errors(t *testing.T) {
	repo := &mockDashboardRepo{
		loadFn: func(context.Context, string, string) (*repository.DashboardRows, error) {
			return nil, errors.New("timeout")
		},
	}
	svc := service.NewDashboardService(repo, discardLogger())

	_, err := svc.BuildDashboard(context.Background(), 0, "2025-03-14")
	assert.ErrorIs(t, err, service.ErrStore)

	_, err = svc.BuildDashboard(context.Background(), 0, "not-a-date")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestDashboardService_WindowOutsideCalendarRange(t *testing.T) {
	repo := &mockDashboardRepo{
		loadFn: func(context.Context, string, string) (*repository.DashboardRows, error) {
			t.Fatal("store called")
			return nil, nil
		},
	}
	svc := service.NewDashboardService(repo, discardLogger())

	tests := []struct {
		today  string
		offset int
	}{
		{today: "9999-12-28", offset: 0},
		{today: "2025-03-14", offset: 3_000_000},
		{today: "0001-01-03", offset: -7},
	}
	for _, tt := range tests {
		_, err := svc.BuildDashboard(context.Background(), tt.offset, tt.today)
		assert.ErrorIs(t, err, service.ErrInvalidInput, tt.today)
	}
}
