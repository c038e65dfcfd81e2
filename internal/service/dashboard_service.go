package service

import (
	"context"
	"log/slog"

	"github.com/Tomlord1122/dayplanner-backend/internal/domain"
	"github.com/Tomlord1122/dayplanner-backend/internal/repository"
)

const daysPerWeek = 7

// DayBucket is one calendar day of the weekly view.
type DayBucket struct {
	Date  string            `json:"date"`
	Day   string            `json:"day"`
	Todos []domain.TodoView `json:"todos"`
}

type DashboardSnapshot struct {
	WeeklyTodos   []DayBucket       `json:"weekly_todos"`
	SomedayTodos  []domain.TodoView `json:"someday_todos"`
	Categories    []domain.Category `json:"categories"`
	TodayDate     string            `json:"today_date"`
	WeekStartDate string            `json:"week_start_date"`
}

type DashboardService interface {
	// BuildDashboard never writes. The window starts weekOffset days from today.
	BuildDashboard(ctx context.Context, weekOffset int, today string) (*DashboardSnapshot, error)
}

type dashboardService struct {
	repo   repository.DashboardRepository
	logger *slog.Logger
}

func NewDashboardService(repo repository.DashboardRepository, logger *slog.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, weekOffset int, today string) (*DashboardSnapshot, error) {
	if !domain.ValidDate(today) {
		return nil, invalid("today %q is not a valid YYYY-MM-DD date", today)
	}
	weekStart, err := domain.AddDays(today, weekOffset)
	if err != nil {
		return nil, invalid("week offset %d: %v", weekOffset, err)
	}
	weekEnd, err := domain.AddDays(weekStart, daysPerWeek-1)
	if err != nil {
		return nil, invalid("week offset %d: %v", weekOffset, err)
	}
	// Dates past year 9999 lose their fixed width and would compare wrongly.
	if !domain.ValidDate(weekStart) || !domain.ValidDate(weekEnd) {
		return nil, invalid("week offset %d moves the window outside years 0001-9999", weekOffset)
	}

	rows, err := s.repo.Load(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, storeError("load dashboard", err)
	}

	buckets := make([]DayBucket, 0, daysPerWeek)
	index := make(map[string]int, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		date, _ := domain.AddDays(weekStart, i)
		day, _ := domain.Weekday(date)
		index[date] = i
		buckets = append(buckets, DayBucket{Date: date, Day: day, Todos: []domain.TodoView{}})
	}
	for _, todo := range rows.Scheduled {
		if todo.ScheduledDate == nil {
			continue
		}
		if i, ok := index[*todo.ScheduledDate]; ok {
			buckets[i].Todos = append(buckets[i].Todos, todo)
		}
	}

	snapshot := &DashboardSnapshot{
		WeeklyTodos:   buckets,
		SomedayTodos:  rows.Someday,
		Categories:    rows.Categories,
		TodayDate:     today,
		WeekStartDate: weekStart,
	}
	if snapshot.SomedayTodos == nil {
		snapshot.SomedayTodos = []domain.TodoView{}
	}
	if snapshot.Categories == nil {
		snapshot.Categories = []domain.Category{}
	}
	return snapshot, nil
}
