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

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name"`
	Color     *string `json:"color"`
	SortOrder *int    `json:"sort_order"`
}

type CategoryService interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, id uint, req UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id uint) error
}

type categoryService struct {
	repo   repository.CategoryRepository
	logger *slog.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *slog.Logger) CategoryService {
	return &categoryService{repo: repo, logger: logger}
}

func (s *categoryService) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("name cannot be empty")
	}
	color := req.Color
	if color == "" {
		color = domain.DefaultCategoryColor
	}

	category := &domain.Category{Name: req.Name, Color: color}
	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, invalid("category %q already exists", req.Name)
		}
		return nil, storeError("create category", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError("list categories", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uint, req UpdateCategoryRequest) error {
	fields := map[string]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return invalid("name cannot be empty")
		}
		fields["name"] = *req.Name
	}
	if req.Color != nil {
		if *req.Color == "" {
			return invalid("color cannot be empty")
		}
		fields["color"] = *req.Color
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}
	if len(fields) == 0 {
		return invalid("no fields to update")
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return invalid("category %q already exists", *req.Name)
		}
		return storeError("update category", err)
	}
	return nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uint) error {
	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrNotFound
		case errors.Is(err, repository.ErrReferenced):
			return &CategoryInUseError{CategoryID: id, TodoCount: count}
		}
		return storeError("delete category", err)
	}
	s.logger.Info("category deleted", "category_id", id)
	return nil
}
