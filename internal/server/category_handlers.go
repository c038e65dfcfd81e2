package server

import (
	"net/http"

	"github.com/Tomlord1122/dayplanner-backend/internal/service"
)

func (s *Server) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.deps.Categories.ListCategories(r.Context())
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to list categories")
		return
	}
	respondWithData(w, http.StatusOK, categories)
}

func (s *Server) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	category, err := s.deps.Categories.CreateCategory(r.Context(), req)
	if err != nil {
		s.respondWithServiceError(w, r, err, "Failed to create category")
		return
	}
	respondWithJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Message: "Category created successfully",
		Data:    idResponse{ID: category.ID},
	})
}

func (s *Server) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid category ID provided")
		return
	}

	var req service.UpdateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.deps.Categories.UpdateCategory(r.Context(), id, req); err != nil {
		s.respondWithServiceError(w, r, err, "Failed to update category")
		return
	}
	respondWithMessage(w, http.StatusOK, "Category updated successfully")
}

func (s *Server) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid category ID provided")
		return
	}

	if err := s.deps.Categories.DeleteCategory(r.Context(), id); err != nil {
		s.respondWithServiceError(w, r, err, "Failed to delete category")
		return
	}
	respondWithMessage(w, http.StatusOK, "Category deleted successfully")
}
