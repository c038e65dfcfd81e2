package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Tomlord1122/dayplanner-backend/internal/service"
)

// APIResponse is the envelope every endpoint responds with.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type idResponse struct {
	ID uint `json:"id"`
}

type conflictResponse struct {
	TodoCount int64 `json:"todo_count"`
}

func respondWithData(w http.ResponseWriter, code int, data any) {
	respondWithJSON(w, code, APIResponse{Success: true, Data: data})
}

func respondWithMessage(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, APIResponse{Success: true, Message: message})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, APIResponse{Success: false, Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal response", "error", err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Internal server error preparing response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithServiceError maps service sentinels to status codes. Store
// failures are logged and hidden behind a generic message.
func (s *Server) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var inUse *service.CategoryInUseError
	switch {
	case errors.As(err, &inUse):
		respondWithJSON(w, http.StatusConflict, APIResponse{
			Success: false,
			Error:   inUse.Error(),
			Data:    conflictResponse{TodoCount: inUse.TodoCount},
		})
	case errors.Is(err, service.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondWithError(w, http.StatusNotFound, fallbackNotFound(r))
	case errors.Is(err, service.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		s.deps.Logger.Error(fallback, "error", err, "path", r.URL.Path)
		respondWithError(w, http.StatusInternalServerError, fallback)
	}
}

func fallbackNotFound(r *http.Request) string {
	if strings.Contains(r.URL.Path, "/categories") {
		return "Category not found"
	}
	return "Todo not found"
}

// pathID parses the {id} URL parameter. Zero is rejected.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// decodeJSON decodes a request body into dst and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dst)
	if err == nil {
		return true
	}

	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxError):
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Request body contains badly-formed JSON (at position %d)", syntaxError.Offset))
	case errors.Is(err, io.ErrUnexpectedEOF):
		respondWithError(w, http.StatusBadRequest, "Request body contains badly-formed JSON")
	case errors.As(err, &unmarshalTypeError):
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Request body contains an invalid value for the %q field (at position %d)", unmarshalTypeError.Field, unmarshalTypeError.Offset))
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Request body contains unknown field %s", fieldName))
	case errors.Is(err, io.EOF):
		respondWithError(w, http.StatusBadRequest, "Request body must not be empty")
	default:
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
	}
	return false
}
