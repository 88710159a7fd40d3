package http

import (
	"encoding/json"
	"net/http"

	apperrors "arenaku/pkg/errors"
)

type ErrorResponse struct {
	Error    string         `json:"error"`
	Code     string         `json:"code,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
	Redirect string         `json:"redirect,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
}

type PaginatedResponse struct {
	Data       any   `json:"data"`
	TotalCount int64 `json:"total_count"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) {
	appErr := apperrors.AsAppError(err)
	WriteJSON(w, appErr.StatusCode(), ErrorResponse{
		Error:    appErr.Message,
		Code:     appErr.Code,
		Details:  appErr.Details,
		Redirect: appErr.Redirect,
	})
}

// WriteUnauthorizedRedirect reports an expired or invalid session and tells
// the browser where to navigate. Used by the global 401 rule only.
func WriteUnauthorizedRedirect(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusUnauthorized, ErrorResponse{
		Error:    message,
		Code:     apperrors.CodeUnauthorized,
		Redirect: "/login",
	})
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func WritePaginated(w http.ResponseWriter, data any, totalCount int64, limit int, offset int) {
	WriteJSON(w, http.StatusOK, PaginatedResponse{
		Data:       data,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	})
}
