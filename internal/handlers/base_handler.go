package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/interviewmail/backend/internal/middlewares"
	"github.com/interviewmail/backend/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// RespondServiceError maps a service error to its HTTP status.
// Validation failures list every message under "errors".
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error, logMessage string) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.RespondJSON(w, http.StatusBadRequest, map[string][]string{"errors": validationErr.Messages})
	case errors.Is(err, models.ErrNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrConflict):
		h.RespondError(w, http.StatusConflict, strings.TrimSuffix(err.Error(), ": "+models.ErrConflict.Error()))
	default:
		h.Logger.Error(logMessage, zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// DecodeJSON decodes the request body into v and answers 400 on failure
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(r.Body, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middlewares.RespondTooLarge(w, tooLarge.Limit)
			return false
		}
		h.Logger.Debug("failed to decode request body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// decodeJSON decodes one JSON value keeping numbers in free-form fields as json.Number
func decodeJSON(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec.Decode(v)
}

// URLParamInt parses a numeric path parameter and answers 400 on failure
func (h *BaseHandler) URLParamInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		h.RespondError(w, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// parseListFilter reads page, count, search and active from the query string.
// Malformed paging values fall back to the defaults.
func parseListFilter(r *http.Request) (models.ListFilter, error) {
	q := r.URL.Query()
	filter := models.ListFilter{
		Page:   1,
		Count:  20,
		Search: strings.TrimSpace(q.Get("search")),
	}

	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		filter.Page = p
	}
	if c, err := strconv.Atoi(q.Get("count")); err == nil && c > 0 {
		filter.Count = c
	}

	if raw := q.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, models.NewValidationError("active must be true or false.")
		}
		filter.Active = &active
	}

	return filter, nil
}

// queryInt parses an optional numeric query parameter; 0 means absent
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, models.NewValidationError(name + " must be a positive number.")
	}
	return v, nil
}

// queryTime parses an optional RFC 3339 or YYYY-MM-DD query parameter
func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, models.NewValidationError(name + " must be a date (YYYY-MM-DD) or an RFC 3339 timestamp.")
}
