package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/timerod/timerod-backend-go/internal/handler/http/response"
	"github.com/timerod/timerod-backend-go/internal/pkg/validator"
)

// pathID reads a positive integer route parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validator.New(name, name+" must be a positive integer")
	}
	return id, nil
}

func queryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, validator.New(name, name+" must be a positive integer")
	}
	return &id, nil
}

// queryDay reads a YYYY-MM-DD or RFC 3339 value as a calendar day in loc.
func queryDay(r *http.Request, name string, loc *time.Location) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	day, err := validator.ParseDay(raw, loc)
	if err != nil {
		return nil, validator.New(name, name+" must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	return &day, nil
}

// decodeJSON writes the 400 itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}
