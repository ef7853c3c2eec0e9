package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
	"github.com/sanfusis123/solo-leveling-backend/internal/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeErrorAndStatusCode(w http.ResponseWriter, err error) {
	statusCode := internal_errors.StatusCode(err)
	if statusCode == http.StatusInternalServerError {
		logger.Log.Error("request failed", "error", err)
		// never leak internals
		http.Error(w, "Internal server error", statusCode)
		return
	}
	http.Error(w, err.Error(), statusCode)
}

func loadAndValidateRequestBody(r *http.Request, body any) error {
	if err := json.NewDecoder(r.Body).Decode(body); err != nil {
		return internal_errors.BadRequest("Body is invalid json")
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("validation failed", "error", err)
		return internal_errors.BadRequest("Required fields missing or invalid")
	}
	return nil
}

// parseTimeRange reads optional start/end RFC3339 query parameters.
func parseTimeRange(r *http.Request) (start, end *time.Time, err error) {
	if raw := r.URL.Query().Get("start"); raw != "" {
		t, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return nil, nil, internal_errors.BadRequest("Invalid start time, expected RFC3339")
		}
		start = &t
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		t, parseErr := time.Parse(time.RFC3339, raw)
		if parseErr != nil {
			return nil, nil, internal_errors.BadRequest("Invalid end time, expected RFC3339")
		}
		end = &t
	}
	return start, end, nil
}

// parseIntParam returns 0 when the parameter is absent.
func parseIntParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, internal_errors.BadRequest("Invalid " + name + ", expected a number")
	}
	return v, nil
}

// parseBoolParam returns nil when the parameter is absent.
func parseBoolParam(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	switch raw {
	case "true", "1":
		v := true
		return &v, nil
	case "false", "0":
		v := false
		return &v, nil
	}
	return nil, internal_errors.BadRequest("Invalid " + name + ", expected true or false")
}
