package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sanfusis123/solo-leveling-backend/internal/logger"
	"github.com/sanfusis123/solo-leveling-backend/internal/service"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth        service.AuthService
	admin       service.AdminService
	calendar    service.CalendarService
	improvement service.ImprovementService
	project     service.ProjectService
	flashcard   service.FlashcardService
	material    service.MaterialService
	diary       service.DiaryService
	funzone     service.FunZoneService
	analytics   service.AnalyticsService
	health      Pinger
}

func New(
	auth service.AuthService,
	admin service.AdminService,
	calendar service.CalendarService,
	improvement service.ImprovementService,
	project service.ProjectService,
	flashcard service.FlashcardService,
	material service.MaterialService,
	diary service.DiaryService,
	funzone service.FunZoneService,
	analytics service.AnalyticsService,
	health Pinger,
) *Handler {
	return &Handler{
		auth:        auth,
		admin:       admin,
		calendar:    calendar,
		improvement: improvement,
		project:     project,
		flashcard:   flashcard,
		material:    material,
		diary:       diary,
		funzone:     funzone,
		analytics:   analytics,
		health:      health,
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
