package setup

import (
	"context"

	"github.com/sanfusis123/solo-leveling-backend/internal/config"
	"github.com/sanfusis123/solo-leveling-backend/internal/handler"
	"github.com/sanfusis123/solo-leveling-backend/internal/jwt"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
	"github.com/sanfusis123/solo-leveling-backend/internal/service"
	"github.com/sanfusis123/solo-leveling-backend/internal/storage/mongo"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	Config         *config.Config
	Storage        *mongo.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	LoginLimiter   *middleware.RateLimiter
}

// SetupDependencies wires storage, services, middleware and handlers.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := mongo.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tokenService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, tokenService)
	admin := service.NewAdmin(storage)
	calendar := service.NewCalendar(storage)
	improvement := service.NewImprovement(storage)
	project := service.NewProject(storage)
	flashcard := service.NewFlashcard(storage)
	material := service.NewMaterial(storage)
	diary := service.NewDiary(storage, cfg.Public.MoodSummaryDays)
	funzone := service.NewFunZone(storage)
	analytics := service.NewAnalytics(storage)

	h := handler.New(auth, admin, calendar, improvement, project, flashcard,
		material, diary, funzone, analytics, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(auth),
		LoginLimiter:   middleware.NewRateLimiter(cfg.Public.LoginRatePerMin),
	}, nil
}
