package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware/metrics"
	"github.com/sanfusis123/solo-leveling-backend/internal/setup"
)

// New builds the chi router with all application routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders(false))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Credential endpoints are the only unauthenticated surface,
		// so they get a per-IP rate limit.
		r.Group(func(r chi.Router) {
			r.Use(deps.LoginLimiter.Limit)
			r.Post("/auth/signup", h.Signup)
			r.Post("/auth/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())

			r.Get("/users/me", h.Me)
			r.Put("/users/me", h.UpdateMe)

			r.Route("/calendar/events", func(r chi.Router) {
				r.Post("/", h.CreateEvent)
				r.Get("/", h.ListEvents)
				r.Get("/{id}", h.GetEvent)
				r.Put("/{id}", h.UpdateEvent)
				r.Post("/{id}/complete", h.CompleteEvent)
				r.Post("/{id}/skip", h.SkipEvent)
				r.Delete("/{id}", h.DeleteEvent)
			})

			r.Route("/improvement-logs", func(r chi.Router) {
				r.Post("/", h.CreateLog)
				r.Get("/", h.ListLogs)
				r.Get("/{id}", h.GetLog)
				r.Put("/{id}", h.UpdateLog)
				r.Post("/{id}/progress", h.AddProgressNote)
				r.Delete("/{id}", h.DeleteLog)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", h.CreateProject)
				r.Get("/", h.ListProjects)
				r.Get("/{id}", h.GetProject)
				r.Put("/{id}", h.UpdateProject)
				r.Delete("/{id}", h.DeleteProject)
			})

			r.Route("/skills", func(r chi.Router) {
				r.Post("/", h.CreateSkill)
				r.Get("/", h.ListSkills)
				r.Get("/categories", h.SkillCategories)
				r.Get("/{id}", h.GetSkill)
				r.Put("/{id}", h.UpdateSkill)
				r.Delete("/{id}", h.DeleteSkill)
			})

			r.Route("/flashcards", func(r chi.Router) {
				r.Post("/decks", h.CreateDeck)
				r.Get("/decks", h.ListDecks)
				r.Get("/decks/{id}", h.GetDeck)
				r.Put("/decks/{id}", h.UpdateDeck)
				r.Delete("/decks/{id}", h.DeleteDeck)
				r.Post("/decks/{deckId}/cards", h.CreateCard)
				r.Get("/decks/{deckId}/cards", h.ListCards)
				r.Put("/cards/{id}", h.UpdateCard)
				r.Post("/cards/{id}/review", h.ReviewCard)
				r.Delete("/cards/{id}", h.DeleteCard)
			})

			r.Route("/learning-materials", func(r chi.Router) {
				r.Post("/", h.CreateMaterial)
				r.Get("/", h.ListMaterials)
				r.Get("/shared", h.ListSharedMaterials)
				r.Get("/{id}", h.GetMaterial)
				r.Put("/{id}", h.UpdateMaterial)
				r.Post("/{id}/share", h.ShareMaterial)
				r.Post("/{id}/archive", h.ArchiveMaterial)
				r.Post("/{id}/unarchive", h.UnarchiveMaterial)
				r.Delete("/{id}", h.DeleteMaterial)
			})

			r.Route("/diary", func(r chi.Router) {
				r.Post("/", h.CreateDiaryEntry)
				r.Get("/", h.ListDiaryEntries)
				r.Get("/mood-summary", h.DiaryMoodSummary)
				r.Get("/{date}", h.GetDiaryEntry)
				r.Put("/{date}", h.UpdateDiaryEntry)
				r.Delete("/{date}", h.DeleteDiaryEntry)
			})

			r.Route("/fun-zone", func(r chi.Router) {
				r.Post("/", h.CreateFunContent)
				r.Get("/", h.ListFunContent)
				r.Get("/popular", h.PopularFunContent)
				r.Get("/{id}", h.GetFunContent)
				r.Put("/{id}", h.UpdateFunContent)
				r.Post("/{id}/like", h.LikeFunContent)
				r.Delete("/{id}", h.DeleteFunContent)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/time-spent/skills", h.TimeSpentBySkill)
				r.Get("/time-spent/projects", h.TimeSpentByProject)
				r.Get("/productivity", h.ProductivityOverview)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(authMw.AdminOnly())

			r.Get("/users", h.ListUsers)
			r.Get("/users/{id}", h.GetUser)
			r.Post("/users/{id}/activate", h.ActivateUser)
			r.Post("/users/{id}/deactivate", h.DeactivateUser)
			r.Post("/users/{id}/promote", h.PromoteUser)
			r.Post("/users/{id}/demote", h.DemoteUser)
			r.Put("/users/{id}/password", h.SetUserPassword)
			r.Delete("/users/{id}", h.DeleteUser)
			r.Get("/stats", h.AdminStats)
		})
	})

	return r
}
