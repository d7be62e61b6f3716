package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/artem13815/recruitment/api/http/handlers"
	"github.com/artem13815/recruitment/pkg/auth"
	"github.com/artem13815/recruitment/pkg/security/jwt"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Skills       *handlers.SkillHandler
	JobOffers    *handlers.JobOfferHandler
	Applications *handlers.ApplicationHandler
	CVs          *handlers.CVHandler
}

// AuthConfig configures token verification.
type AuthConfig struct {
	Secret string
	Issuer string
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, ac AuthConfig) {
	app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := app.Group("/api/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	v1.Post("/auth/login", h.Auth.Login)

	rec := v1.Group("",
		jwt.NewAuthMiddleware(ac.Secret, ac.Issuer),
		jwt.RequireRoles(auth.RoleHRManager, auth.RoleRecruiter),
	)

	rec.Get("/skill-categories", h.Skills.ListCategories)
	rec.Post("/skill-categories", h.Skills.CreateCategory)
	rec.Get("/skills", h.Skills.List)
	rec.Post("/skills", h.Skills.Create)
	rec.Get("/skills/:id", h.Skills.Get)
	rec.Delete("/skills/:id", h.Skills.Delete)

	rec.Get("/job-offers", h.JobOffers.List)
	rec.Post("/job-offers", h.JobOffers.Create)
	rec.Get("/job-offers/:id", h.JobOffers.Get)
	rec.Delete("/job-offers/:id", h.JobOffers.Delete)
	rec.Put("/job-offers/:id/requirements", h.JobOffers.UpdateRequirements)
	rec.Put("/job-offers/:id/status", h.JobOffers.SetStatus)
	rec.Get("/job-offers/:id/ranking", h.JobOffers.Ranking)

	rec.Get("/applications", h.Applications.List)
	rec.Post("/applications", h.Applications.Create)
	rec.Get("/applications/:id", h.Applications.Get)
	rec.Delete("/applications/:id", h.Applications.Delete)
	rec.Put("/applications/:id/skills", h.Applications.UpdateSkills)
	rec.Put("/applications/:id/status", h.Applications.ChangeStatus)
	rec.Get("/applications/:id/match", h.Applications.Match)
	rec.Post("/applications/:id/cvs", h.CVs.Upload)
	rec.Get("/applications/:id/cvs", h.CVs.ListByApplication)

	rec.Get("/cvs/:id/file", h.CVs.Download)
	rec.Delete("/cvs/:id", h.CVs.Delete)
	rec.Get("/cvs/:id/suggestions", h.CVs.Suggestions)
}
