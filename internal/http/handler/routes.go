package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"certtracker/internal/http/middleware"
	"certtracker/internal/service"
)

// Services groups the use-case dependencies injected into the router.
type Services struct {
	Auth           service.AuthService
	Certifications service.CertificationService
	Documents      service.DocumentService
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
// Certification and document routes sit behind the bearer-token middleware;
// auth routes do not.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, jwtSecret []byte) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/auth/register", Register(svcs.Auth))
	app.Post("/auth/login", Login(svcs.Auth))

	authed := middleware.Auth(jwtSecret)

	app.Post("/auth/logout", authed, Logout())

	app.Get("/certifications", authed, ListCertifications(svcs.Certifications))
	app.Post("/certifications", authed, CreateCertification(svcs.Certifications))
	app.Get("/certifications/:id", authed, GetCertification(svcs.Certifications))
	app.Put("/certifications/:id", authed, UpdateCertification(svcs.Certifications))
	app.Delete("/certifications/:id", authed, DeleteCertification(svcs.Certifications))

	app.Post("/documents", authed, UploadDocument(svcs.Documents))
	app.Delete("/documents", authed, DeleteDocument(svcs.Documents))
}
