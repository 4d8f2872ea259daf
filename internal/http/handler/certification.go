package handler

import (
	"github.com/gofiber/fiber/v2"

	"certtracker/internal/http/middleware"
	"certtracker/internal/service"
)

// ListCertifications handles GET /certifications.
func ListCertifications(svc service.CertificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		certs, err := svc.List(c.UserContext(), middleware.CallerID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"certifications": certs,
			"count":          len(certs),
		})
	}
}

// GetCertification handles GET /certifications/:id.
func GetCertification(svc service.CertificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cert, err := svc.Get(c.UserContext(), middleware.CallerID(c), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cert)
	}
}

// CreateCertification handles POST /certifications.
func CreateCertification(svc service.CertificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateCertificationInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		cert, err := svc.Create(c.UserContext(), middleware.CallerID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cert)
	}
}

// UpdateCertification handles PUT /certifications/:id with a partial body.
func UpdateCertification(svc service.CertificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateCertificationInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		cert, err := svc.Update(c.UserContext(), middleware.CallerID(c), c.Params("id"), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(cert)
	}
}

// DeleteCertification handles DELETE /certifications/:id.
func DeleteCertification(svc service.CertificationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), middleware.CallerID(c), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Certification deleted successfully"})
	}
}
