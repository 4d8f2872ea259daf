package handler

import (
	"encoding/base64"

	"github.com/gofiber/fiber/v2"

	"certtracker/internal/http/middleware"
	"certtracker/internal/service"
)

type uploadRequest struct {
	Filename      string `json:"filename"`
	ContentBase64 string `json:"contentBase64"`
	ContentType   string `json:"contentType"`
}

// UploadDocument handles POST /documents with a base64-encoded JSON body.
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req uploadRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.ContentBase64 == "" {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "contentBase64 is required")
		}

		content, err := base64.StdEncoding.DecodeString(req.ContentBase64)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CONTENT", "content is not valid base64")
		}

		res, err := svc.Upload(c.UserContext(), middleware.CallerID(c), req.Filename, content, req.ContentType)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// DeleteDocument handles DELETE /documents?key=...
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Query("key")
		if key == "" {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "key is required")
		}

		if err := svc.Delete(c.UserContext(), middleware.CallerID(c), key); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "File deleted successfully"})
	}
}
