package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// bearerToken extracts the opaque credential from the Authorization header.
// Returns "" when the header is missing; use cases treat that as an
// unknown token.
func bearerToken(fbrCtx *fiber.Ctx) string {
	return strings.TrimPrefix(fbrCtx.Get("Authorization"), "Bearer ")
}
