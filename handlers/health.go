package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleCheckHealth reports service liveness. It has no dependencies and no
// failure mode; storage availability never affects it.
func HandleCheckHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "OK",
		"message": "Todo API is running",
	})
}
