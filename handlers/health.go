package handlers

import "github.com/gofiber/fiber/v2"

// HandleCheckHealth reports whether the server is up.
func HandleCheckHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Server is running",
	})
}
