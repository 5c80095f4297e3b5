package auth

import "github.com/gofiber/fiber/v2"

// Config holds the settings for the API key middleware.
type Config struct {
	// ApiKey is the expected key. An empty key disables the check entirely.
	ApiKey string
}

// New returns a middleware that validates the X-Api-Key header against the
// configured key. With no key configured the middleware is a pass-through,
// which is the normal mode for a launcher bound to localhost.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}

		if c.Get("X-Api-Key") != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid api key",
			})
		}

		return c.Next()
	}
}
