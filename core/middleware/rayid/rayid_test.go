package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_GeneratesID(t *testing.T) {
	app := fiber.New()
	app.Use(New())

	var captured string
	app.Get("/", func(c *fiber.Ctx) error {
		captured, _ = c.Locals("ray_id").(string)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.NotEmpty(t, captured)
	assert.Equal(t, captured, resp.Header.Get(HeaderName))
}

func TestNew_ReusesIncomingID(t *testing.T) {
	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, "upstream-trace")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-trace", resp.Header.Get(HeaderName))
}
