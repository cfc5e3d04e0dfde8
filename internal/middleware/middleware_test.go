package middleware

import (
	"Meal-Planner/domain"
	"Meal-Planner/pkg/jwt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(tokens jwt.JWTService) *fiber.App {
	m := NewMiddleware()
	app := fiber.New()
	app.Get("/private", m.AuthMiddleware(tokens), m.AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func call(t *testing.T, app *fiber.App, auth string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/private", nil)
	if auth != "" {
		req.Header.Set(fiber.HeaderAuthorization, auth)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	return res.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	tokens := jwt.NewJWTServiceWithSecret("secret")
	app := newApp(tokens)

	admin, err := tokens.GenerateToken("admin", domain.RoleAdmin)
	require.NoError(t, err)
	guest, err := tokens.GenerateToken("guest", "guest")
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, call(t, app, "Bearer "+admin))
	assert.Equal(t, fiber.StatusForbidden, call(t, app, "Bearer "+guest))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, ""))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, admin))
	assert.Equal(t, fiber.StatusUnauthorized, call(t, app, "Bearer broken"))
}
