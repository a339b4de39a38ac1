package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/services"
)

func SetupAuthRoutes(app *fiber.App, svc *services.AuthService) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/login", LoginAPI(svc))
	api.Post("/logout", LogoutAPI(svc))
	api.Get("/session", SessionAPI(svc))

	// Protected routes
	api.Use(AuthMiddleware)
	api.Get("/me", MeAPI)
}

// AuthMiddleware validates the JWT and sets the admin context.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	// First try cookie
	tokenString = c.Cookies("jwt_token")

	// If no cookie, try Authorization header
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("admin_id", claims.AdminID)
	c.Locals("admin_username", claims.Username)
	c.Locals("admin_name", claims.Name)

	return c.Next()
}
