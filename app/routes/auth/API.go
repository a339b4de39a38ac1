package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/services"
)

func LoginAPI(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type LoginRequest struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}

		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}

		admin, err := svc.Login(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Database error"})
		}

		token, err := GenerateJWT(admin.ID, admin.Username, admin.Name)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
		}

		// Set JWT as HTTP-only cookie
		c.Cookie(&fiber.Cookie{
			Name:     "jwt_token",
			Value:    token,
			Expires:  time.Now().Add(sessionDuration),
			HTTPOnly: true,
			Secure:   false, // Set to true in production with HTTPS
			SameSite: "Lax",
		})

		return c.JSON(fiber.Map{
			"message": "Login successful",
			"admin":   admin,
		})
	}
}

func LogoutAPI(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc.Logout()

		// Clear JWT cookie
		c.Cookie(&fiber.Cookie{
			Name:     "jwt_token",
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
		})

		return c.JSON(fiber.Map{"message": "Logged out"})
	}
}

// SessionAPI reports the persisted session state, restoring the admin
// identity from the previous run when the store still marks it logged in.
func SessionAPI(svc *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !svc.IsLoggedIn() {
			return c.JSON(fiber.Map{"logged_in": false})
		}
		admin := svc.Current()
		if admin == nil {
			admin = svc.AttemptAutoLogin()
		}
		return c.JSON(fiber.Map{
			"logged_in": true,
			"admin":     admin,
		})
	}
}

func MeAPI(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"admin_id": c.Locals("admin_id"),
		"username": c.Locals("admin_username"),
		"name":     c.Locals("admin_name"),
	})
}
