package admins

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

func GetAdminsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admins, err := database.FetchAllAdmins(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch admins"})
		}
		return c.JSON(fiber.Map{
			"admins": admins,
			"count":  len(admins),
		})
	}
}

func CreateAdminAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type CreateRequest struct {
			Name     string `json:"name"`
			Username string `json:"username"`
			Password string `json:"password"`
		}

		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if req.Username == "" || req.Password == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Username and password are required"})
		}

		admin := models.Admin{Name: req.Name, Username: req.Username}
		if err := database.CreateAdmin(ds, &admin, req.Password); err != nil {
			if errors.Is(err, database.ErrDuplicateKey) {
				return c.Status(409).JSON(fiber.Map{"error": "Username already taken"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create admin"})
		}
		return c.Status(201).JSON(fiber.Map{"message": "Admin created"})
	}
}

func UpdateAdminAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid admin id"})
		}

		type UpdateRequest struct {
			Name        string `json:"name"`
			Username    string `json:"username"`
			NewPassword string `json:"new_password,omitempty"`
		}

		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}

		admin := models.Admin{ID: id, Name: req.Name, Username: req.Username}
		if err := database.UpdateAdmin(ds, &admin, req.NewPassword); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update admin"})
		}
		return c.JSON(fiber.Map{"message": "Admin updated"})
	}
}

func DeleteAdminAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid admin id"})
		}
		if err := database.DeleteAdmin(ds, id); err != nil {
			if errors.Is(err, database.ErrLastAdmin) {
				return c.Status(409).JSON(fiber.Map{"error": "Cannot delete the last admin account"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete admin"})
		}
		return c.JSON(fiber.Map{"message": "Admin deleted"})
	}
}
