package subjects

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

func GetSubjectsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjects, err := database.FetchAllSubjects(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
		}
		return c.JSON(fiber.Map{
			"subjects": subjects,
			"count":    len(subjects),
		})
	}
}

func CreateSubjectAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type CreateRequest struct {
			Name string `json:"name"`
		}

		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if req.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Subject name is required"})
		}

		if err := database.AddSubject(ds, req.Name); err != nil {
			if errors.Is(err, database.ErrDuplicateKey) {
				return c.Status(409).JSON(fiber.Map{"error": "A subject with that name already exists"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
		}
		return c.Status(201).JSON(fiber.Map{"message": "Subject created"})
	}
}

func UpdateSubjectAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid subject id"})
		}

		var subject models.Subject
		if err := c.BodyParser(&subject); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		subject.ID = id

		if err := database.UpdateSubject(ds, &subject); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
		}
		return c.JSON(fiber.Map{"message": "Subject updated"})
	}
}

func DeleteSubjectAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid subject id"})
		}
		if err := database.DeleteSubject(ds, id); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
		}
		return c.JSON(fiber.Map{"message": "Subject deleted"})
	}
}
