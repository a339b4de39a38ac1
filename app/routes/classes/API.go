package classes

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

func GetClassesAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classes, err := database.FetchAllClasses(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
		}
		return c.JSON(fiber.Map{
			"classes": classes,
			"count":   len(classes),
		})
	}
}

func GetClassStudentsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
		}
		students, err := database.GetStudentsByClass(ds, id)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
		}
		return c.JSON(fiber.Map{
			"students": students,
			"count":    len(students),
		})
	}
}

func GetClassAssignmentsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
		}
		assignments, err := database.GetAssignmentsForClass(ds, id)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
		}
		return c.JSON(fiber.Map{
			"assignments": assignments,
			"count":       len(assignments),
		})
	}
}

func CreateClassAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type CreateRequest struct {
			Name string `json:"name"`
		}

		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if req.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
		}

		if err := database.AddClass(ds, req.Name); err != nil {
			if errors.Is(err, database.ErrDuplicateKey) {
				return c.Status(409).JSON(fiber.Map{"error": "A class with that name already exists"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
		}
		return c.Status(201).JSON(fiber.Map{"message": "Class created"})
	}
}

func UpdateClassAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
		}

		var class models.SchoolClass
		if err := c.BodyParser(&class); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		class.ID = id

		if err := database.UpdateClass(ds, &class); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
		}
		return c.JSON(fiber.Map{"message": "Class updated"})
	}
}

// DeleteClassAPI removes a class level. While students or assignments still
// reference the class the delete is refused with 409 carrying both counts,
// so the caller can show what is blocking it.
func DeleteClassAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
		}

		if err := database.DeleteClass(ds, id); err != nil {
			var conflict *database.DependencyConflictError
			if errors.As(err, &conflict) {
				return c.Status(409).JSON(fiber.Map{
					"error":       "Class is still referenced",
					"students":    conflict.Students,
					"assignments": conflict.Assignments,
				})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
		}
		return c.JSON(fiber.Map{"message": "Class deleted"})
	}
}
