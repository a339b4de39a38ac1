package assignments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

func GetAssignmentsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		assignments, err := database.GetTeacherAssignments(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
		}
		return c.JSON(fiber.Map{
			"assignments": assignments,
			"count":       len(assignments),
		})
	}
}

func CreateAssignmentAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.TeacherAssignment
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if req.TeacherID == 0 || req.SubjectID == 0 {
			return c.Status(400).JSON(fiber.Map{"error": "Teacher and subject are required"})
		}

		if err := database.AddTeacherAssignment(ds, req.TeacherID, req.SubjectID, req.ClassLevel); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create assignment"})
		}
		return c.Status(201).JSON(fiber.Map{"message": "Assignment created"})
	}
}

func DeleteAssignmentAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid assignment id"})
		}
		if err := database.DeleteTeacherAssignment(ds, id); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assignment"})
		}
		return c.JSON(fiber.Map{"message": "Assignment deleted"})
	}
}
