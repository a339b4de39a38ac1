package teachers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

var searchFields = map[string]database.TeacherSearchField{
	"id":      database.TeacherByID,
	"name":    database.TeacherByName,
	"contact": database.TeacherByContact,
	"email":   database.TeacherByEmail,
	"address": database.TeacherByAddress,
}

func GetTeachersAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		teachers, err := database.FetchAllTeachers(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
		}
		return c.JSON(fiber.Map{
			"teachers": teachers,
			"count":    len(teachers),
		})
	}
}

func SearchTeachersAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		term := c.Query("q")
		field, ok := searchFields[c.Query("field", "name")]
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown search field"})
		}

		teachers, err := database.SearchTeachers(ds, term, field)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Search failed"})
		}
		return c.JSON(fiber.Map{
			"teachers": teachers,
			"count":    len(teachers),
		})
	}
}

func GetTeacherAssignmentsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid teacher id"})
		}
		assignments, err := database.GetAssignmentsForTeacher(ds, id)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch assignments"})
		}
		return c.JSON(fiber.Map{
			"assignments": assignments,
			"count":       len(assignments),
		})
	}
}

func CreateTeacherAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var teacher models.Teacher
		if err := c.BodyParser(&teacher); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if teacher.Name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Teacher name is required"})
		}

		if err := database.AddTeacher(ds, &teacher); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
		}
		return c.Status(201).JSON(fiber.Map{"message": "Teacher created"})
	}
}

func CreateTeachersBatchAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var teachers []models.Teacher
		if err := c.BodyParser(&teachers); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}

		if err := database.AddTeachersBatch(ds, teachers); err != nil {
			if errors.Is(err, database.ErrDuplicateKey) {
				return c.Status(409).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to import teachers"})
		}
		return c.Status(201).JSON(fiber.Map{
			"message": "Teachers imported",
			"count":   len(teachers),
		})
	}
}

func UpdateTeacherAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid teacher id"})
		}

		var teacher models.Teacher
		if err := c.BodyParser(&teacher); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		teacher.ID = id

		if err := database.UpdateTeacher(ds, &teacher); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher"})
		}
		return c.JSON(fiber.Map{"message": "Teacher updated"})
	}
}

func DeleteTeacherAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid teacher id"})
		}
		if err := database.DeleteTeacher(ds, id); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete teacher"})
		}
		return c.JSON(fiber.Map{"message": "Teacher deleted"})
	}
}
