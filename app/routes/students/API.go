package students

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// searchFields maps the query-string selector to its typed field.
var searchFields = map[string]database.StudentSearchField{
	"id":         database.StudentByID,
	"first_name": database.StudentByFirstName,
	"last_name":  database.StudentByLastName,
}

func GetStudentsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := database.FetchAllStudents(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
		}
		return c.JSON(fiber.Map{
			"students": students,
			"count":    len(students),
		})
	}
}

func SearchStudentsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		term := c.Query("q")
		field, ok := searchFields[c.Query("field", "last_name")]
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown search field"})
		}

		students, err := database.SearchStudents(ds, term, field)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Search failed"})
		}
		return c.JSON(fiber.Map{
			"students": students,
			"count":    len(students),
		})
	}
}

func GetStudentsByClassAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		classID, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid class id"})
		}
		students, err := database.GetStudentsByClass(ds, classID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
		}
		return c.JSON(fiber.Map{
			"students": students,
			"count":    len(students),
		})
	}
}

func CreateStudentAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var student models.Student
		if err := c.BodyParser(&student); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if student.FirstName == "" || student.LastName == "" {
			return c.Status(400).JSON(fiber.Map{"error": "First and last name are required"})
		}

		if err := database.AddStudent(ds, &student); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
		}
		return c.Status(201).JSON(fiber.Map{"message": "Student created"})
	}
}

// CreateStudentsBatchAPI imports a list of students with caller-assigned
// ids. The whole list is rejected when any id collides with an existing
// student.
func CreateStudentsBatchAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var students []models.Student
		if err := c.BodyParser(&students); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}

		if err := database.AddStudentsBatch(ds, students); err != nil {
			if errors.Is(err, database.ErrDuplicateKey) {
				return c.Status(409).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to import students"})
		}
		return c.Status(201).JSON(fiber.Map{
			"message": "Students imported",
			"count":   len(students),
		})
	}
}

func UpdateStudentAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
		}

		var student models.Student
		if err := c.BodyParser(&student); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		student.ID = id

		if err := database.UpdateStudent(ds, &student); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
		}
		return c.JSON(fiber.Map{"message": "Student updated"})
	}
}

func DeleteStudentAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
		}
		if err := database.DeleteStudent(ds, id); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
		}
		return c.JSON(fiber.Map{"message": "Student deleted"})
	}
}
