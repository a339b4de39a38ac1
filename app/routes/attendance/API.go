package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// SaveAttendanceAPI stores one day's attendance sheet. Either every record
// in the list is saved or none are.
func SaveAttendanceAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var records []models.AttendanceRecord
		if err := c.BodyParser(&records); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		for _, r := range records {
			if !r.Status.Valid() {
				return c.Status(400).JSON(fiber.Map{"error": "Unknown attendance status: " + string(r.Status)})
			}
		}

		if err := database.SaveAttendance(ds, records); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
		}
		return c.JSON(fiber.Map{
			"message": "Attendance saved",
			"count":   len(records),
		})
	}
}

func GetByDateAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Params("date")
		records, err := database.GetAttendanceForDate(ds, date)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
		}
		return c.JSON(fiber.Map{
			"records": records,
			"count":   len(records),
		})
	}
}

func GetByStudentAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
		}
		records, err := database.GetAttendanceForStudent(ds, id)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
		}
		return c.JSON(fiber.Map{
			"records": records,
			"count":   len(records),
		})
	}
}
