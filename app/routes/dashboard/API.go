package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
)

// GetDashboardStatsAPI returns the headline dashboard figures as JSON.
func GetDashboardStatsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := database.GetDashboardStats(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{
				"error":   "Failed to fetch dashboard statistics",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    stats,
		})
	}
}

func GetStudentsPerClassAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		counts, err := database.GetStudentCountPerClass(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class breakdown"})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    counts,
		})
	}
}

func GetGenderDistributionAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dist, err := database.GetStudentGenderDistribution(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch gender distribution"})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    dist,
		})
	}
}
