package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App, ds *database.DataSource) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", GetDashboardStatsAPI(ds))
	api.Get("/students-per-class", GetStudentsPerClassAPI(ds))
	api.Get("/gender-distribution", GetGenderDistributionAPI(ds))
}
