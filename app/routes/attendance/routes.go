package attendance

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
)

func SetupAttendanceRoutes(app *fiber.App, ds *database.DataSource) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Post("/", SaveAttendanceAPI(ds))         // Save one day's sheet
	api.Get("/date/:date", GetByDateAPI(ds))     // All marks for one day
	api.Get("/student/:id", GetByStudentAPI(ds)) // One student's history
}
