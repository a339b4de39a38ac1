package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
)

func SetupFeesRoutes(app *fiber.App, ds *database.DataSource) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	api.Post("/", AddPaymentAPI(ds))
	api.Get("/student/:id", GetStudentPaymentsAPI(ds))
	api.Get("/monthly", GetMonthlyTotalsAPI(ds))
}
