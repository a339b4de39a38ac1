package assignments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
)

func SetupAssignmentsRoutes(app *fiber.App, ds *database.DataSource) {
	api := app.Group("/api/assignments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAssignmentsAPI(ds))
	api.Post("/", CreateAssignmentAPI(ds))
	api.Delete("/:id", DeleteAssignmentAPI(ds))
}
