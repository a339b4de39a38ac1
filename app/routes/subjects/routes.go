package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
)

func SetupSubjectsRoutes(app *fiber.App, ds *database.DataSource) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetSubjectsAPI(ds))
	api.Post("/", CreateSubjectAPI(ds))
	api.Put("/:id", UpdateSubjectAPI(ds))
	api.Delete("/:id", DeleteSubjectAPI(ds))
}
