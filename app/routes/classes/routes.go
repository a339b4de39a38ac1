package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App, ds *database.DataSource) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetClassesAPI(ds))
	api.Get("/:id/students", GetClassStudentsAPI(ds))
	api.Get("/:id/assignments", GetClassAssignmentsAPI(ds))
	api.Post("/", CreateClassAPI(ds))
	api.Put("/:id", UpdateClassAPI(ds))
	api.Delete("/:id", DeleteClassAPI(ds))
}
