package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App, ds *database.DataSource) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetTeachersAPI(ds))
	api.Get("/search", SearchTeachersAPI(ds))
	api.Get("/:id/assignments", GetTeacherAssignmentsAPI(ds))
	api.Post("/", CreateTeacherAPI(ds))
	api.Post("/batch", CreateTeachersBatchAPI(ds))
	api.Put("/:id", UpdateTeacherAPI(ds))
	api.Delete("/:id", DeleteTeacherAPI(ds))
}
