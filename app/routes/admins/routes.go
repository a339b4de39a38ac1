package admins

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
)

func SetupAdminsRoutes(app *fiber.App, ds *database.DataSource) {
	api := app.Group("/api/admins")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAdminsAPI(ds))
	api.Post("/", CreateAdminAPI(ds))
	api.Put("/:id", UpdateAdminAPI(ds))
	api.Delete("/:id", DeleteAdminAPI(ds))
}
