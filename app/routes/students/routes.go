package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App, ds *database.DataSource) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI(ds))                 // Get all students
	api.Get("/search", SearchStudentsAPI(ds))        // Search students (?field=&q=)
	api.Get("/class/:id", GetStudentsByClassAPI(ds)) // Get students in one class
	api.Post("/", CreateStudentAPI(ds))              // Create new student
	api.Post("/batch", CreateStudentsBatchAPI(ds))   // Import students with fixed ids
	api.Put("/:id", UpdateStudentAPI(ds))            // Update existing student
	api.Delete("/:id", DeleteStudentAPI(ds))         // Delete student
}
