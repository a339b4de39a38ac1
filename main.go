package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/admins"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/assignments"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/attendance"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/auth"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/classes"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/dashboard"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/fees"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/students"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/subjects"
	"github.com/IbnIssah/SchoolManagementSystem/app/routes/teachers"
	"github.com/IbnIssah/SchoolManagementSystem/app/services"
	"github.com/IbnIssah/SchoolManagementSystem/app/settings"
)

const settingsPath = "data/settings.json"

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	st, err := settings.Open(settingsPath)
	if err != nil {
		log.Fatal("Failed to open settings store:", err)
	}
	defer st.Close()

	// Connect: primary backend first, embedded fallback otherwise. The
	// choice is made once and holds for the whole process lifetime.
	ds, err := database.Open()
	if err != nil {
		log.Fatal("Failed to open a database backend:", err)
	}
	defer ds.Shutdown()

	if err := database.EnsureSchema(ds); err != nil {
		log.Fatal("Failed to provision schema:", err)
	}
	if err := database.MigrateWeakCredentials(ds); err != nil {
		log.Fatal("Failed to migrate stored credentials:", err)
	}
	database.MigrateIfNeeded(ds, st)

	authService := services.NewAuthService(ds, st)
	if admin := authService.AttemptAutoLogin(); admin != nil {
		log.Printf("Restored session for %s", admin.Username)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app, authService)
	admins.SetupAdminsRoutes(app, ds)
	students.SetupStudentsRoutes(app, ds)
	teachers.SetupTeachersRoutes(app, ds)
	classes.SetupClassesRoutes(app, ds)
	subjects.SetupSubjectsRoutes(app, ds)
	assignments.SetupAssignmentsRoutes(app, ds)
	attendance.SetupAttendanceRoutes(app, ds)
	fees.SetupFeesRoutes(app, ds)
	dashboard.SetupDashboardRoutes(app, ds)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Shut down cleanly on interrupt so the pool and settings store flush.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Printf("Server starting on %s (backend: %s)", addr, ds.Backend())
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}
