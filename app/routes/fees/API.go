package fees

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/IbnIssah/SchoolManagementSystem/app/database"
	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

func AddPaymentAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var payment models.Payment
		if err := c.BodyParser(&payment); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		if payment.StudentID == 0 || payment.PaymentDate == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Student and payment date are required"})
		}

		if err := database.AddStudentPayment(ds, &payment); err != nil {
			if errors.Is(err, database.ErrNegativeAmount) {
				return c.Status(400).JSON(fiber.Map{"error": "Amount must not be negative"})
			}
			return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
		}
		return c.Status(201).JSON(fiber.Map{"message": "Payment recorded"})
	}
}

func GetStudentPaymentsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid student id"})
		}
		payments, err := database.GetStudentPayments(ds, id)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payments"})
		}
		return c.JSON(fiber.Map{
			"payments": payments,
			"count":    len(payments),
		})
	}
}

func GetMonthlyTotalsAPI(ds *database.DataSource) fiber.Handler {
	return func(c *fiber.Ctx) error {
		totals, err := database.GetFeesCollectedPerMonth(ds)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch monthly totals"})
		}
		return c.JSON(fiber.Map{
			"months": totals,
			"count":  len(totals),
		})
	}
}
