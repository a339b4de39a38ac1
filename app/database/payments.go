package database

import (
	"database/sql"
	"errors"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// ErrNegativeAmount reports a rejected payment with an amount below zero.
var ErrNegativeAmount = errors.New("payment amount must not be negative")

// AddStudentPayment records a fees payment for a student.
func AddStudentPayment(ds *DataSource, p *models.Payment) error {
	if p.Amount < 0 {
		return ErrNegativeAmount
	}
	query := ds.Rebind(`INSERT INTO student_payments(student_id, amount_paid, payment_date, term, academic_year)
		VALUES (?,?,?,?,?)`)
	_, err := ds.db.Exec(query, p.StudentID, p.Amount, p.PaymentDate, nullable(p.Term), nullableInt(p.AcademicYear))
	return err
}

// GetStudentPayments returns one student's payment history, most recent
// first.
func GetStudentPayments(ds *DataSource, studentID int) ([]models.Payment, error) {
	query := ds.Rebind(`SELECT payment_id, student_id, amount_paid, payment_date, term, academic_year
		FROM student_payments WHERE student_id = ? ORDER BY payment_date DESC`)
	rows, err := ds.db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		var date dateText
		var term sql.NullString
		var year sql.NullInt64
		if err := rows.Scan(&p.ID, &p.StudentID, &p.Amount, &date, &term, &year); err != nil {
			return nil, err
		}
		p.PaymentDate = string(date)
		p.Term = term.String
		p.AcademicYear = int(year.Int64)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
