package database

import (
	"database/sql"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// GetDashboardStats computes the headline dashboard figures with three
// independent aggregate queries.
func GetDashboardStats(ds *DataSource) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := ds.db.QueryRow("SELECT COUNT(*) FROM students").Scan(&stats.TotalStudents); err != nil {
		return nil, err
	}
	if err := ds.db.QueryRow("SELECT COUNT(*) FROM teachers").Scan(&stats.TotalTeachers); err != nil {
		return nil, err
	}
	// SUM over an empty table is NULL, not zero.
	var total sql.NullFloat64
	if err := ds.db.QueryRow("SELECT SUM(amount_paid) FROM student_payments").Scan(&total); err != nil {
		return nil, err
	}
	stats.TotalFeesCollected = total.Float64
	return stats, nil
}

// GetStudentCountPerClass returns the number of students in each class,
// ordered by class name, with unassigned students grouped under
// "Unassigned".
func GetStudentCountPerClass(ds *DataSource) ([]models.ClassCount, error) {
	rows, err := ds.db.Query(`
		SELECT
		  COALESCE(cl.class_name, 'Unassigned') AS class_name,
		  COUNT(s.std_id) AS students
		FROM students s
		LEFT JOIN class_levels cl ON s.std_class = cl.class_id
		GROUP BY COALESCE(cl.class_name, 'Unassigned')
		ORDER BY COALESCE(cl.class_name, 'Unassigned')`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.ClassCount
	for rows.Next() {
		var c models.ClassCount
		if err := rows.Scan(&c.ClassName, &c.Students); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// GetStudentGenderDistribution returns the number of students per stored
// gender value.
func GetStudentGenderDistribution(ds *DataSource) (map[string]int, error) {
	rows, err := ds.db.Query("SELECT std_gender, COUNT(*) FROM students GROUP BY std_gender")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var gender string
		var n int
		if err := rows.Scan(&gender, &n); err != nil {
			return nil, err
		}
		counts[gender] = n
	}
	return counts, rows.Err()
}

// GetFeesCollectedPerMonth returns the fees total for each month with at
// least one payment, in chronological order.
func GetFeesCollectedPerMonth(ds *DataSource) ([]models.MonthlyTotal, error) {
	monthExpr := "strftime('%Y-%m', payment_date)"
	if ds.backend == BackendPostgres {
		monthExpr = "to_char(payment_date, 'YYYY-MM')"
	}
	rows, err := ds.db.Query(`
		SELECT ` + monthExpr + ` AS month, SUM(amount_paid) AS total
		FROM student_payments
		GROUP BY ` + monthExpr + `
		ORDER BY ` + monthExpr)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.MonthlyTotal
	for rows.Next() {
		var m models.MonthlyTotal
		if err := rows.Scan(&m.Month, &m.Amount); err != nil {
			return nil, err
		}
		totals = append(totals, m)
	}
	return totals, rows.Err()
}
