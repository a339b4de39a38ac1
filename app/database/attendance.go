package database

import (
	"database/sql"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// SaveAttendance stores one day's attendance sheet. Each record replaces any
// earlier row for the same (student, date) pair: the old row is deleted and
// the new one inserted. Every delete and insert for the whole list runs in a
// single transaction, so a failure anywhere leaves the table exactly as it
// was.
func SaveAttendance(ds *DataSource, records []models.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := ds.db.Begin()
	if err != nil {
		return err
	}
	del, err := tx.Prepare(ds.Rebind("DELETE FROM student_attendance WHERE student_id = ? AND attendance_date = ?"))
	if err != nil {
		tx.Rollback()
		return err
	}
	defer del.Close()
	ins, err := tx.Prepare(ds.Rebind("INSERT INTO student_attendance(student_id, attendance_date, status) VALUES (?,?,?)"))
	if err != nil {
		tx.Rollback()
		return err
	}
	defer ins.Close()

	for _, r := range records {
		if _, err := del.Exec(r.StudentID, r.Date); err != nil {
			tx.Rollback()
			return err
		}
		if _, err := ins.Exec(r.StudentID, r.Date, r.Status); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// GetAttendanceForDate returns every attendance mark recorded for one day.
func GetAttendanceForDate(ds *DataSource, date string) ([]models.AttendanceRecord, error) {
	query := ds.Rebind(`SELECT attendance_id, student_id, attendance_date, status
		FROM student_attendance WHERE attendance_date = ? ORDER BY student_id`)
	rows, err := ds.db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

// GetAttendanceForStudent returns one student's attendance history, most
// recent day first.
func GetAttendanceForStudent(ds *DataSource, studentID int) ([]models.AttendanceRecord, error) {
	query := ds.Rebind(`SELECT attendance_id, student_id, attendance_date, status
		FROM student_attendance WHERE student_id = ? ORDER BY attendance_date DESC`)
	rows, err := ds.db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAttendance(rows)
}

func collectAttendance(rows *sql.Rows) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	for rows.Next() {
		var r models.AttendanceRecord
		var date dateText
		if err := rows.Scan(&r.ID, &r.StudentID, &date, &r.Status); err != nil {
			return nil, err
		}
		r.Date = string(date)
		records = append(records, r)
	}
	return records, rows.Err()
}
