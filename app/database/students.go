package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// StudentSearchField selects which column SearchStudents matches against.
type StudentSearchField int

const (
	StudentByID StudentSearchField = iota
	StudentByFirstName
	StudentByLastName
)

func (f StudentSearchField) column() (string, error) {
	switch f {
	case StudentByID:
		return "std_id", nil
	case StudentByFirstName:
		return "std_fname", nil
	case StudentByLastName:
		return "std_lname", nil
	}
	return "", fmt.Errorf("%w: student selector %d", ErrInvalidSearchField, int(f))
}

const studentColumns = "std_id, std_fname, std_mname, std_lname, std_gender, std_dob, std_class, profile_pic"

// AddStudent enrols a new student. The id is assigned by the store.
func AddStudent(ds *DataSource, s *models.Student) error {
	query := ds.Rebind(`INSERT INTO students(std_fname, std_mname, std_lname, std_gender, std_dob, std_class, profile_pic)
		VALUES (?,?,?,?,?,?,?)`)
	_, err := ds.db.Exec(query, s.FirstName, nullable(s.MiddleName), s.LastName,
		s.Gender, nullable(s.DateOfBirth), nullableInt(s.ClassLevel), s.ProfilePic)
	return err
}

// AddStudentsBatch inserts students with their existing ids in one round
// trip: a single prepared statement inside one transaction. If any row fails
// the whole batch is rolled back; a primary key collision is reported as
// ErrDuplicateKey.
func AddStudentsBatch(ds *DataSource, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}
	tx, err := ds.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(ds.Rebind(`INSERT INTO students(std_id, std_fname, std_mname, std_lname, std_gender, std_dob, std_class, profile_pic)
		VALUES (?,?,?,?,?,?,?,?)`))
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for i := range students {
		s := &students[i]
		if _, err := stmt.Exec(s.ID, s.FirstName, nullable(s.MiddleName), s.LastName,
			s.Gender, nullable(s.DateOfBirth), nullableInt(s.ClassLevel), s.ProfilePic); err != nil {
			tx.Rollback()
			if isDuplicateKey(err) {
				return fmt.Errorf("%w: student id %d", ErrDuplicateKey, s.ID)
			}
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	// The ids were supplied explicitly; keep the serial sequence ahead of
	// them so AddStudent keeps working afterwards.
	return resyncSerial(ds, "students", "std_id")
}

// UpdateStudent rewrites every mutable field of an existing student.
func UpdateStudent(ds *DataSource, s *models.Student) error {
	query := ds.Rebind(`UPDATE students SET std_fname = ?, std_mname = ?, std_lname = ?, std_gender = ?, std_dob = ?, std_class = ?, profile_pic = ?
		WHERE std_id = ?`)
	_, err := ds.db.Exec(query, s.FirstName, nullable(s.MiddleName), s.LastName,
		s.Gender, nullable(s.DateOfBirth), nullableInt(s.ClassLevel), s.ProfilePic, s.ID)
	return err
}

// DeleteStudent removes a student.
func DeleteStudent(ds *DataSource, id int) error {
	_, err := ds.db.Exec(ds.Rebind("DELETE FROM students WHERE std_id = ?"), id)
	return err
}

// FetchAllStudents returns every student ordered by name.
func FetchAllStudents(ds *DataSource) ([]models.Student, error) {
	rows, err := ds.db.Query("SELECT " + studentColumns + " FROM students ORDER BY std_fname, std_lname")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStudents(rows)
}

// SearchStudents performs a case-insensitive substring match on the selected
// field.
func SearchStudents(ds *DataSource, term string, field StudentSearchField) ([]models.Student, error) {
	col, err := field.column()
	if err != nil {
		return nil, err
	}
	query := ds.Rebind(fmt.Sprintf("SELECT %s FROM students WHERE LOWER(CAST(%s AS TEXT)) LIKE ?", studentColumns, col))
	rows, err := ds.db.Query(query, "%"+strings.ToLower(term)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStudents(rows)
}

// GetStudentsByClass returns the students assigned to one class level.
func GetStudentsByClass(ds *DataSource, classID int) ([]models.Student, error) {
	query := ds.Rebind("SELECT " + studentColumns + " FROM students WHERE std_class = ? ORDER BY std_fname, std_lname")
	rows, err := ds.db.Query(query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectStudents(rows)
}

func collectStudents(rows *sql.Rows) ([]models.Student, error) {
	var students []models.Student
	for rows.Next() {
		var s models.Student
		var mname sql.NullString
		var dob sql.NullString
		var class sql.NullInt64
		if err := rows.Scan(&s.ID, &s.FirstName, &mname, &s.LastName, &s.Gender,
			&dob, &class, &s.ProfilePic); err != nil {
			return nil, err
		}
		s.MiddleName = mname.String
		s.DateOfBirth = dob.String
		s.ClassLevel = int(class.Int64)
		students = append(students, s)
	}
	return students, rows.Err()
}
