package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// TeacherSearchField selects which column SearchTeachers matches against.
type TeacherSearchField int

const (
	TeacherByID TeacherSearchField = iota
	TeacherByName
	TeacherByContact
	TeacherByEmail
	TeacherByAddress
)

func (f TeacherSearchField) column() (string, error) {
	switch f {
	case TeacherByID:
		return "tch_id", nil
	case TeacherByName:
		return "tch_name", nil
	case TeacherByContact:
		return "tch_contact", nil
	case TeacherByEmail:
		return "tch_email", nil
	case TeacherByAddress:
		return "tch_address", nil
	}
	return "", fmt.Errorf("%w: teacher selector %d", ErrInvalidSearchField, int(f))
}

const teacherColumns = "tch_id, tch_name, tch_contact, tch_gender, tch_email, tch_address, profile_pic"

// AddTeacher registers a new teacher. The id is assigned by the store.
func AddTeacher(ds *DataSource, t *models.Teacher) error {
	query := ds.Rebind(`INSERT INTO teachers(tch_name, tch_contact, tch_gender, tch_email, tch_address, profile_pic)
		VALUES (?,?,?,?,?,?)`)
	_, err := ds.db.Exec(query, t.Name, nullable(t.Contact), t.Gender,
		nullable(t.Email), nullable(t.Address), t.ProfilePic)
	return err
}

// AddTeachersBatch inserts teachers with their existing ids in one prepared
// statement inside one transaction, rolling the whole batch back on any
// failure. A primary key collision is reported as ErrDuplicateKey.
func AddTeachersBatch(ds *DataSource, teachers []models.Teacher) error {
	if len(teachers) == 0 {
		return nil
	}
	tx, err := ds.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(ds.Rebind(`INSERT INTO teachers(tch_id, tch_name, tch_contact, tch_gender, tch_email, tch_address, profile_pic)
		VALUES (?,?,?,?,?,?,?)`))
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for i := range teachers {
		t := &teachers[i]
		if _, err := stmt.Exec(t.ID, t.Name, nullable(t.Contact), t.Gender,
			nullable(t.Email), nullable(t.Address), t.ProfilePic); err != nil {
			tx.Rollback()
			if isDuplicateKey(err) {
				return fmt.Errorf("%w: teacher id %d", ErrDuplicateKey, t.ID)
			}
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	// The ids were supplied explicitly; keep the serial sequence ahead of
	// them so AddTeacher keeps working afterwards.
	return resyncSerial(ds, "teachers", "tch_id")
}

// UpdateTeacher rewrites every mutable field of an existing teacher.
func UpdateTeacher(ds *DataSource, t *models.Teacher) error {
	query := ds.Rebind(`UPDATE teachers SET tch_name = ?, tch_contact = ?, tch_gender = ?, tch_email = ?, tch_address = ?, profile_pic = ?
		WHERE tch_id = ?`)
	_, err := ds.db.Exec(query, t.Name, nullable(t.Contact), t.Gender,
		nullable(t.Email), nullable(t.Address), t.ProfilePic, t.ID)
	return err
}

// DeleteTeacher removes a teacher.
func DeleteTeacher(ds *DataSource, id int) error {
	_, err := ds.db.Exec(ds.Rebind("DELETE FROM teachers WHERE tch_id = ?"), id)
	return err
}

// FetchAllTeachers returns every teacher ordered by name.
func FetchAllTeachers(ds *DataSource) ([]models.Teacher, error) {
	rows, err := ds.db.Query("SELECT " + teacherColumns + " FROM teachers ORDER BY tch_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTeachers(rows)
}

// SearchTeachers performs a case-insensitive substring match on the selected
// field.
func SearchTeachers(ds *DataSource, term string, field TeacherSearchField) ([]models.Teacher, error) {
	col, err := field.column()
	if err != nil {
		return nil, err
	}
	query := ds.Rebind(fmt.Sprintf("SELECT %s FROM teachers WHERE LOWER(CAST(%s AS TEXT)) LIKE ?", teacherColumns, col))
	rows, err := ds.db.Query(query, "%"+strings.ToLower(term)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTeachers(rows)
}

func collectTeachers(rows *sql.Rows) ([]models.Teacher, error) {
	var teachers []models.Teacher
	for rows.Next() {
		var t models.Teacher
		var contact, email, address sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &contact, &t.Gender, &email, &address, &t.ProfilePic); err != nil {
			return nil, err
		}
		t.Contact = contact.String
		t.Email = email.String
		t.Address = address.String
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}
