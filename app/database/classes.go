package database

import (
	"database/sql"
	"fmt"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// FetchAllClasses returns every class level ordered by name.
func FetchAllClasses(ds *DataSource) ([]models.SchoolClass, error) {
	rows, err := ds.db.Query("SELECT class_id, class_name FROM class_levels ORDER BY class_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.SchoolClass
	for rows.Next() {
		var c models.SchoolClass
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// AddClass creates a class level. Class names are unique; a collision is
// reported as ErrDuplicateKey.
func AddClass(ds *DataSource, name string) error {
	_, err := ds.db.Exec(ds.Rebind("INSERT INTO class_levels(class_name) VALUES (?)"), name)
	if err != nil && isDuplicateKey(err) {
		return fmt.Errorf("%w: class %q", ErrDuplicateKey, name)
	}
	return err
}

// UpdateClass renames a class level.
func UpdateClass(ds *DataSource, c *models.SchoolClass) error {
	_, err := ds.db.Exec(ds.Rebind("UPDATE class_levels SET class_name = ? WHERE class_id = ?"), c.Name, c.ID)
	return err
}

// DeleteClass removes a class level, but only when nothing references it.
// While students or teacher assignments still point at the class the delete
// is refused with a DependencyConflictError carrying both counts, and the
// row is left untouched.
func DeleteClass(ds *DataSource, id int) error {
	students, err := CountStudentsInClass(ds, id)
	if err != nil {
		return err
	}
	assignments, err := CountAssignmentsForClass(ds, id)
	if err != nil {
		return err
	}
	if students > 0 || assignments > 0 {
		return &DependencyConflictError{Students: students, Assignments: assignments}
	}
	_, err = ds.db.Exec(ds.Rebind("DELETE FROM class_levels WHERE class_id = ?"), id)
	return err
}

// GetClassNameByID returns the display name of a class, or "" when the id is
// unknown.
func GetClassNameByID(ds *DataSource, id int) (string, error) {
	var name string
	err := ds.db.QueryRow(ds.Rebind("SELECT class_name FROM class_levels WHERE class_id = ?"), id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return name, err
}

// CountStudentsInClass counts the students assigned to one class level.
func CountStudentsInClass(ds *DataSource, id int) (int, error) {
	var n int
	err := ds.db.QueryRow(ds.Rebind("SELECT COUNT(*) FROM students WHERE std_class = ?"), id).Scan(&n)
	return n, err
}

// CountAssignmentsForClass counts the teacher assignments for one class
// level.
func CountAssignmentsForClass(ds *DataSource, id int) (int, error) {
	var n int
	err := ds.db.QueryRow(ds.Rebind("SELECT COUNT(*) FROM teacher_assignments WHERE class_level = ?"), id).Scan(&n)
	return n, err
}
