package database

import (
	"database/sql"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

const assignmentSelect = `
	SELECT
	  ta.assignment_id,
	  ta.teacher_id,
	  t.tch_name,
	  ta.subject_id,
	  s.subject_name,
	  ta.class_level
	FROM teacher_assignments ta
	JOIN teachers t ON ta.teacher_id = t.tch_id
	JOIN subjects s ON ta.subject_id = s.subject_id`

// GetTeacherAssignments lists every assignment with the teacher and subject
// names joined in.
func GetTeacherAssignments(ds *DataSource) ([]models.TeacherAssignment, error) {
	rows, err := ds.db.Query(assignmentSelect + " ORDER BY t.tch_name, ta.class_level")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// GetAssignmentsForTeacher lists one teacher's assignments.
func GetAssignmentsForTeacher(ds *DataSource, teacherID int) ([]models.TeacherAssignment, error) {
	query := ds.Rebind(assignmentSelect + " WHERE ta.teacher_id = ? ORDER BY ta.class_level, s.subject_name")
	rows, err := ds.db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// GetAssignmentsForClass lists the assignments taught to one class level.
func GetAssignmentsForClass(ds *DataSource, classLevel int) ([]models.TeacherAssignment, error) {
	query := ds.Rebind(assignmentSelect + " WHERE ta.class_level = ? ORDER BY s.subject_name")
	rows, err := ds.db.Query(query, classLevel)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAssignments(rows)
}

// AddTeacherAssignment records that a teacher teaches a subject to a class.
func AddTeacherAssignment(ds *DataSource, teacherID, subjectID, classLevel int) error {
	query := ds.Rebind("INSERT INTO teacher_assignments(teacher_id, subject_id, class_level) VALUES (?,?,?)")
	_, err := ds.db.Exec(query, teacherID, subjectID, classLevel)
	return err
}

// DeleteTeacherAssignment removes an assignment.
func DeleteTeacherAssignment(ds *DataSource, id int) error {
	_, err := ds.db.Exec(ds.Rebind("DELETE FROM teacher_assignments WHERE assignment_id = ?"), id)
	return err
}

func collectAssignments(rows *sql.Rows) ([]models.TeacherAssignment, error) {
	var assignments []models.TeacherAssignment
	for rows.Next() {
		var a models.TeacherAssignment
		if err := rows.Scan(&a.ID, &a.TeacherID, &a.TeacherName, &a.SubjectID, &a.SubjectName, &a.ClassLevel); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}
