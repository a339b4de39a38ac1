package database

import (
	"fmt"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

// FetchAllSubjects returns every subject ordered by name.
func FetchAllSubjects(ds *DataSource) ([]models.Subject, error) {
	rows, err := ds.db.Query("SELECT subject_id, subject_name FROM subjects ORDER BY subject_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []models.Subject
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// AddSubject creates a subject. Subject names are unique; a collision is
// reported as ErrDuplicateKey.
func AddSubject(ds *DataSource, name string) error {
	_, err := ds.db.Exec(ds.Rebind("INSERT INTO subjects(subject_name) VALUES (?)"), name)
	if err != nil && isDuplicateKey(err) {
		return fmt.Errorf("%w: subject %q", ErrDuplicateKey, name)
	}
	return err
}

// UpdateSubject renames a subject.
func UpdateSubject(ds *DataSource, s *models.Subject) error {
	_, err := ds.db.Exec(ds.Rebind("UPDATE subjects SET subject_name = ? WHERE subject_id = ?"), s.Name, s.ID)
	return err
}

// DeleteSubject removes a subject.
func DeleteSubject(ds *DataSource, id int) error {
	_, err := ds.db.Exec(ds.Rebind("DELETE FROM subjects WHERE subject_id = ?"), id)
	return err
}
