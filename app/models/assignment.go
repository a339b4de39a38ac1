package models

// TeacherAssignment records that a teacher teaches a subject to a class.
// TeacherName and SubjectName are filled from joins on reads and ignored on
// writes.
type TeacherAssignment struct {
	ID          int    `json:"id"`
	TeacherID   int    `json:"teacher_id"`
	TeacherName string `json:"teacher_name,omitempty"`
	SubjectID   int    `json:"subject_id"`
	SubjectName string `json:"subject_name,omitempty"`
	ClassLevel  int    `json:"class_level"`
}
