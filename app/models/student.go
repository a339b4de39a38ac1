package models

// Student is an enrolled student. ClassLevel references a SchoolClass and is
// zero while the student is unassigned. Dates of birth are kept as text in
// YYYY-MM-DD form.
type Student struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name,omitempty"`
	LastName    string `json:"last_name"`
	Gender      Gender `json:"gender"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	ClassLevel  int    `json:"class_level,omitempty"`
	ProfilePic  []byte `json:"profile_pic,omitempty"`
}

// FullName returns the display name with the optional middle name folded in.
func (s Student) FullName() string {
	if s.MiddleName == "" {
		return s.FirstName + " " + s.LastName
	}
	return s.FirstName + " " + s.MiddleName + " " + s.LastName
}
