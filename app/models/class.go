package models

// SchoolClass is a class level, e.g. "JHS 1". Students and teacher
// assignments reference it by id.
type SchoolClass struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
