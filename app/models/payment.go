package models

// Payment is a school-fees payment made for a student. PaymentDate is text
// in YYYY-MM-DD form.
type Payment struct {
	ID           int     `json:"id"`
	StudentID    int     `json:"student_id"`
	Amount       float64 `json:"amount"`
	PaymentDate  string  `json:"payment_date"`
	Term         string  `json:"term,omitempty"`
	AcademicYear int     `json:"academic_year,omitempty"`
}
