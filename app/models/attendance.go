package models

// AttendanceRecord is one student's attendance mark for one day. The pair
// (StudentID, Date) identifies the record: saving again for the same pair
// replaces the earlier mark. Date is text in YYYY-MM-DD form.
type AttendanceRecord struct {
	ID        int              `json:"id,omitempty"`
	StudentID int              `json:"student_id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
}
