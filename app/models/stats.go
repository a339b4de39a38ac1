package models

// DashboardStats holds the headline dashboard figures. They are computed
// fresh on each request, never persisted.
type DashboardStats struct {
	TotalStudents      int     `json:"total_students"`
	TotalTeachers      int     `json:"total_teachers"`
	TotalFeesCollected float64 `json:"total_fees_collected"`
}

// ClassCount is one row of the students-per-class breakdown, in the query's
// display order.
type ClassCount struct {
	ClassName string `json:"class_name"`
	Students  int    `json:"students"`
}

// MonthlyTotal is one row of the fees-per-month breakdown. Month is in
// YYYY-MM form and rows arrive in chronological order.
type MonthlyTotal struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}
