package database

import (
	"testing"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

func TestSaveAttendanceReplacesEarlierMark(t *testing.T) {
	ds := newTestDataSource(t)
	mustAddStudent(t, ds, 1, "Ama", "Asare")
	mustAddStudent(t, ds, 2, "Kojo", "Asare")

	day := "2024-03-11"
	err := SaveAttendance(ds, []models.AttendanceRecord{
		{StudentID: 1, Date: day, Status: models.StatusPresent},
		{StudentID: 2, Date: day, Status: models.StatusAbsent},
	})
	if err != nil {
		t.Fatalf("SaveAttendance: %v", err)
	}

	// Marking the same day again must replace, not append.
	err = SaveAttendance(ds, []models.AttendanceRecord{
		{StudentID: 2, Date: day, Status: models.StatusLate},
	})
	if err != nil {
		t.Fatalf("SaveAttendance second pass: %v", err)
	}

	got, err := GetAttendanceForDate(ds, day)
	if err != nil {
		t.Fatalf("GetAttendanceForDate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 marks for %s, got %d", day, len(got))
	}
	byStudent := map[int]models.AttendanceStatus{}
	for _, r := range got {
		if r.Date != day {
			t.Errorf("record date %q, want %q", r.Date, day)
		}
		byStudent[r.StudentID] = r.Status
	}
	if byStudent[1] != models.StatusPresent || byStudent[2] != models.StatusLate {
		t.Errorf("unexpected marks: %v", byStudent)
	}
}

func TestSaveAttendanceRollsBackWholeList(t *testing.T) {
	ds := newTestDataSource(t)
	mustAddStudent(t, ds, 1, "Ama", "Asare")

	err := SaveAttendance(ds, []models.AttendanceRecord{
		{StudentID: 1, Date: "2024-03-12", Status: models.StatusPresent},
		{StudentID: 42, Date: "2024-03-12", Status: models.StatusPresent},
	})
	if err == nil {
		t.Fatal("expected an error for the unknown student id")
	}
	if n := countRows(t, ds, "student_attendance"); n != 0 {
		t.Errorf("partial attendance persisted: %d rows", n)
	}
}

func TestGetAttendanceForStudent(t *testing.T) {
	ds := newTestDataSource(t)
	mustAddStudent(t, ds, 1, "Ama", "Asare")
	mustAddStudent(t, ds, 2, "Kojo", "Asare")

	err := SaveAttendance(ds, []models.AttendanceRecord{
		{StudentID: 1, Date: "2024-03-10", Status: models.StatusPresent},
		{StudentID: 1, Date: "2024-03-11", Status: models.StatusAbsent},
		{StudentID: 2, Date: "2024-03-11", Status: models.StatusPresent},
	})
	if err != nil {
		t.Fatalf("SaveAttendance: %v", err)
	}

	got, err := GetAttendanceForStudent(ds, 1)
	if err != nil {
		t.Fatalf("GetAttendanceForStudent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records for student 1, got %d", len(got))
	}
	for _, r := range got {
		if r.StudentID != 1 {
			t.Errorf("record for wrong student: %+v", r)
		}
		if len(r.Date) != 10 {
			t.Errorf("date %q is not in YYYY-MM-DD form", r.Date)
		}
	}
}

func TestSaveAttendanceEmptyList(t *testing.T) {
	ds := newTestDataSource(t)
	if err := SaveAttendance(ds, nil); err != nil {
		t.Fatalf("empty save should be a no-op, got %v", err)
	}
}
