package database

import (
	"path/filepath"
	"testing"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
	"github.com/IbnIssah/SchoolManagementSystem/app/settings"
)

func newTestSettings(t *testing.T) *settings.Store {
	t.Helper()
	st, err := settings.Open(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatalf("settings.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestRunTransferCopiesRowsAndKeepsIDs(t *testing.T) {
	src := newTestDataSource(t)
	dst := newTestDataSource(t)
	st := newTestSettings(t)

	ids := []int{3, 7, 12, 19, 40}
	for _, id := range ids {
		mustAddStudent(t, src, id, "Student", "Here")
	}
	if err := AddTeachersBatch(src, []models.Teacher{{ID: 2, Name: "Ms. Addo", Gender: models.GenderFemale}}); err != nil {
		t.Fatalf("seeding teacher: %v", err)
	}
	if err := CreateAdmin(src, &models.Admin{Name: "Alice", Username: "alice"}, "secret1"); err != nil {
		t.Fatalf("seeding admin: %v", err)
	}
	if err := SaveAttendance(src, []models.AttendanceRecord{
		{StudentID: 3, Date: "2024-03-11", Status: models.StatusPresent},
	}); err != nil {
		t.Fatalf("seeding attendance: %v", err)
	}
	if err := AddStudentPayment(src, &models.Payment{StudentID: 7, Amount: 120, PaymentDate: "2024-03-01"}); err != nil {
		t.Fatalf("seeding payment: %v", err)
	}

	if err := runTransfer(src.Pool(), dst, st); err != nil {
		t.Fatalf("runTransfer: %v", err)
	}

	students, err := FetchAllStudents(dst)
	if err != nil {
		t.Fatalf("FetchAllStudents: %v", err)
	}
	if len(students) != len(ids) {
		t.Fatalf("expected %d students, got %d", len(ids), len(students))
	}
	gotIDs := map[int]bool{}
	for _, s := range students {
		gotIDs[s.ID] = true
	}
	for _, id := range ids {
		if !gotIDs[id] {
			t.Errorf("student id %d not preserved", id)
		}
	}

	if n := countRows(t, dst, "teachers"); n != 1 {
		t.Errorf("teachers: %d rows, want 1", n)
	}
	if n := countRows(t, dst, "admin"); n != 1 {
		t.Errorf("admin: %d rows, want 1", n)
	}
	if n := countRows(t, dst, "student_attendance"); n != 1 {
		t.Errorf("student_attendance: %d rows, want 1", n)
	}
	if n := countRows(t, dst, "student_payments"); n != 1 {
		t.Errorf("student_payments: %d rows, want 1", n)
	}

	if !st.Bool(MigratedFlag, false) {
		t.Error("completion flag not recorded")
	}
}

func TestDefaultIDInsertsWorkAfterTransfer(t *testing.T) {
	src := newTestDataSource(t)
	dst := newTestDataSource(t)
	st := newTestSettings(t)

	for _, id := range []int{3, 7, 12, 19, 40} {
		mustAddStudent(t, src, id, "Student", "Here")
	}
	if err := runTransfer(src.Pool(), dst, st); err != nil {
		t.Fatalf("runTransfer: %v", err)
	}

	// The copy kept the original ids; a plain enrolment afterwards must
	// draw a fresh id instead of colliding with a migrated one.
	next := &models.Student{FirstName: "New", LastName: "Arrival", Gender: models.GenderFemale}
	if err := AddStudent(dst, next); err != nil {
		t.Fatalf("AddStudent after transfer: %v", err)
	}
	if n := countRows(t, dst, "students"); n != 6 {
		t.Errorf("expected 6 students, got %d", n)
	}
}

func TestSerialResyncQuery(t *testing.T) {
	got := serialResyncQuery("students", "std_id")
	want := "SELECT setval(pg_get_serial_sequence('students', 'std_id'), COALESCE(MAX(std_id), 0) + 1, false) FROM students"
	if got != want {
		t.Errorf("serialResyncQuery:\n got %q\nwant %q", got, want)
	}
}

func TestResyncSerialIsNoOpOnSQLite(t *testing.T) {
	ds := newTestDataSource(t)
	if err := resyncSerial(ds, "students", "std_id"); err != nil {
		t.Fatalf("resyncSerial on sqlite: %v", err)
	}
}

func TestRunTransferSkipsNonEmptyDestination(t *testing.T) {
	src := newTestDataSource(t)
	dst := newTestDataSource(t)
	st := newTestSettings(t)

	mustAddStudent(t, src, 1, "Ama", "Asare")
	mustAddStudent(t, src, 2, "Kojo", "Asare")
	mustAddStudent(t, dst, 99, "Already", "Here")

	if err := runTransfer(src.Pool(), dst, st); err != nil {
		t.Fatalf("runTransfer: %v", err)
	}
	if n := countRows(t, dst, "students"); n != 1 {
		t.Errorf("non-empty destination gained rows: %d", n)
	}
	if !st.Bool(MigratedFlag, false) {
		t.Error("flag should be set so the copy is never retried")
	}
}

func TestRunTransferSecondRunInsertsNothing(t *testing.T) {
	src := newTestDataSource(t)
	dst := newTestDataSource(t)
	st := newTestSettings(t)

	mustAddStudent(t, src, 1, "Ama", "Asare")

	if err := runTransfer(src.Pool(), dst, st); err != nil {
		t.Fatalf("first runTransfer: %v", err)
	}
	if err := runTransfer(src.Pool(), dst, st); err != nil {
		t.Fatalf("second runTransfer: %v", err)
	}
	if n := countRows(t, dst, "students"); n != 1 {
		t.Errorf("second run duplicated rows: %d students", n)
	}
}
