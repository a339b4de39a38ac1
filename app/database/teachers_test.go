package database

import (
	"errors"
	"testing"

	"github.com/IbnIssah/SchoolManagementSystem/app/models"
)

func TestTeacherLifecycle(t *testing.T) {
	ds := newTestDataSource(t)

	tch := &models.Teacher{
		Name:    "Mr. Owusu",
		Contact: "0244000000",
		Gender:  models.GenderMale,
		Email:   "owusu@example.com",
		Address: "Kumasi",
	}
	if err := AddTeacher(ds, tch); err != nil {
		t.Fatalf("AddTeacher: %v", err)
	}

	all, err := FetchAllTeachers(ds)
	if err != nil {
		t.Fatalf("FetchAllTeachers: %v", err)
	}
	if len(all) != 1 || all[0].Email != "owusu@example.com" {
		t.Fatalf("unexpected teachers: %+v", all)
	}

	got := all[0]
	got.Address = "Accra"
	if err := UpdateTeacher(ds, &got); err != nil {
		t.Fatalf("UpdateTeacher: %v", err)
	}
	all, _ = FetchAllTeachers(ds)
	if all[0].Address != "Accra" {
		t.Errorf("update not applied, got %q", all[0].Address)
	}

	if err := DeleteTeacher(ds, got.ID); err != nil {
		t.Fatalf("DeleteTeacher: %v", err)
	}
	if n := countRows(t, ds, "teachers"); n != 0 {
		t.Errorf("expected empty table after delete, got %d rows", n)
	}
}

func TestSearchTeachers(t *testing.T) {
	ds := newTestDataSource(t)
	for _, tch := range []models.Teacher{
		{ID: 1, Name: "Grace Mensah", Gender: models.GenderFemale, Email: "grace@school.edu"},
		{ID: 2, Name: "Daniel Mensah", Gender: models.GenderMale, Email: "daniel@school.edu"},
		{ID: 3, Name: "Esi Cudjoe", Gender: models.GenderFemale, Email: "esi@school.edu"},
	} {
		if err := AddTeachersBatch(ds, []models.Teacher{tch}); err != nil {
			t.Fatalf("seeding teacher: %v", err)
		}
	}

	found, err := SearchTeachers(ds, "mensah", TeacherByName)
	if err != nil {
		t.Fatalf("SearchTeachers: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("expected 2 Mensahs, got %d", len(found))
	}

	found, err = SearchTeachers(ds, "esi@", TeacherByEmail)
	if err != nil {
		t.Fatalf("SearchTeachers by email: %v", err)
	}
	if len(found) != 1 || found[0].Name != "Esi Cudjoe" {
		t.Errorf("unexpected email match: %+v", found)
	}

	if _, err := SearchTeachers(ds, "x", TeacherSearchField(-1)); !errors.Is(err, ErrInvalidSearchField) {
		t.Errorf("expected ErrInvalidSearchField, got %v", err)
	}
}

func TestAddTeachersBatchRollsBackOnCollision(t *testing.T) {
	ds := newTestDataSource(t)
	if err := AddTeachersBatch(ds, []models.Teacher{{ID: 5, Name: "Existing", Gender: models.GenderMale}}); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	err := AddTeachersBatch(ds, []models.Teacher{
		{ID: 6, Name: "New", Gender: models.GenderFemale},
		{ID: 5, Name: "Collides", Gender: models.GenderMale},
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if n := countRows(t, ds, "teachers"); n != 1 {
		t.Errorf("expected only the pre-existing teacher, got %d rows", n)
	}
}
