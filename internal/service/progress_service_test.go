package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"courseroom/api/internal/models"
)

func lessonsFor(courseID string, ids ...string) []models.Lesson {
	lessons := make([]models.Lesson, 0, len(ids))
	for i, id := range ids {
		lessons = append(lessons, models.Lesson{ID: id, CourseID: courseID, Number: i + 1})
	}
	return lessons
}

func TestCabinetProgress(t *testing.T) {
	ctx := context.Background()
	email := "vasya@x.com"

	catalog := &fakeCatalog{
		courses: map[string]models.Course{
			"F1": {ID: "F1", Title: "Основы"},
			"F2": {ID: "F2", Title: "Продвинутый"},
			"F3": {ID: "F3", Title: "Пустой"},
		},
		lessons: map[string][]models.Lesson{
			"F1": lessonsFor("F1", "lesson1", "lesson2"),
			"F2": lessonsFor("F2", "lesson1", "lesson2", "lesson3"),
		},
	}

	access := newFakeAccessStore()
	seed := []models.LessonAccess{
		{UserEmail: email, Key: models.LessonKey{CourseID: "F1", LessonID: "lesson1"}, Grade: "B", Access: false},
		{UserEmail: email, Key: models.LessonKey{CourseID: "F2", LessonID: "lesson1"}, Grade: "A", Access: true},
		{UserEmail: email, Key: models.LessonKey{CourseID: "F2", LessonID: "lesson2"}, Grade: "", Access: true},
	}
	for _, rec := range seed {
		if err := access.Upsert(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}

	svc := NewProgressService(catalog, access, zerolog.Nop())

	session := models.Session{
		Email:   email,
		Courses: []string{"F2", "F1", "F3"},
		Access:  []string{"F2/lesson1", "F2/lesson2"},
	}

	courses, err := svc.Cabinet(ctx, session)
	if err != nil {
		t.Fatalf("Cabinet() error = %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("Cabinet() returned %d courses, want 3", len(courses))
	}

	// snapshot order, not catalog order
	if courses[0].ID != "F2" || courses[1].ID != "F1" || courses[2].ID != "F3" {
		t.Errorf("Cabinet() course order = %s,%s,%s", courses[0].ID, courses[1].ID, courses[2].ID)
	}

	f2 := courses[0]
	if f2.Completed != 1 || f2.Total != 3 || f2.Progress != 33 {
		t.Errorf("F2 progress = %d/%d (%d%%), want 1/3 (33%%)", f2.Completed, f2.Total, f2.Progress)
	}
	if !f2.Lessons[0].Access || !f2.Lessons[1].Access || f2.Lessons[2].Access {
		t.Errorf("F2 access flags = %v,%v,%v", f2.Lessons[0].Access, f2.Lessons[1].Access, f2.Lessons[2].Access)
	}
	if f2.Lessons[0].Grade != "A" || f2.Lessons[1].Grade != "" {
		t.Errorf("F2 grades = %q,%q", f2.Lessons[0].Grade, f2.Lessons[1].Grade)
	}

	// a grade counts toward completion even without current access
	f1 := courses[1]
	if f1.Completed != 1 || f1.Total != 2 || f1.Progress != 50 {
		t.Errorf("F1 progress = %d/%d (%d%%), want 1/2 (50%%)", f1.Completed, f1.Total, f1.Progress)
	}
	if f1.Lessons[0].Access {
		t.Error("F1 lesson1 should be inaccessible in this snapshot")
	}

	f3 := courses[2]
	if f3.Total != 0 || f3.Progress != 0 {
		t.Errorf("F3 progress = %d%% with %d lessons, want 0%% with 0", f3.Progress, f3.Total)
	}
}

func TestCabinetMissingCourseTitle(t *testing.T) {
	catalog := &fakeCatalog{courses: map[string]models.Course{}, lessons: map[string][]models.Lesson{}}
	svc := NewProgressService(catalog, newFakeAccessStore(), zerolog.Nop())

	session := models.Session{Email: "vasya@x.com", Courses: []string{"X9"}}
	courses, err := svc.Cabinet(context.Background(), session)
	if err != nil {
		t.Fatalf("Cabinet() error = %v", err)
	}
	if len(courses) != 1 || courses[0].Title != "Курс X9" {
		t.Errorf("Cabinet() = %+v, want synthetic title", courses)
	}
}

func TestCabinetRounding(t *testing.T) {
	tests := []struct {
		name      string
		graded    int
		total     int
		want      int
	}{
		{name: "two thirds", graded: 2, total: 3, want: 67},
		{name: "one third", graded: 1, total: 3, want: 33},
		{name: "one of seven", graded: 1, total: 7, want: 14},
		{name: "all done", graded: 4, total: 4, want: 100},
		{name: "none done", graded: 0, total: 5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			email := "u@x.com"

			ids := make([]string, tt.total)
			for i := range ids {
				ids[i] = "lesson" + string(rune('a'+i))
			}
			catalog := &fakeCatalog{
				courses: map[string]models.Course{"C": {ID: "C", Title: "C"}},
				lessons: map[string][]models.Lesson{"C": lessonsFor("C", ids...)},
			}

			access := newFakeAccessStore()
			for i := 0; i < tt.graded; i++ {
				rec := models.LessonAccess{
					UserEmail: email,
					Key:       models.LessonKey{CourseID: "C", LessonID: ids[i]},
					Grade:     "5",
				}
				if err := access.Upsert(ctx, rec); err != nil {
					t.Fatal(err)
				}
			}

			svc := NewProgressService(catalog, access, zerolog.Nop())
			courses, err := svc.Cabinet(ctx, models.Session{Email: email, Courses: []string{"C"}})
			if err != nil {
				t.Fatalf("Cabinet() error = %v", err)
			}
			if courses[0].Progress != tt.want {
				t.Errorf("progress = %d, want %d", courses[0].Progress, tt.want)
			}
		})
	}
}

func TestCabinetStoreFailureAborts(t *testing.T) {
	boom := errors.New("db down")

	t.Run("grades failure", func(t *testing.T) {
		access := newFakeAccessStore()
		access.gradesErr = boom
		svc := NewProgressService(&fakeCatalog{}, access, zerolog.Nop())

		_, err := svc.Cabinet(context.Background(), models.Session{Email: "u@x.com", Courses: []string{"C"}})
		if !errors.Is(err, boom) {
			t.Fatalf("Cabinet() error = %v, want %v", err, boom)
		}
	})

	t.Run("catalog failure", func(t *testing.T) {
		catalog := &fakeCatalog{err: boom}
		svc := NewProgressService(catalog, newFakeAccessStore(), zerolog.Nop())

		courses, err := svc.Cabinet(context.Background(), models.Session{Email: "u@x.com", Courses: []string{"C"}})
		if !errors.Is(err, boom) {
			t.Fatalf("Cabinet() error = %v, want %v", err, boom)
		}
		if courses != nil {
			t.Error("Cabinet() returned partial results on failure")
		}
	})
}
