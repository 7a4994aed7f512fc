package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"courseroom/api/internal/models"
	"courseroom/api/internal/repository"
)

type stubSource struct {
	courses map[string]models.Course
	lessons map[string][]models.Lesson
	calls   int
}

func (s *stubSource) GetCourse(_ context.Context, id string) (models.Course, error) {
	s.calls++
	course, ok := s.courses[id]
	if !ok {
		return models.Course{}, repository.ErrCourseNotFound
	}
	return course, nil
}

func (s *stubSource) ListLessons(_ context.Context, courseID string) ([]models.Lesson, error) {
	s.calls++
	return s.lessons[courseID], nil
}

// Without a redis client the cache must be a transparent pass-through.
func TestCatalogFallsBackWithoutRedis(t *testing.T) {
	source := &stubSource{
		courses: map[string]models.Course{"F1": {ID: "F1", Title: "Основы"}},
		lessons: map[string][]models.Lesson{"F1": {{ID: "lesson1", CourseID: "F1", Number: 1}}},
	}
	catalog := NewCatalog(source, nil, 0, zerolog.Nop())

	course, err := catalog.GetCourse(context.Background(), "F1")
	if err != nil {
		t.Fatalf("GetCourse() error = %v", err)
	}
	if course.Title != "Основы" {
		t.Errorf("GetCourse() = %+v", course)
	}

	lessons, err := catalog.ListLessons(context.Background(), "F1")
	if err != nil {
		t.Fatalf("ListLessons() error = %v", err)
	}
	if len(lessons) != 1 || lessons[0].ID != "lesson1" {
		t.Errorf("ListLessons() = %+v", lessons)
	}

	if _, err := catalog.GetCourse(context.Background(), "missing"); !errors.Is(err, repository.ErrCourseNotFound) {
		t.Errorf("GetCourse(missing) error = %v, want ErrCourseNotFound", err)
	}
}
