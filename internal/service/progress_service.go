package service

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"

	"courseroom/api/internal/models"
	"courseroom/api/internal/repository"
)

type Catalog interface {
	GetCourse(ctx context.Context, id string) (models.Course, error)
	ListLessons(ctx context.Context, courseID string) ([]models.Lesson, error)
}

type LessonView struct {
	ID     string
	Number int
	Title  string
	Key    string
	Access bool
	Grade  string
}

type CourseProgress struct {
	ID        string
	Title     string
	Lessons   []LessonView
	Completed int
	Total     int
	Progress  int
}

type ProgressService struct {
	catalog Catalog
	access  LessonAccessStore
	log     zerolog.Logger
}

func NewProgressService(catalog Catalog, access LessonAccessStore, log zerolog.Logger) *ProgressService {
	return &ProgressService{
		catalog: catalog,
		access:  access,
		log:     log,
	}
}

// Cabinet builds the per-course progress view from the frozen session
// snapshot and the lesson catalog. Courses come out in snapshot order. A
// course missing from the catalog gets a synthetic title instead of failing
// the page; any store error aborts the whole listing.
func (s *ProgressService) Cabinet(ctx context.Context, session models.Session) ([]CourseProgress, error) {
	grades, err := s.access.Grades(ctx, session.Email)
	if err != nil {
		return nil, err
	}

	result := make([]CourseProgress, 0, len(session.Courses))
	for _, courseID := range session.Courses {
		title := ""
		course, err := s.catalog.GetCourse(ctx, courseID)
		switch {
		case err == nil:
			title = course.Title
		case errors.Is(err, repository.ErrCourseNotFound):
			title = "Курс " + courseID
		default:
			return nil, err
		}

		lessons, err := s.catalog.ListLessons(ctx, courseID)
		if err != nil {
			return nil, err
		}

		views := make([]LessonView, 0, len(lessons))
		completed := 0
		for _, lesson := range lessons {
			key := lesson.Key()
			grade := grades[key.String()]
			if grade != "" {
				// a recorded grade counts even when access was later revoked
				completed++
			}
			views = append(views, LessonView{
				ID:     lesson.ID,
				Number: lesson.Number,
				Title:  lesson.Title,
				Key:    key.String(),
				Access: session.HasAccess(key),
				Grade:  grade,
			})
		}

		total := len(lessons)
		progress := 0
		if total > 0 {
			progress = int(math.Round(100 * float64(completed) / float64(total)))
		}

		result = append(result, CourseProgress{
			ID:        courseID,
			Title:     title,
			Lessons:   views,
			Completed: completed,
			Total:     total,
			Progress:  progress,
		})
	}

	return result, nil
}
