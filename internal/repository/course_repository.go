package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"courseroom/api/internal/models"
)

var ErrCourseNotFound = errors.New("course not found")

type CourseRepository struct {
	db DBTX
}

func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) GetCourse(ctx context.Context, id string) (models.Course, error) {
	const query = `SELECT id, title FROM courses WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	var course models.Course
	if err := row.Scan(&course.ID, &course.Title); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, err
	}
	return course, nil
}

func (r *CourseRepository) ListCourses(ctx context.Context) ([]models.Course, error) {
	const query = `SELECT id, title FROM courses ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Title); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, rows.Err()
}

func (r *CourseRepository) ListLessons(ctx context.Context, courseID string) ([]models.Lesson, error) {
	const query = `
		SELECT id, course_id, number, title
		FROM lessons
		WHERE course_id = $1
		ORDER BY number ASC
	`

	rows, err := r.db.Query(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		if err := rows.Scan(&lesson.ID, &lesson.CourseID, &lesson.Number, &lesson.Title); err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, rows.Err()
}
