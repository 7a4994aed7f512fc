package models

import (
	"errors"
	"strings"
)

var ErrInvalidLessonKey = errors.New("invalid lesson key")

// LessonKey identifies a lesson within the whole catalog. It is stored as
// the canonical "<course_id>/<lesson_id>" string in user_lessons.lesson_id
// and in session access lists. Lesson identifiers are opaque strings even
// when they look numeric.
type LessonKey struct {
	CourseID string
	LessonID string
}

func (k LessonKey) String() string {
	return k.CourseID + "/" + k.LessonID
}

func (k LessonKey) IsZero() bool {
	return k.CourseID == "" || k.LessonID == ""
}

// ParseLessonKey splits a stored composite key at the first separator.
// The lesson part keeps any further slashes as-is.
func ParseLessonKey(s string) (LessonKey, error) {
	course, lesson, found := strings.Cut(s, "/")
	if !found || course == "" || lesson == "" {
		return LessonKey{}, ErrInvalidLessonKey
	}
	return LessonKey{CourseID: course, LessonID: lesson}, nil
}
