package models

import "time"

// Enrollment links a user to a course by email. Rows are only ever added.
type Enrollment struct {
	UserEmail string
	CourseID  string
	CreatedAt time.Time
}

// LessonAccess is the per-user grade/access record for one lesson. The pair
// (UserEmail, Key) is unique; a re-submission replaces grade and access
// wholesale. An empty Grade means the lesson was never graded (or the grade
// was cleared by a later submission).
type LessonAccess struct {
	UserEmail string
	Key       LessonKey
	Grade     string
	Access    bool
	UpdatedAt time.Time
}
