package models

// Course and Lesson are read-only reference data. The catalog is managed
// out of band (migrations or operator tooling), never through the app.

type Course struct {
	ID    string
	Title string
}

type Lesson struct {
	ID       string
	CourseID string
	Number   int
	Title    string
}

func (l Lesson) Key() LessonKey {
	return LessonKey{CourseID: l.CourseID, LessonID: l.ID}
}
