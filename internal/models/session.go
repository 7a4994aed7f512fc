package models

import "time"

// Session is the server-side state behind the opaque cookie identifier.
// Courses and Access are frozen at login time and stay stale until the next
// login, even if an admin reassigns lessons in between.
type Session struct {
	ID        string
	Email     string
	Name      string
	Role      UserRole
	Courses   []string
	Access    []string
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (s Session) HasAccess(key LessonKey) bool {
	want := key.String()
	for _, k := range s.Access {
		if k == want {
			return true
		}
	}
	return false
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
