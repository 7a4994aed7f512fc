package models

import (
	"errors"
	"testing"
)

func TestParseLessonKey(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    LessonKey
		wantErr bool
	}{
		{name: "plain", raw: "F1/lesson1", want: LessonKey{CourseID: "F1", LessonID: "lesson1"}},
		{name: "numeric-looking lesson stays a string", raw: "F1/01", want: LessonKey{CourseID: "F1", LessonID: "01"}},
		{name: "extra slashes belong to the lesson", raw: "F1/a/b", want: LessonKey{CourseID: "F1", LessonID: "a/b"}},
		{name: "no separator", raw: "F1lesson1", wantErr: true},
		{name: "empty course", raw: "/lesson1", wantErr: true},
		{name: "empty lesson", raw: "F1/", wantErr: true},
		{name: "empty string", raw: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLessonKey(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLessonKey) {
					t.Fatalf("ParseLessonKey(%q) error = %v, want ErrInvalidLessonKey", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLessonKey(%q) error = %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseLessonKey(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
			if got.String() != tt.raw {
				t.Errorf("round trip = %q, want %q", got.String(), tt.raw)
			}
		})
	}
}

func TestSessionHasAccess(t *testing.T) {
	session := Session{Access: []string{"F1/lesson1", "F2/lesson3"}}

	tests := []struct {
		name string
		key  LessonKey
		want bool
	}{
		{name: "present", key: LessonKey{CourseID: "F1", LessonID: "lesson1"}, want: true},
		{name: "other course same lesson", key: LessonKey{CourseID: "F2", LessonID: "lesson1"}, want: false},
		{name: "absent", key: LessonKey{CourseID: "F3", LessonID: "lesson1"}, want: false},
		{name: "no partial match", key: LessonKey{CourseID: "F1", LessonID: "lesson"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := session.HasAccess(tt.key); got != tt.want {
				t.Errorf("HasAccess(%v) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}
