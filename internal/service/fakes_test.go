package service

import (
	"context"

	"courseroom/api/internal/models"
	"courseroom/api/internal/repository"
)

type fakeUserStore struct {
	users     map[string]models.User
	createErr error
	findErr   error
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[string]models.User)}
	for _, u := range users {
		f.users[u.Email] = u
	}
	return f
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	if f.findErr != nil {
		return models.User{}, f.findErr
	}
	user, ok := f.users[email]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

type fakeEnrollmentStore struct {
	byEmail   map[string][]string
	upsertErr error
	listErr   error
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{byEmail: make(map[string][]string)}
}

func (f *fakeEnrollmentStore) Upsert(_ context.Context, email, courseID string) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for _, id := range f.byEmail[email] {
		if id == courseID {
			return nil
		}
	}
	f.byEmail[email] = append(f.byEmail[email], courseID)
	return nil
}

func (f *fakeEnrollmentStore) ListCourseIDs(_ context.Context, email string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byEmail[email], nil
}

type fakeAccessStore struct {
	recs      map[string]map[string]models.LessonAccess
	upsertErr error
	listErr   error
	gradesErr error
}

func newFakeAccessStore() *fakeAccessStore {
	return &fakeAccessStore{recs: make(map[string]map[string]models.LessonAccess)}
}

func (f *fakeAccessStore) Upsert(_ context.Context, rec models.LessonAccess) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	byKey, ok := f.recs[rec.UserEmail]
	if !ok {
		byKey = make(map[string]models.LessonAccess)
		f.recs[rec.UserEmail] = byKey
	}
	byKey[rec.Key.String()] = rec
	return nil
}

func (f *fakeAccessStore) ListAccessibleKeys(_ context.Context, email string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var keys []string
	for key, rec := range f.recs[email] {
		if rec.Access {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *fakeAccessStore) Grades(_ context.Context, email string) (map[string]string, error) {
	if f.gradesErr != nil {
		return nil, f.gradesErr
	}
	grades := make(map[string]string)
	for key, rec := range f.recs[email] {
		grades[key] = rec.Grade
	}
	return grades, nil
}

type fakeSessionStore struct {
	sessions  map[string]models.Session
	createErr error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]models.Session)}
}

func (f *fakeSessionStore) Create(_ context.Context, session models.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionStore) DeleteByID(_ context.Context, id string) error {
	if _, ok := f.sessions[id]; !ok {
		return repository.ErrSessionNotFound
	}
	delete(f.sessions, id)
	return nil
}

type fakeCatalog struct {
	courses map[string]models.Course
	lessons map[string][]models.Lesson
	err     error
}

func (f *fakeCatalog) GetCourse(_ context.Context, id string) (models.Course, error) {
	if f.err != nil {
		return models.Course{}, f.err
	}
	course, ok := f.courses[id]
	if !ok {
		return models.Course{}, repository.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCatalog) ListLessons(_ context.Context, courseID string) ([]models.Lesson, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lessons[courseID], nil
}

// fakeTxRunner executes fn directly against the fakes and records whether
// the transaction would have committed.
type fakeTxRunner struct {
	stores    AssignmentStores
	calls     int
	committed int
}

func (f *fakeTxRunner) run(_ context.Context, fn func(stores AssignmentStores) error) error {
	f.calls++
	if err := fn(f.stores); err != nil {
		return err
	}
	f.committed++
	return nil
}
