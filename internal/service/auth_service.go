package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"courseroom/api/internal/config"
	"courseroom/api/internal/ids"
	"courseroom/api/internal/models"
	"courseroom/api/internal/repository"
	"courseroom/api/internal/security"
)

var (
	// Both login failures block the session equally; the login page shows
	// a distinct message for each, matching the legacy behavior.
	ErrUnknownUser   = errors.New("unknown user")
	ErrWrongPassword = errors.New("wrong password")

	ErrEmailTaken      = errors.New("email already registered")
	ErrMissingRequired = errors.New("missing required field")
)

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type EnrollmentStore interface {
	Upsert(ctx context.Context, email, courseID string) error
	ListCourseIDs(ctx context.Context, email string) ([]string, error)
}

type LessonAccessStore interface {
	Upsert(ctx context.Context, rec models.LessonAccess) error
	ListAccessibleKeys(ctx context.Context, email string) ([]string, error)
	Grades(ctx context.Context, email string) (map[string]string, error)
}

type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	DeleteByID(ctx context.Context, id string) error
}

type AuthService struct {
	users       UserStore
	enrollments EnrollmentStore
	access      LessonAccessStore
	sessions    SessionStore
	sessionTTL  time.Duration
	log         zerolog.Logger
}

func NewAuthService(
	users UserStore,
	enrollments EnrollmentStore,
	access LessonAccessStore,
	sessions SessionStore,
	sessionTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		enrollments: enrollments,
		access:      access,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		log:         log,
	}
}

// Login verifies the credential and freezes a session snapshot: the enrolled
// courses and the accessible composite lesson keys as they stand right now.
// Later admin changes do not reach the snapshot until the user logs in again.
// Email matching is case-sensitive against the stored value.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.Session{}, ErrUnknownUser
		}
		return models.Session{}, err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return models.Session{}, ErrWrongPassword
	}

	courses, err := s.enrollments.ListCourseIDs(ctx, user.Email)
	if err != nil {
		return models.Session{}, err
	}
	keys, err := s.access.ListAccessibleKeys(ctx, user.Email)
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{
		ID:        ids.New(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Courses:   courses,
		Access:    keys,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return models.Session{}, err
	}

	s.log.Info().
		Str("email", user.Email).
		Str("role", string(user.Role)).
		Int("courses", len(courses)).
		Int("access_keys", len(keys)).
		Msg("session created")

	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	err := s.sessions.DeleteByID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil
	}
	return err
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a student account. Admin accounts come only from the
// bootstrap config or another admin's assignment form.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return models.User{}, ErrMissingRequired
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         models.UserRoleStudent,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// EnsureAdmin creates the configured administrator account if it does not
// exist yet. An already existing account is left untouched, password
// included.
func (s *AuthService) EnsureAdmin(ctx context.Context, cfg config.AdminConfig) error {
	if cfg.Email == "" {
		return nil
	}

	if _, err := s.users.FindByEmail(ctx, cfg.Email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	if cfg.Password == "" {
		return errors.New("admin password required to bootstrap admin account")
	}

	hash, err := security.HashPassword(cfg.Password)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:           ids.New(),
		Name:         cfg.Name,
		Email:        cfg.Email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}

	s.log.Info().Str("email", cfg.Email).Msg("admin account created")
	return nil
}
