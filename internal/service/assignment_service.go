package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"courseroom/api/internal/ids"
	"courseroom/api/internal/models"
	"courseroom/api/internal/repository"
	"courseroom/api/internal/security"
)

var (
	ErrEmailRequired    = errors.New("email required")
	ErrCourseRequired   = errors.New("course required")
	ErrLessonRequired   = errors.New("lesson required")
	ErrPasswordRequired = errors.New("password required for new user")
)

// AssignmentStores are the repositories an assignment mutates, bound to a
// single transaction by the TxRunner.
type AssignmentStores struct {
	Users       UserStore
	Enrollments EnrollmentStore
	Access      LessonAccessStore
}

// TxRunner executes fn atomically: either every store call inside fn is
// committed or none is.
type TxRunner func(ctx context.Context, fn func(stores AssignmentStores) error) error

type AssignmentInput struct {
	Email    string
	Name     string
	Password string
	CourseID string
	LessonID string
	Grade    string
	// Access is the raw form value; "1" grants access, anything else
	// revokes it.
	Access string
}

type AssignmentService struct {
	runTx TxRunner
	log   zerolog.Logger
}

func NewAssignmentService(runTx TxRunner, log zerolog.Logger) *AssignmentService {
	return &AssignmentService{runTx: runTx, log: log}
}

// Apply upserts the user, the enrollment and the lesson-access record in one
// transaction. Applying the same input twice leaves the same rows as
// applying it once. The lesson-access conflict replaces grade and access
// wholesale, so a re-submission with an empty grade erases the old one.
func (s *AssignmentService) Apply(ctx context.Context, input AssignmentInput) error {
	input.Email = strings.TrimSpace(input.Email)
	input.CourseID = strings.TrimSpace(input.CourseID)
	input.LessonID = strings.TrimSpace(input.LessonID)

	if input.Email == "" {
		return ErrEmailRequired
	}
	if input.CourseID == "" {
		return ErrCourseRequired
	}
	if input.LessonID == "" {
		return ErrLessonRequired
	}

	key := models.LessonKey{CourseID: input.CourseID, LessonID: input.LessonID}
	grant := input.Access == "1"

	err := s.runTx(ctx, func(stores AssignmentStores) error {
		if _, err := stores.Users.FindByEmail(ctx, input.Email); err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				return err
			}
			if input.Password == "" {
				return ErrPasswordRequired
			}
			hash, err := security.HashPassword(input.Password)
			if err != nil {
				return err
			}
			user := models.User{
				ID:           ids.New(),
				Name:         input.Name,
				Email:        input.Email,
				PasswordHash: hash,
				Role:         models.UserRoleStudent,
			}
			if err := stores.Users.Create(ctx, user); err != nil {
				return err
			}
		}

		if err := stores.Enrollments.Upsert(ctx, input.Email, input.CourseID); err != nil {
			return err
		}

		return stores.Access.Upsert(ctx, models.LessonAccess{
			UserEmail: input.Email,
			Key:       key,
			Grade:     input.Grade,
			Access:    grant,
		})
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("email", input.Email).
		Str("lesson", key.String()).
		Bool("access", grant).
		Msg("assignment applied")
	return nil
}
