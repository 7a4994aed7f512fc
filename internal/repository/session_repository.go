package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"courseroom/api/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository struct {
	db DBTX
}

func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session models.Session) error {
	const query = `
		INSERT INTO sessions (id, user_email, name, role, courses, access, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), $7)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.Email,
		session.Name,
		session.Role,
		session.Courses,
		session.Access,
		session.ExpiresAt,
	)
	return err
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (models.Session, error) {
	const query = `
		SELECT id, user_email, name, role, courses, access, created_at, expires_at
		FROM sessions WHERE id = $1
	`

	row := r.db.QueryRow(ctx, query, id)
	var session models.Session
	if err := row.Scan(
		&session.ID,
		&session.Email,
		&session.Name,
		&session.Role,
		&session.Courses,
		&session.Access,
		&session.CreatedAt,
		&session.ExpiresAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, err
	}
	return session, nil
}

func (r *SessionRepository) DeleteByID(ctx context.Context, id string) error {
	const query = `DELETE FROM sessions WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	const query = `DELETE FROM sessions WHERE expires_at <= NOW()`

	cmd, err := r.db.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
