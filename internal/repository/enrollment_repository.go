package repository

import (
	"context"
)

type EnrollmentRepository struct {
	db DBTX
}

func NewEnrollmentRepository(db DBTX) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Upsert records an enrollment, leaving an existing pair untouched.
func (r *EnrollmentRepository) Upsert(ctx context.Context, email, courseID string) error {
	const query = `
		INSERT INTO user_courses (user_email, course_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_email, course_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, email, courseID)
	return err
}

// ListCourseIDs returns enrolled course ids in database return order; the
// cabinet preserves this order when rendering.
func (r *EnrollmentRepository) ListCourseIDs(ctx context.Context, email string) ([]string, error) {
	const query = `SELECT course_id FROM user_courses WHERE user_email = $1`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
