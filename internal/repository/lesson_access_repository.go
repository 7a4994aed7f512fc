package repository

import (
	"context"

	"courseroom/api/internal/models"
)

type LessonAccessRepository struct {
	db DBTX
}

func NewLessonAccessRepository(db DBTX) *LessonAccessRepository {
	return &LessonAccessRepository{db: db}
}

// Upsert replaces grade and access wholesale on conflict. A submission with
// an empty grade clears any previously recorded grade.
func (r *LessonAccessRepository) Upsert(ctx context.Context, rec models.LessonAccess) error {
	const query = `
		INSERT INTO user_lessons (user_email, lesson_id, grade, access, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_email, lesson_id)
		DO UPDATE SET
			grade = EXCLUDED.grade,
			access = EXCLUDED.access,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, rec.UserEmail, rec.Key.String(), rec.Grade, rec.Access)
	return err
}

// ListAccessibleKeys returns the composite keys the user may open, exactly
// the rows with access = true.
func (r *LessonAccessRepository) ListAccessibleKeys(ctx context.Context, email string) ([]string, error) {
	const query = `SELECT lesson_id FROM user_lessons WHERE user_email = $1 AND access = TRUE`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Grades returns composite key -> grade for every record of the user,
// including empty grades. Grading is independent of the access flag.
func (r *LessonAccessRepository) Grades(ctx context.Context, email string) (map[string]string, error) {
	const query = `SELECT lesson_id, grade FROM user_lessons WHERE user_email = $1`

	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := make(map[string]string)
	for rows.Next() {
		var key, grade string
		if err := rows.Scan(&key, &grade); err != nil {
			return nil, err
		}
		grades[key] = grade
	}
	return grades, rows.Err()
}
