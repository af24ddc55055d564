package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmadblivin/studybuddy/pkg/assignment"
)

// AssignmentRepository хранит задания, привязанные к email владельца.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) (*AssignmentRepository, error) {
	r := &AssignmentRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AssignmentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS assignments (
	id UUID PRIMARY KEY,
	owner_email TEXT NOT NULL,
	title TEXT NOT NULL,
	due TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assignments_owner ON assignments(owner_email);
`)
	return err
}

func (r *AssignmentRepository) Create(ctx context.Context, a assignment.Assignment) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO assignments (id, owner_email, title, due, created_at)
VALUES ($1, $2, $3, $4, $5)
`, a.ID, a.OwnerEmail, a.Title, a.Due, a.CreatedAt)
	return err
}

func (r *AssignmentRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]assignment.Assignment, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_email, title, due, created_at
FROM assignments
WHERE owner_email = $1
ORDER BY created_at
`, ownerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []assignment.Assignment
	for rows.Next() {
		var a assignment.Assignment
		var due, created time.Time
		if err := rows.Scan(&a.ID, &a.OwnerEmail, &a.Title, &due, &created); err != nil {
			return nil, err
		}
		a.Due = due.UTC()
		a.CreatedAt = created.UTC()
		res = append(res, a)
	}
	return res, rows.Err()
}

// DeleteForOwner удаляет задание только у его владельца; чужой или
// несуществующий id даёт ноль затронутых строк, это не ошибка.
func (r *AssignmentRepository) DeleteForOwner(ctx context.Context, ownerEmail string, id uuid.UUID) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM assignments WHERE id = $1 AND owner_email = $2
`, id, ownerEmail)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
