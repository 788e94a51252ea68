package repo

import (
	"context"

	dom "pairbook/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides task persistence. All reads and writes except Exists
// are scoped to the creator; a write that matches no row reports it
// instead of silently succeeding.
type TaskRepo interface {
	List(ctx context.Context, creatorID int64) ([]dom.Task, error)
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByOwner(ctx context.Context, creatorID, id int64) (dom.Task, error)
	// CompleteIfPending flips completed false->true in one conditional
	// update and returns pgx.ErrNoRows when no pending owned row matched.
	CompleteIfPending(ctx context.Context, creatorID, id int64) (dom.Task, error)
	Delete(ctx context.Context, creatorID, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

const taskColumns = `id, title, points, creator_id, completed, created_at`

func (r *PGTaskRepo) List(ctx context.Context, creatorID int64) ([]dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE creator_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Points, &t.CreatorID, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (title, points, creator_id)
		VALUES ($1, $2, $3)
		RETURNING ` + taskColumns
	var out dom.Task
	err := r.db.QueryRow(ctx, query, t.Title, t.Points, t.CreatorID).Scan(
		&out.ID, &out.Title, &out.Points, &out.CreatorID, &out.Completed, &out.CreatedAt,
	)
	return out, err
}

func (r *PGTaskRepo) GetByOwner(ctx context.Context, creatorID, id int64) (dom.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks WHERE id = $1 AND creator_id = $2`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, creatorID).Scan(
		&t.ID, &t.Title, &t.Points, &t.CreatorID, &t.Completed, &t.CreatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) CompleteIfPending(ctx context.Context, creatorID, id int64) (dom.Task, error) {
	query := `
		UPDATE tasks SET completed = TRUE
		WHERE id = $1 AND creator_id = $2 AND completed = FALSE
		RETURNING ` + taskColumns
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, creatorID).Scan(
		&t.ID, &t.Title, &t.Points, &t.CreatorID, &t.Completed, &t.CreatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) Delete(ctx context.Context, creatorID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND creator_id = $2`, id, creatorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGTaskRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
