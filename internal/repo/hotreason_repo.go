package repo

import (
	"context"

	dom "pairbook/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HotReasonRepo provides hot-reason persistence; reasons are only ever
// listed by their author.
type HotReasonRepo interface {
	List(ctx context.Context, authorID int64) ([]dom.HotReason, error)
	Create(ctx context.Context, reason dom.HotReason) (dom.HotReason, error)
}

type PGHotReasonRepo struct {
	db *pgxpool.Pool
}

func NewPGHotReasonRepo(db *pgxpool.Pool) *PGHotReasonRepo {
	return &PGHotReasonRepo{db: db}
}

func (r *PGHotReasonRepo) List(ctx context.Context, authorID int64) ([]dom.HotReason, error) {
	query := `
		SELECT id, reason, author_id, created_at
		FROM hot_reasons WHERE author_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.HotReason
	for rows.Next() {
		var reason dom.HotReason
		if err := rows.Scan(&reason.ID, &reason.Reason, &reason.AuthorID, &reason.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, reason)
	}
	return list, rows.Err()
}

func (r *PGHotReasonRepo) Create(ctx context.Context, reason dom.HotReason) (dom.HotReason, error) {
	query := `
		INSERT INTO hot_reasons (reason, author_id)
		VALUES ($1, $2)
		RETURNING id, reason, author_id, created_at`
	var out dom.HotReason
	err := r.db.QueryRow(ctx, query, reason.Reason, reason.AuthorID).Scan(
		&out.ID, &out.Reason, &out.AuthorID, &out.CreatedAt,
	)
	return out, err
}
