package repo

import (
	"context"

	dom "pairbook/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// BucketRepo provides bucket list persistence scoped to the owning user.
type BucketRepo interface {
	List(ctx context.Context, userID int64) ([]dom.BucketItem, error)
	Create(ctx context.Context, item dom.BucketItem) (dom.BucketItem, error)
	// Complete sets completed = TRUE; repeating it is a no-op that still
	// returns the row. pgx.ErrNoRows when the owner has no such item.
	Complete(ctx context.Context, userID, id int64) (dom.BucketItem, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type PGBucketRepo struct {
	db *pgxpool.Pool
}

func NewPGBucketRepo(db *pgxpool.Pool) *PGBucketRepo {
	return &PGBucketRepo{db: db}
}

const bucketColumns = `id, title, user_id, completed`

func (r *PGBucketRepo) List(ctx context.Context, userID int64) ([]dom.BucketItem, error) {
	query := `
		SELECT ` + bucketColumns + `
		FROM bucket_items WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.BucketItem
	for rows.Next() {
		var item dom.BucketItem
		if err := rows.Scan(&item.ID, &item.Title, &item.UserID, &item.Completed); err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func (r *PGBucketRepo) Create(ctx context.Context, item dom.BucketItem) (dom.BucketItem, error) {
	query := `
		INSERT INTO bucket_items (title, user_id)
		VALUES ($1, $2)
		RETURNING ` + bucketColumns
	var out dom.BucketItem
	err := r.db.QueryRow(ctx, query, item.Title, item.UserID).Scan(
		&out.ID, &out.Title, &out.UserID, &out.Completed,
	)
	return out, err
}

func (r *PGBucketRepo) Complete(ctx context.Context, userID, id int64) (dom.BucketItem, error) {
	query := `
		UPDATE bucket_items SET completed = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING ` + bucketColumns
	var item dom.BucketItem
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&item.ID, &item.Title, &item.UserID, &item.Completed,
	)
	return item, err
}

func (r *PGBucketRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bucket_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGBucketRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bucket_items WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
