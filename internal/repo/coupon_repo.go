package repo

import (
	"context"

	dom "pairbook/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CouponRepo provides coupon persistence. A coupon is visible to its
// creator until sent, then to its receiver as inventory.
type CouponRepo interface {
	ListCreated(ctx context.Context, creatorID int64) ([]dom.Coupon, error)
	ListInventory(ctx context.Context, receiverID int64) ([]dom.Coupon, error)
	Create(ctx context.Context, c dom.Coupon) (dom.Coupon, error)
	// Send sets receiver_id and is_in_inventory in one conditional update,
	// so a coupon is never visible in both listings or neither. The
	// creator may send again to move it to a different receiver.
	Send(ctx context.Context, creatorID, id, receiverID int64) (dom.Coupon, error)
	// Delete removes the coupon when userID is the creator or the receiver.
	Delete(ctx context.Context, userID, id int64) (bool, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type PGCouponRepo struct {
	db *pgxpool.Pool
}

func NewPGCouponRepo(db *pgxpool.Pool) *PGCouponRepo {
	return &PGCouponRepo{db: db}
}

const couponColumns = `id, title, creator_id, receiver_id, is_in_inventory, redeemed`

func (r *PGCouponRepo) ListCreated(ctx context.Context, creatorID int64) ([]dom.Coupon, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupons WHERE creator_id = $1 AND is_in_inventory = FALSE ORDER BY id`
	return r.list(ctx, query, creatorID)
}

func (r *PGCouponRepo) ListInventory(ctx context.Context, receiverID int64) ([]dom.Coupon, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupons WHERE receiver_id = $1 AND is_in_inventory = TRUE ORDER BY id`
	return r.list(ctx, query, receiverID)
}

func (r *PGCouponRepo) list(ctx context.Context, query string, arg int64) ([]dom.Coupon, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Coupon
	for rows.Next() {
		var c dom.Coupon
		if err := rows.Scan(&c.ID, &c.Title, &c.CreatorID, &c.ReceiverID, &c.IsInInventory, &c.Redeemed); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCouponRepo) Create(ctx context.Context, c dom.Coupon) (dom.Coupon, error) {
	query := `
		INSERT INTO coupons (title, creator_id)
		VALUES ($1, $2)
		RETURNING ` + couponColumns
	var out dom.Coupon
	err := r.db.QueryRow(ctx, query, c.Title, c.CreatorID).Scan(
		&out.ID, &out.Title, &out.CreatorID, &out.ReceiverID, &out.IsInInventory, &out.Redeemed,
	)
	return out, err
}

func (r *PGCouponRepo) Send(ctx context.Context, creatorID, id, receiverID int64) (dom.Coupon, error) {
	query := `
		UPDATE coupons SET receiver_id = $3, is_in_inventory = TRUE
		WHERE id = $1 AND creator_id = $2
		RETURNING ` + couponColumns
	var c dom.Coupon
	err := r.db.QueryRow(ctx, query, id, creatorID, receiverID).Scan(
		&c.ID, &c.Title, &c.CreatorID, &c.ReceiverID, &c.IsInInventory, &c.Redeemed,
	)
	return c, err
}

func (r *PGCouponRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM coupons WHERE id = $1 AND (creator_id = $2 OR receiver_id = $2)`,
		id, userID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PGCouponRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM coupons WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
