package service

import (
	"context"
	"errors"
	"strings"

	dom "pairbook/internal/domain"
	"pairbook/internal/repo"
	"pairbook/internal/utils"

	"github.com/jackc/pgx/v5"
)

// CouponService owns coupon rules: only the creator sends, creator or
// receiver deletes, and sending is a single atomic transition.
type CouponService struct {
	repo repo.CouponRepo
}

func NewCouponService(r repo.CouponRepo) *CouponService {
	return &CouponService{repo: r}
}

// ListCreated returns the caller's coupons that have not been sent yet.
func (s *CouponService) ListCreated(ctx context.Context, userID int64) ([]dom.Coupon, error) {
	return s.repo.ListCreated(ctx, userID)
}

// ListInventory returns coupons the caller has received.
func (s *CouponService) ListInventory(ctx context.Context, userID int64) ([]dom.Coupon, error) {
	return s.repo.ListInventory(ctx, userID)
}

func (s *CouponService) Create(ctx context.Context, creatorID int64, title string) (dom.Coupon, error) {
	return s.repo.Create(ctx, dom.Coupon{
		Title:     strings.TrimSpace(title),
		CreatorID: creatorID,
	})
}

// Send moves the coupon into receiverID's inventory. Only the creator may
// send; the receiver assignment and inventory flag change together.
func (s *CouponService) Send(ctx context.Context, creatorID, id, receiverID int64) (dom.Coupon, error) {
	c, err := s.repo.Send(ctx, creatorID, id, receiverID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Coupon{}, s.resolveMissing(ctx, id)
		}
		// receiver_id references users(id)
		if utils.IsPGForeignKeyViolation(err) {
			return dom.Coupon{}, ErrReceiverNotFound
		}
		return dom.Coupon{}, err
	}
	return c, nil
}

// Delete removes the coupon; the creator and the current receiver are both
// authorized parties.
func (s *CouponService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return s.resolveMissing(ctx, id)
	}
	return nil
}

func (s *CouponService) resolveMissing(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return ErrForbidden
	}
	return ErrNotFound
}
