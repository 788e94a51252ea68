package service

import (
	"context"
	"testing"

	dom "pairbook/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponSend(t *testing.T) {
	repo := &mockCouponRepo{
		sendFn: func(_ context.Context, creatorID, id, receiverID int64) (dom.Coupon, error) {
			if creatorID != 1 || id != 5 {
				return dom.Coupon{}, pgx.ErrNoRows
			}
			return dom.Coupon{ID: id, CreatorID: creatorID, ReceiverID: &receiverID, IsInInventory: true}, nil
		},
		existsFn: func(_ context.Context, id int64) (bool, error) {
			return id == 5, nil
		},
	}
	svc := NewCouponService(repo)

	c, err := svc.Send(context.Background(), 1, 5, 2)
	require.NoError(t, err)
	assert.True(t, c.IsInInventory)
	require.NotNil(t, c.ReceiverID)
	assert.EqualValues(t, 2, *c.ReceiverID)

	// Not the creator.
	_, err = svc.Send(context.Background(), 2, 5, 1)
	assert.ErrorIs(t, err, ErrForbidden)

	// No such coupon.
	_, err = svc.Send(context.Background(), 1, 99, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCouponSendUnknownReceiver(t *testing.T) {
	repo := &mockCouponRepo{
		sendFn: func(_ context.Context, _, _, _ int64) (dom.Coupon, error) {
			// receiver_id FK against users(id)
			return dom.Coupon{}, &pgconn.PgError{Code: "23503"}
		},
	}
	svc := NewCouponService(repo)

	_, err := svc.Send(context.Background(), 1, 5, 999)
	assert.ErrorIs(t, err, ErrReceiverNotFound)
}

func TestCouponDelete(t *testing.T) {
	// Coupon 5: created by 1, received by 2. User 3 is a stranger.
	authorized := map[int64]bool{1: true, 2: true}
	repo := &mockCouponRepo{
		deleteFn: func(_ context.Context, userID, id int64) (bool, error) {
			return id == 5 && authorized[userID], nil
		},
		existsFn: func(_ context.Context, id int64) (bool, error) {
			return id == 5, nil
		},
	}
	svc := NewCouponService(repo)

	assert.NoError(t, svc.Delete(context.Background(), 1, 5))
	assert.NoError(t, svc.Delete(context.Background(), 2, 5))
	assert.ErrorIs(t, svc.Delete(context.Background(), 3, 5), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 99), ErrNotFound)
}

func TestCouponCreateTrimsTitle(t *testing.T) {
	repo := &mockCouponRepo{
		createFn: func(_ context.Context, c dom.Coupon) (dom.Coupon, error) {
			c.ID = 1
			return c, nil
		},
	}
	svc := NewCouponService(repo)

	c, err := svc.Create(context.Background(), 1, "  breakfast in bed ")
	require.NoError(t, err)
	assert.Equal(t, "breakfast in bed", c.Title)
	assert.EqualValues(t, 1, c.CreatorID)
	assert.False(t, c.IsInInventory)
	assert.Nil(t, c.ReceiverID)
}
