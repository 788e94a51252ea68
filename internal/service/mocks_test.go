package service

import (
	"context"

	dom "pairbook/internal/domain"
)

// fn-field mocks; each method panics unless the test sets its fn.

type mockUserRepo struct {
	getByIDFn       func(ctx context.Context, id int64) (dom.User, error)
	getByUsernameFn func(ctx context.Context, username string) (dom.User, error)
	createFn        func(ctx context.Context, username, passwordHash string) (dom.User, error)
	setPartnerFn    func(ctx context.Context, id int64, partnerUsername string) (dom.User, error)
	addPointsFn     func(ctx context.Context, id int64, delta int64) error
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	return m.getByUsernameFn(ctx, username)
}

func (m *mockUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	return m.createFn(ctx, username, passwordHash)
}

func (m *mockUserRepo) SetPartner(ctx context.Context, id int64, partnerUsername string) (dom.User, error) {
	return m.setPartnerFn(ctx, id, partnerUsername)
}

func (m *mockUserRepo) AddPoints(ctx context.Context, id int64, delta int64) error {
	return m.addPointsFn(ctx, id, delta)
}

type mockTaskRepo struct {
	listFn              func(ctx context.Context, creatorID int64) ([]dom.Task, error)
	createFn            func(ctx context.Context, t dom.Task) (dom.Task, error)
	getByOwnerFn        func(ctx context.Context, creatorID, id int64) (dom.Task, error)
	completeIfPendingFn func(ctx context.Context, creatorID, id int64) (dom.Task, error)
	deleteFn            func(ctx context.Context, creatorID, id int64) (bool, error)
	existsFn            func(ctx context.Context, id int64) (bool, error)
}

func (m *mockTaskRepo) List(ctx context.Context, creatorID int64) ([]dom.Task, error) {
	return m.listFn(ctx, creatorID)
}

func (m *mockTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	return m.createFn(ctx, t)
}

func (m *mockTaskRepo) GetByOwner(ctx context.Context, creatorID, id int64) (dom.Task, error) {
	return m.getByOwnerFn(ctx, creatorID, id)
}

func (m *mockTaskRepo) CompleteIfPending(ctx context.Context, creatorID, id int64) (dom.Task, error) {
	return m.completeIfPendingFn(ctx, creatorID, id)
}

func (m *mockTaskRepo) Delete(ctx context.Context, creatorID, id int64) (bool, error) {
	return m.deleteFn(ctx, creatorID, id)
}

func (m *mockTaskRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

type mockBucketRepo struct {
	listFn     func(ctx context.Context, userID int64) ([]dom.BucketItem, error)
	createFn   func(ctx context.Context, item dom.BucketItem) (dom.BucketItem, error)
	completeFn func(ctx context.Context, userID, id int64) (dom.BucketItem, error)
	deleteFn   func(ctx context.Context, userID, id int64) (bool, error)
	existsFn   func(ctx context.Context, id int64) (bool, error)
}

func (m *mockBucketRepo) List(ctx context.Context, userID int64) ([]dom.BucketItem, error) {
	return m.listFn(ctx, userID)
}

func (m *mockBucketRepo) Create(ctx context.Context, item dom.BucketItem) (dom.BucketItem, error) {
	return m.createFn(ctx, item)
}

func (m *mockBucketRepo) Complete(ctx context.Context, userID, id int64) (dom.BucketItem, error) {
	return m.completeFn(ctx, userID, id)
}

func (m *mockBucketRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	return m.deleteFn(ctx, userID, id)
}

func (m *mockBucketRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}

type mockCouponRepo struct {
	listCreatedFn   func(ctx context.Context, creatorID int64) ([]dom.Coupon, error)
	listInventoryFn func(ctx context.Context, receiverID int64) ([]dom.Coupon, error)
	createFn        func(ctx context.Context, c dom.Coupon) (dom.Coupon, error)
	sendFn          func(ctx context.Context, creatorID, id, receiverID int64) (dom.Coupon, error)
	deleteFn        func(ctx context.Context, userID, id int64) (bool, error)
	existsFn        func(ctx context.Context, id int64) (bool, error)
}

func (m *mockCouponRepo) ListCreated(ctx context.Context, creatorID int64) ([]dom.Coupon, error) {
	return m.listCreatedFn(ctx, creatorID)
}

func (m *mockCouponRepo) ListInventory(ctx context.Context, receiverID int64) ([]dom.Coupon, error) {
	return m.listInventoryFn(ctx, receiverID)
}

func (m *mockCouponRepo) Create(ctx context.Context, c dom.Coupon) (dom.Coupon, error) {
	return m.createFn(ctx, c)
}

func (m *mockCouponRepo) Send(ctx context.Context, creatorID, id, receiverID int64) (dom.Coupon, error) {
	return m.sendFn(ctx, creatorID, id, receiverID)
}

func (m *mockCouponRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	return m.deleteFn(ctx, userID, id)
}

func (m *mockCouponRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return m.existsFn(ctx, id)
}
