package handlers

import (
	"context"

	dom "pairbook/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore is an in-memory stand-in for the Postgres repositories, close
// to the ephemeral storage variant of the original deployment. Not safe
// for concurrent use; tests are sequential.
type memStore struct {
	users   map[int64]*dom.User
	tasks   map[int64]*dom.Task
	items   map[int64]*dom.BucketItem
	coupons map[int64]*dom.Coupon
	reasons map[int64]*dom.HotReason
	lastID  map[string]int64
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[int64]*dom.User{},
		tasks:   map[int64]*dom.Task{},
		items:   map[int64]*dom.BucketItem{},
		coupons: map[int64]*dom.Coupon{},
		reasons: map[int64]*dom.HotReason{},
		lastID:  map[string]int64{},
	}
}

func (s *memStore) nextID(collection string) int64 {
	s.lastID[collection]++
	return s.lastID[collection]
}

// ── UserRepo ──

type memUserRepo struct{ s *memStore }

func (r memUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return *u, nil
}

func (r memUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return *u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r memUserRepo) Create(_ context.Context, username, passwordHash string) (dom.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			return dom.User{}, &pgconn.PgError{Code: "23505"}
		}
	}
	u := &dom.User{ID: r.s.nextID("users"), Username: username, PasswordHash: passwordHash}
	r.s.users[u.ID] = u
	return *u, nil
}

func (r memUserRepo) SetPartner(_ context.Context, id int64, partnerUsername string) (dom.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	u.PartnerUsername = &partnerUsername
	return *u, nil
}

func (r memUserRepo) AddPoints(_ context.Context, id int64, delta int64) error {
	if u, ok := r.s.users[id]; ok {
		u.Points += delta
	}
	return nil
}

// ── TaskRepo ──

type memTaskRepo struct{ s *memStore }

func (r memTaskRepo) List(_ context.Context, creatorID int64) ([]dom.Task, error) {
	var list []dom.Task
	for id := int64(1); id <= r.s.lastID["tasks"]; id++ {
		if t, ok := r.s.tasks[id]; ok && t.CreatorID == creatorID {
			list = append(list, *t)
		}
	}
	return list, nil
}

func (r memTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	t.ID = r.s.nextID("tasks")
	r.s.tasks[t.ID] = &t
	return t, nil
}

func (r memTaskRepo) GetByOwner(_ context.Context, creatorID, id int64) (dom.Task, error) {
	t, ok := r.s.tasks[id]
	if !ok || t.CreatorID != creatorID {
		return dom.Task{}, pgx.ErrNoRows
	}
	return *t, nil
}

func (r memTaskRepo) CompleteIfPending(_ context.Context, creatorID, id int64) (dom.Task, error) {
	t, ok := r.s.tasks[id]
	if !ok || t.CreatorID != creatorID || t.Completed {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Completed = true
	return *t, nil
}

func (r memTaskRepo) Delete(_ context.Context, creatorID, id int64) (bool, error) {
	t, ok := r.s.tasks[id]
	if !ok || t.CreatorID != creatorID {
		return false, nil
	}
	delete(r.s.tasks, id)
	return true, nil
}

func (r memTaskRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.tasks[id]
	return ok, nil
}

// ── BucketRepo ──

type memBucketRepo struct{ s *memStore }

func (r memBucketRepo) List(_ context.Context, userID int64) ([]dom.BucketItem, error) {
	var list []dom.BucketItem
	for id := int64(1); id <= r.s.lastID["items"]; id++ {
		if item, ok := r.s.items[id]; ok && item.UserID == userID {
			list = append(list, *item)
		}
	}
	return list, nil
}

func (r memBucketRepo) Create(_ context.Context, item dom.BucketItem) (dom.BucketItem, error) {
	item.ID = r.s.nextID("items")
	r.s.items[item.ID] = &item
	return item, nil
}

func (r memBucketRepo) Complete(_ context.Context, userID, id int64) (dom.BucketItem, error) {
	item, ok := r.s.items[id]
	if !ok || item.UserID != userID {
		return dom.BucketItem{}, pgx.ErrNoRows
	}
	item.Completed = true
	return *item, nil
}

func (r memBucketRepo) Delete(_ context.Context, userID, id int64) (bool, error) {
	item, ok := r.s.items[id]
	if !ok || item.UserID != userID {
		return false, nil
	}
	delete(r.s.items, id)
	return true, nil
}

func (r memBucketRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.items[id]
	return ok, nil
}

// ── CouponRepo ──

type memCouponRepo struct{ s *memStore }

func (r memCouponRepo) ListCreated(_ context.Context, creatorID int64) ([]dom.Coupon, error) {
	var list []dom.Coupon
	for id := int64(1); id <= r.s.lastID["coupons"]; id++ {
		if c, ok := r.s.coupons[id]; ok && c.CreatorID == creatorID && !c.IsInInventory {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (r memCouponRepo) ListInventory(_ context.Context, receiverID int64) ([]dom.Coupon, error) {
	var list []dom.Coupon
	for id := int64(1); id <= r.s.lastID["coupons"]; id++ {
		if c, ok := r.s.coupons[id]; ok && c.IsInInventory && c.ReceiverID != nil && *c.ReceiverID == receiverID {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (r memCouponRepo) Create(_ context.Context, c dom.Coupon) (dom.Coupon, error) {
	c.ID = r.s.nextID("coupons")
	r.s.coupons[c.ID] = &c
	return c, nil
}

func (r memCouponRepo) Send(_ context.Context, creatorID, id, receiverID int64) (dom.Coupon, error) {
	c, ok := r.s.coupons[id]
	if !ok || c.CreatorID != creatorID {
		return dom.Coupon{}, pgx.ErrNoRows
	}
	if _, ok := r.s.users[receiverID]; !ok {
		return dom.Coupon{}, &pgconn.PgError{Code: "23503"}
	}
	c.ReceiverID = &receiverID
	c.IsInInventory = true
	return *c, nil
}

func (r memCouponRepo) Delete(_ context.Context, userID, id int64) (bool, error) {
	c, ok := r.s.coupons[id]
	if !ok {
		return false, nil
	}
	if c.CreatorID != userID && (c.ReceiverID == nil || *c.ReceiverID != userID) {
		return false, nil
	}
	delete(r.s.coupons, id)
	return true, nil
}

func (r memCouponRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.s.coupons[id]
	return ok, nil
}

// ── HotReasonRepo ──

type memHotReasonRepo struct{ s *memStore }

func (r memHotReasonRepo) List(_ context.Context, authorID int64) ([]dom.HotReason, error) {
	var list []dom.HotReason
	for id := int64(1); id <= r.s.lastID["reasons"]; id++ {
		if reason, ok := r.s.reasons[id]; ok && reason.AuthorID == authorID {
			list = append(list, *reason)
		}
	}
	return list, nil
}

func (r memHotReasonRepo) Create(_ context.Context, reason dom.HotReason) (dom.HotReason, error) {
	reason.ID = r.s.nextID("reasons")
	r.s.reasons[reason.ID] = &reason
	return reason, nil
}
