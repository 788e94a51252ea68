package service

import (
	"context"
	"errors"
	"strings"

	dom "pairbook/internal/domain"
	"pairbook/internal/repo"

	"github.com/jackc/pgx/v5"
)

// BucketService owns bucket list rules; items are private to their owner.
type BucketService struct {
	repo repo.BucketRepo
}

func NewBucketService(r repo.BucketRepo) *BucketService {
	return &BucketService{repo: r}
}

func (s *BucketService) List(ctx context.Context, userID int64) ([]dom.BucketItem, error) {
	return s.repo.List(ctx, userID)
}

func (s *BucketService) Create(ctx context.Context, userID int64, title string) (dom.BucketItem, error) {
	return s.repo.Create(ctx, dom.BucketItem{
		Title:  strings.TrimSpace(title),
		UserID: userID,
	})
}

// Complete marks the item done; repeating it is a successful no-op.
func (s *BucketService) Complete(ctx context.Context, userID, id int64) (dom.BucketItem, error) {
	item, err := s.repo.Complete(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.BucketItem{}, s.resolveMissing(ctx, id)
		}
		return dom.BucketItem{}, err
	}
	return item, nil
}

func (s *BucketService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return s.resolveMissing(ctx, id)
	}
	return nil
}

func (s *BucketService) resolveMissing(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return ErrForbidden
	}
	return ErrNotFound
}
