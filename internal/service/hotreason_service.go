package service

import (
	"context"
	"strings"

	dom "pairbook/internal/domain"
	"pairbook/internal/repo"
)

// HotReasonService owns hot-reason rules; reasons are author-private.
type HotReasonService struct {
	repo repo.HotReasonRepo
}

func NewHotReasonService(r repo.HotReasonRepo) *HotReasonService {
	return &HotReasonService{repo: r}
}

func (s *HotReasonService) List(ctx context.Context, authorID int64) ([]dom.HotReason, error) {
	return s.repo.List(ctx, authorID)
}

func (s *HotReasonService) Create(ctx context.Context, authorID int64, reason string) (dom.HotReason, error) {
	return s.repo.Create(ctx, dom.HotReason{
		Reason:   strings.TrimSpace(reason),
		AuthorID: authorID,
	})
}
