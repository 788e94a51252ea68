package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"pairbook/internal/cache"
	dom "pairbook/internal/domain"
	"pairbook/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

const defaultTaskPoints = 5

// TaskService owns task rules: creator-only mutations, one-way completion
// and the points credit on first completion.
type TaskService struct {
	repo  repo.TaskRepo
	users repo.UserRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, users repo.UserRepo, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, users: users, cache: c}
}

func (s *TaskService) Create(ctx context.Context, creatorID int64, title string, points int64) (dom.Task, error) {
	title = strings.TrimSpace(title)
	if points <= 0 {
		points = defaultTaskPoints
	}

	t, err := s.repo.Create(ctx, dom.Task{
		Title:     title,
		Points:    points,
		CreatorID: creatorID,
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, creatorID)
	return t, nil
}

func (s *TaskService) List(ctx context.Context, creatorID int64) ([]dom.Task, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(creatorID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, creatorID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, creatorID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, creatorID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.List(ctx, creatorID)
}

// Complete marks the task done and credits its points to the creator.
// Completing an already-completed task succeeds as a no-op and credits
// nothing; completing someone else's task is ErrForbidden.
func (s *TaskService) Complete(ctx context.Context, creatorID, id int64) (dom.Task, error) {
	t, err := s.repo.CompleteIfPending(ctx, creatorID, id)
	if err == nil {
		if perr := s.users.AddPoints(ctx, creatorID, t.Points); perr != nil {
			return dom.Task{}, perr
		}
		s.invalidateCache(ctx, creatorID)
		return t, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return dom.Task{}, err
	}
	// No pending row: either already completed (no-op), foreign, or absent.
	t, err = s.repo.GetByOwner(ctx, creatorID, id)
	if err == nil {
		return t, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Task{}, s.resolveMissing(ctx, id)
	}
	return dom.Task{}, err
}

func (s *TaskService) Delete(ctx context.Context, creatorID, id int64) error {
	deleted, err := s.repo.Delete(ctx, creatorID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return s.resolveMissing(ctx, id)
	}
	s.invalidateCache(ctx, creatorID)
	return nil
}

// resolveMissing decides ErrForbidden vs ErrNotFound after an owner-scoped
// write matched nothing.
func (s *TaskService) resolveMissing(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return ErrForbidden
	}
	return ErrNotFound
}

func (s *TaskService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
