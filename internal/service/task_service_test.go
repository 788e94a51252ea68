package service

import (
	"context"
	"testing"

	dom "pairbook/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreateDefaults(t *testing.T) {
	repo := &mockTaskRepo{
		createFn: func(_ context.Context, task dom.Task) (dom.Task, error) {
			task.ID = 7
			return task, nil
		},
	}
	svc := NewTaskService(repo, &mockUserRepo{}, nil)

	task, err := svc.Create(context.Background(), 1, "  walk the dog  ", 0)
	require.NoError(t, err)
	assert.Equal(t, "walk the dog", task.Title)
	assert.EqualValues(t, 5, task.Points, "zero points falls back to the default")
	assert.EqualValues(t, 1, task.CreatorID)

	task, err = svc.Create(context.Background(), 1, "cook dinner", 25)
	require.NoError(t, err)
	assert.EqualValues(t, 25, task.Points)
}

func TestTaskCompleteCreditsPointsOnce(t *testing.T) {
	pending := true
	var credited int64
	repo := &mockTaskRepo{
		completeIfPendingFn: func(_ context.Context, creatorID, id int64) (dom.Task, error) {
			if !pending {
				return dom.Task{}, pgx.ErrNoRows
			}
			pending = false
			return dom.Task{ID: id, CreatorID: creatorID, Points: 10, Completed: true}, nil
		},
		getByOwnerFn: func(_ context.Context, creatorID, id int64) (dom.Task, error) {
			return dom.Task{ID: id, CreatorID: creatorID, Points: 10, Completed: true}, nil
		},
	}
	users := &mockUserRepo{
		addPointsFn: func(_ context.Context, id, delta int64) error {
			credited += delta
			return nil
		},
	}
	svc := NewTaskService(repo, users, nil)

	task, err := svc.Complete(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.EqualValues(t, 10, credited)

	// Second completion: successful no-op, nothing credited again.
	task, err = svc.Complete(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.EqualValues(t, 10, credited)
}

func TestTaskCompleteForeign(t *testing.T) {
	repo := &mockTaskRepo{
		completeIfPendingFn: func(_ context.Context, _, _ int64) (dom.Task, error) {
			return dom.Task{}, pgx.ErrNoRows
		},
		getByOwnerFn: func(_ context.Context, _, _ int64) (dom.Task, error) {
			return dom.Task{}, pgx.ErrNoRows
		},
		existsFn: func(_ context.Context, _ int64) (bool, error) {
			return true, nil
		},
	}
	users := &mockUserRepo{
		addPointsFn: func(_ context.Context, _, _ int64) error {
			t.Fatal("points must not be credited on a failed completion")
			return nil
		},
	}
	svc := NewTaskService(repo, users, nil)

	_, err := svc.Complete(context.Background(), 2, 3)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTaskCompleteAbsent(t *testing.T) {
	repo := &mockTaskRepo{
		completeIfPendingFn: func(_ context.Context, _, _ int64) (dom.Task, error) {
			return dom.Task{}, pgx.ErrNoRows
		},
		getByOwnerFn: func(_ context.Context, _, _ int64) (dom.Task, error) {
			return dom.Task{}, pgx.ErrNoRows
		},
		existsFn: func(_ context.Context, _ int64) (bool, error) {
			return false, nil
		},
	}
	svc := NewTaskService(repo, &mockUserRepo{}, nil)

	_, err := svc.Complete(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskDelete(t *testing.T) {
	repo := &mockTaskRepo{
		deleteFn: func(_ context.Context, creatorID, id int64) (bool, error) {
			return creatorID == 1 && id == 3, nil
		},
		existsFn: func(_ context.Context, id int64) (bool, error) {
			return id == 3, nil
		},
	}
	svc := NewTaskService(repo, &mockUserRepo{}, nil)

	assert.NoError(t, svc.Delete(context.Background(), 1, 3))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2, 3), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(context.Background(), 1, 99), ErrNotFound)
}

func TestTaskListPassthroughWithoutCache(t *testing.T) {
	want := []dom.Task{{ID: 1, Title: "a", CreatorID: 1}, {ID: 2, Title: "b", CreatorID: 1}}
	repo := &mockTaskRepo{
		listFn: func(_ context.Context, creatorID int64) ([]dom.Task, error) {
			assert.EqualValues(t, 1, creatorID)
			return want, nil
		},
	}
	svc := NewTaskService(repo, &mockUserRepo{}, nil)

	got, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
