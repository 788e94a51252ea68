package domain

import "time"

// Task is a chore one partner sets for the other. Completed is one-way:
// once true it never flips back.
type Task struct {
	ID        int64
	Title     string
	Points    int64
	CreatorID int64
	Completed bool
	CreatedAt time.Time
}
