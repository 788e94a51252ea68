package dto

import "time"

// CreateTaskRequest carries only client-settable fields; id, creatorId,
// completed and createdAt are server-assigned.
type CreateTaskRequest struct {
	Title  string `json:"title" binding:"required,min=1,max=120"`
	Points int64  `json:"points" binding:"omitempty,min=1,max=1000"`
}

type TaskResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Points    int64     `json:"points"`
	CreatorID int64     `json:"creatorId"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}
