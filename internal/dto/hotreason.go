package dto

import "time"

type CreateHotReasonRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=1000"`
}

type HotReasonResponse struct {
	ID        int64     `json:"id"`
	Reason    string    `json:"reason"`
	AuthorID  int64     `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}
