package dto

type CreateBucketItemRequest struct {
	Title string `json:"title" binding:"required,min=1,max=120"`
}

type BucketItemResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	UserID    int64  `json:"userId"`
	Completed bool   `json:"completed"`
}
