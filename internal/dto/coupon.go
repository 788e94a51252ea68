package dto

type CreateCouponRequest struct {
	Title string `json:"title" binding:"required,min=1,max=120"`
}

// SendCouponRequest is the JSON body for POST /api/coupons/:id/send.
type SendCouponRequest struct {
	ReceiverID int64 `json:"receiverId" binding:"required,min=1"`
}

type CouponResponse struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	CreatorID     int64  `json:"creatorId"`
	ReceiverID    *int64 `json:"receiverId"`
	IsInInventory bool   `json:"isInInventory"`
	Redeemed      bool   `json:"redeemed"`
}
