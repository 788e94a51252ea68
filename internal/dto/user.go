package dto

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /api/register.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=1,max=120"`
	Password string `json:"password" binding:"required,min=1"`
}

// SetPartnerRequest is the JSON body for PUT /api/partner.
type SetPartnerRequest struct {
	Username string `json:"username" binding:"required,min=1,max=120"`
}

// UserResponse is the public view of a user. Password hash never appears here.
type UserResponse struct {
	ID              int64   `json:"id"`
	Username        string  `json:"username"`
	PartnerUsername *string `json:"partnerUsername"`
	Points          int64   `json:"points"`
}
