package handlers

import (
	"errors"
	"net/http"

	"pairbook/internal/auth"
	"pairbook/internal/dto"
	"pairbook/internal/service"

	"github.com/gin-gonic/gin"
)

// PartnerHandler resolves and updates the caller's partner link.
type PartnerHandler struct {
	userSvc *service.UserService
}

func NewPartnerHandler(userSvc *service.UserService) *PartnerHandler {
	return &PartnerHandler{userSvc: userSvc}
}

// Get godoc
// @Summary      Resolve the caller's partner
// @Description  Returns the partner user record, or JSON null when unpaired.
// @Tags         partner
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  map[string]string
// @Router       /partner [get]
func (h *PartnerHandler) Get(c *gin.Context) {
	partner, err := h.userSvc.GetPartner(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if partner == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*partner))
}

// Set godoc
// @Summary      Pair with another user by username
// @Tags         partner
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body  dto.SetPartnerRequest  true  "Partner username"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /partner [put]
func (h *PartnerHandler) Set(c *gin.Context) {
	var req dto.SetPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.userSvc.SetPartner(c.Request.Context(), auth.UserIDFromContext(c), req.Username)
	if err != nil {
		if errors.Is(err, service.ErrSelfPartner) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot set yourself as partner"})
			return
		}
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}
