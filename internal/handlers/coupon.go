package handlers

import (
	"errors"
	"net/http"

	"pairbook/internal/auth"
	dom "pairbook/internal/domain"
	"pairbook/internal/dto"
	"pairbook/internal/service"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	svc *service.CouponService
}

func NewCouponHandler(svc *service.CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// ListCreated godoc
// @Summary      List coupons the caller created and has not sent
// @Tags         coupons
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   dto.CouponResponse
// @Failure      401  {object}  map[string]string
// @Router       /coupons [get]
func (h *CouponHandler) ListCreated(c *gin.Context) {
	list, err := h.svc.ListCreated(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, couponsToResponses(list))
}

// ListInventory godoc
// @Summary      List coupons the caller has received
// @Tags         coupons
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   dto.CouponResponse
// @Failure      401  {object}  map[string]string
// @Router       /coupons/inventory [get]
func (h *CouponHandler) ListInventory(c *gin.Context) {
	list, err := h.svc.ListInventory(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, couponsToResponses(list))
}

// Create godoc
// @Summary      Create a coupon
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateCouponRequest  true  "Coupon body"
// @Success      201   {object}  dto.CouponResponse
// @Failure      400   {object}  map[string]string
// @Router       /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	coupon, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Title)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, couponToResponse(coupon))
}

// Send godoc
// @Summary      Send a coupon to a receiver's inventory
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int  true  "Coupon ID"
// @Param        body  body      dto.SendCouponRequest  true  "Receiver"
// @Success      200   {object}  dto.CouponResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /coupons/{id}/send [post]
func (h *CouponHandler) Send(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SendCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	coupon, err := h.svc.Send(c.Request.Context(), auth.UserIDFromContext(c), id, req.ReceiverID)
	if err != nil {
		if errors.Is(err, service.ErrReceiverNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "receiver not found"})
			return
		}
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, couponToResponse(coupon))
}

// Delete godoc
// @Summary      Delete a coupon (creator or receiver)
// @Tags         coupons
// @Security     CookieAuth
// @Param        id   path  int  true  "Coupon ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func couponToResponse(coupon dom.Coupon) dto.CouponResponse {
	return dto.CouponResponse{
		ID:            coupon.ID,
		Title:         coupon.Title,
		CreatorID:     coupon.CreatorID,
		ReceiverID:    coupon.ReceiverID,
		IsInInventory: coupon.IsInInventory,
		Redeemed:      coupon.Redeemed,
	}
}

func couponsToResponses(list []dom.Coupon) []dto.CouponResponse {
	out := make([]dto.CouponResponse, len(list))
	for i := range list {
		out[i] = couponToResponse(list[i])
	}
	return out
}
