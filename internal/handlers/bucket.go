package handlers

import (
	"net/http"

	"pairbook/internal/auth"
	dom "pairbook/internal/domain"
	"pairbook/internal/dto"
	"pairbook/internal/service"

	"github.com/gin-gonic/gin"
)

type BucketHandler struct {
	svc *service.BucketService
}

func NewBucketHandler(svc *service.BucketService) *BucketHandler {
	return &BucketHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's bucket list
// @Tags         bucket-list
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   dto.BucketItemResponse
// @Failure      401  {object}  map[string]string
// @Router       /bucket-list [get]
func (h *BucketHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bucketItemsToResponses(list))
}

// Create godoc
// @Summary      Add a bucket list item
// @Tags         bucket-list
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateBucketItemRequest  true  "Item body"
// @Success      201   {object}  dto.BucketItemResponse
// @Failure      400   {object}  map[string]string
// @Router       /bucket-list [post]
func (h *BucketHandler) Create(c *gin.Context) {
	var req dto.CreateBucketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Title)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bucketItemToResponse(item))
}

// Complete godoc
// @Summary      Mark a bucket list item completed (idempotent)
// @Tags         bucket-list
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.BucketItemResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bucket-list/{id}/complete [patch]
func (h *BucketHandler) Complete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	item, err := h.svc.Complete(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bucketItemToResponse(item))
}

// Delete godoc
// @Summary      Delete a bucket list item
// @Tags         bucket-list
// @Security     CookieAuth
// @Param        id   path  int  true  "Item ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /bucket-list/{id} [delete]
func (h *BucketHandler) Delete(c *gin.Context) {
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

func bucketItemToResponse(item dom.BucketItem) dto.BucketItemResponse {
	return dto.BucketItemResponse{
		ID:        item.ID,
		Title:     item.Title,
		UserID:    item.UserID,
		Completed: item.Completed,
	}
}

func bucketItemsToResponses(list []dom.BucketItem) []dto.BucketItemResponse {
	out := make([]dto.BucketItemResponse, len(list))
	for i := range list {
		out[i] = bucketItemToResponse(list[i])
	}
	return out
}
