package handlers

import (
	"net/http"

	"pairbook/internal/auth"
	dom "pairbook/internal/domain"
	"pairbook/internal/dto"
	"pairbook/internal/service"

	"github.com/gin-gonic/gin"
)

type HotReasonHandler struct {
	svc *service.HotReasonService
}

func NewHotReasonHandler(svc *service.HotReasonService) *HotReasonHandler {
	return &HotReasonHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's hot reasons
// @Tags         hot-reasons
// @Produce      json
// @Security     CookieAuth
// @Success      200  {array}   dto.HotReasonResponse
// @Failure      401  {object}  map[string]string
// @Router       /hot-reasons [get]
func (h *HotReasonHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hotReasonsToResponses(list))
}

// Create godoc
// @Summary      Record a hot reason
// @Tags         hot-reasons
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateHotReasonRequest  true  "Reason body"
// @Success      201   {object}  dto.HotReasonResponse
// @Failure      400   {object}  map[string]string
// @Router       /hot-reasons [post]
func (h *HotReasonHandler) Create(c *gin.Context) {
	var req dto.CreateHotReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reason, err := h.svc.Create(c.Request.Context(), auth.UserIDFromContext(c), req.Reason)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hotReasonToResponse(reason))
}

func hotReasonToResponse(r dom.HotReason) dto.HotReasonResponse {
	return dto.HotReasonResponse{
		ID:        r.ID,
		Reason:    r.Reason,
		AuthorID:  r.AuthorID,
		CreatedAt: r.CreatedAt,
	}
}

func hotReasonsToResponses(list []dom.HotReason) []dto.HotReasonResponse {
	out := make([]dto.HotReasonResponse, len(list))
	for i := range list {
		out[i] = hotReasonToResponse(list[i])
	}
	return out
}
