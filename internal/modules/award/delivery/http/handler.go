package handler

import (
	"net/http"

	awardDto "brik.community/portal/internal/modules/award/dto"
	award "brik.community/portal/internal/modules/award/service"
	"brik.community/portal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AwardHandler struct {
	service award.AwardService
}

func NewAwardHandler(service award.AwardService) *AwardHandler {
	return &AwardHandler{service: service}
}

func (h *AwardHandler) GrantAward(c *gin.Context) {
	var req awardDto.GrantAwardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	adminID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.service.GrantAward(c.Request.Context(), adminID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": created})
}

func (h *AwardHandler) GetAwardsByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	awards, err := h.service.GetAwardsByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": awards})
}

func (h *AwardHandler) RevokeAward(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid award id"})
		return
	}

	if err := h.service.RevokeAward(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "award revoked"})
}
