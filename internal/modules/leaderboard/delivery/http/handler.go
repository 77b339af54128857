package http

import (
	"net/http"

	leaderboard "brik.community/portal/internal/modules/leaderboard/service"
	"brik.community/portal/pkg/response"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	service leaderboard.LeaderboardService
}

func NewLeaderboardHandler(service leaderboard.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	viewerID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := leaderboard.Filter{
		Track:  c.DefaultQuery("track", leaderboard.AllTracks),
		Cohort: c.DefaultQuery("cohort", leaderboard.AllCohorts),
	}

	entries, err := h.service.GetLeaderboard(c.Request.Context(), filter, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func (h *LeaderboardHandler) GetAdminLeaderboard(c *gin.Context) {
	viewerID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := leaderboard.Filter{
		Track:  c.DefaultQuery("track", leaderboard.AllTracks),
		Cohort: c.DefaultQuery("cohort", leaderboard.AllCohorts),
	}

	entries, err := h.service.GetAdminLeaderboard(c.Request.Context(), filter, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
