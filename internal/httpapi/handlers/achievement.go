package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/skillswap/internal/httpapi/middleware"
	"github.com/alexanderramin/skillswap/internal/httpapi/response"
	"github.com/alexanderramin/skillswap/internal/service"
)

type AchievementHandler struct {
	achievements service.AchievementService
}

func NewAchievementHandler(achievements service.AchievementService) *AchievementHandler {
	return &AchievementHandler{achievements: achievements}
}

// GET /achievements
func (h *AchievementHandler) Overview(c *gin.Context) {
	ov, err := h.achievements.Overview(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, ov)
}

// GET /achievements/catalog
func (h *AchievementHandler) Catalog(c *gin.Context) {
	catalog, err := h.achievements.Catalog(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"achievements": catalog})
}

// POST /achievements/:id/award
func (h *AchievementHandler) Award(c *gin.Context) {
	earned, err := h.achievements.Award(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, earned)
}
