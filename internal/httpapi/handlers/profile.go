package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/httpapi/middleware"
	"github.com/alexanderramin/skillswap/internal/httpapi/response"
	"github.com/alexanderramin/skillswap/internal/service"
)

type ProfileHandler struct {
	profiles service.ProfileService
}

func NewProfileHandler(profiles service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.UserID(c)

	p, err := h.profiles.Get(ctx, userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	skills, err := h.profiles.Skills(ctx, userID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": p, "skills": skills})
}

// PUT /profile
// body: { "display_name", "bio", "location", "avatar_url" }
func (h *ProfileHandler) Update(c *gin.Context) {
	var p domain.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	p.UserID = middleware.UserID(c)

	if err := h.profiles.Update(c.Request.Context(), &p); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"profile": p})
}

// POST /profile/skills
// body: { "kind": "teach" | "learn", "name": "..." }
func (h *ProfileHandler) AddSkill(c *gin.Context) {
	var req struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	kind, err := domain.ParseSkillKind(req.Kind)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}

	skills, err := h.profiles.AddSkill(c.Request.Context(), middleware.UserID(c), kind, req.Name)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skills": skills})
}

// DELETE /profile/skills/:kind/:name
func (h *ProfileHandler) RemoveSkill(c *gin.Context) {
	kind, err := domain.ParseSkillKind(c.Param("kind"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}

	skills, err := h.profiles.RemoveSkill(c.Request.Context(), middleware.UserID(c), kind, c.Param("name"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skills": skills})
}

// GET /skills
func (h *ProfileHandler) AvailableSkills(c *gin.Context) {
	skills, err := h.profiles.AvailableSkills(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"skills": skills})
}
