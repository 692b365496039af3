package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/httpapi/middleware"
	"github.com/alexanderramin/skillswap/internal/httpapi/response"
	"github.com/alexanderramin/skillswap/internal/service"
)

type TeacherHandler struct {
	teachers service.TeacherService
}

func NewTeacherHandler(teachers service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teachers: teachers}
}

// GET /teachers?q=&skill=
func (h *TeacherHandler) List(c *gin.Context) {
	teachers, err := h.teachers.Search(c.Request.Context(), c.Query("q"), c.Query("skill"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"teachers": teachers})
}

// POST /teachers
// body: { "name", "skills", "hourly_rate", "bio", "location", "experience" }
func (h *TeacherHandler) Become(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
		domain.TeacherApplication
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	t, err := h.teachers.Become(c.Request.Context(), middleware.UserID(c), req.Name, req.TeacherApplication)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, t)
}
