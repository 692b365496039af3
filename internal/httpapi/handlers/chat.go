package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/skillswap/internal/httpapi/middleware"
	"github.com/alexanderramin/skillswap/internal/httpapi/response"
	"github.com/alexanderramin/skillswap/internal/mentor"
)

type ChatHandler struct {
	mentor      mentor.Service
	transcripts *mentor.Transcripts
	now         func() time.Time
}

func NewChatHandler(svc mentor.Service, transcripts *mentor.Transcripts) *ChatHandler {
	return &ChatHandler{mentor: svc, transcripts: transcripts, now: time.Now}
}

// POST /chat
// body: { "message": "..." }
// resp: { "response": "...", "source": "llm" | "fallback" | "local", "timestamp": "..." }
func (h *ChatHandler) Send(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	userID := middleware.UserID(c)
	reply, err := h.transcripts.For(userID).Send(c.Request.Context(), h.mentor, userID, req.Message, h.now())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, reply)
}

// GET /chat
func (h *ChatHandler) Transcript(c *gin.Context) {
	turns := h.transcripts.For(middleware.UserID(c)).Turns()
	response.RespondOK(c, gin.H{
		"messages":    turns,
		"suggestions": mentor.SuggestedQuestions,
	})
}
