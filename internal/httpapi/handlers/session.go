package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/skillswap/internal/domain"
	"github.com/alexanderramin/skillswap/internal/httpapi/middleware"
	"github.com/alexanderramin/skillswap/internal/httpapi/response"
	"github.com/alexanderramin/skillswap/internal/service"
)

type SessionHandler struct {
	bookings service.BookingService
	now      func() time.Time
}

func NewSessionHandler(bookings service.BookingService) *SessionHandler {
	return &SessionHandler{bookings: bookings, now: time.Now}
}

// GET /sessions?upcoming=true
func (h *SessionHandler) List(c *gin.Context) {
	upcoming, _ := strconv.ParseBool(c.Query("upcoming"))
	res := h.bookings.List(c.Request.Context(), middleware.UserID(c), upcoming)
	response.RespondOK(c, res)
}

// POST /sessions
// body: { "skill", "counterpart", "date", "time", "duration_min", "mode", "notes" }
func (h *SessionHandler) Create(c *gin.Context) {
	var draft domain.SessionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	res, err := h.bookings.Schedule(c.Request.Context(), middleware.UserID(c), draft)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, res)
}

// DELETE /sessions/:id
func (h *SessionHandler) Cancel(c *gin.Context) {
	res, err := h.bookings.Cancel(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /sessions/calendar?month=YYYY-MM
func (h *SessionHandler) Calendar(c *gin.Context) {
	month := h.now()
	if raw := c.Query("month"); raw != "" {
		t, err := time.ParseInLocation("2006-01", raw, time.Local)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "validation_failed",
				&domain.InvalidFieldError{Field: "month", Reason: "expected YYYY-MM"})
			return
		}
		month = t
	}
	response.RespondOK(c, h.bookings.Calendar(c.Request.Context(), middleware.UserID(c), month))
}

// GET /sessions/on/:date
func (h *SessionHandler) OnDate(c *gin.Context) {
	date, err := time.ParseInLocation(domain.DateLayout, c.Param("date"), time.Local)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "validation_failed",
			&domain.InvalidFieldError{Field: "date", Reason: "expected YYYY-MM-DD"})
		return
	}
	response.RespondOK(c, h.bookings.OnDate(c.Request.Context(), middleware.UserID(c), date))
}
