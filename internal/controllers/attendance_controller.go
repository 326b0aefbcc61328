package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/facetrack_backend/internal/attendance"
	"github.com/zaqqye/facetrack_backend/internal/models"
	"github.com/zaqqye/facetrack_backend/internal/ws"
)

type AttendanceController struct {
	Svc *attendance.Service
	Hub *ws.FeedHub
}

type recordAttendanceRequest struct {
	StudentID StudentID `json:"student_id" binding:"required"`
	Method    string    `json:"method"`
}

// Record is the manual check-in. method defaults to Manual.
func (ac *AttendanceController) Record(c *gin.Context) {
	var req recordAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	method := strings.TrimSpace(req.Method)
	if method == "" {
		method = models.MethodManual
	}
	in, err := ac.Svc.RecordAttendance(c.Request.Context(), req.StudentID.String(), method)
	if err != nil {
		respondError(c, err)
		return
	}
	publishCheckIn(ac.Hub, in, nil)
	c.JSON(http.StatusOK, in)
}

// ListLogs returns logs newest first, optionally filtered and truncated.
func (ac *AttendanceController) ListLogs(c *gin.Context) {
	logs, err := ac.Svc.GetLogs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	studentID := strings.TrimSpace(c.Query("student_id"))
	status := strings.TrimSpace(c.Query("status"))
	out := make([]models.AttendanceLog, 0, len(logs))
	for _, l := range logs {
		if studentID != "" && l.StudentID != studentID {
			continue
		}
		if status != "" && !strings.EqualFold(l.Status, status) {
			continue
		}
		out = append(out, l)
	}
	total := len(out)

	meta := gin.H{"total": total}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if n > 0 && n < len(out) {
			out = out[:n]
		}
		meta["limit"] = n
	}
	if studentID != "" {
		meta["student_id"] = studentID
	}
	if status != "" {
		meta["status"] = status
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "meta": meta})
}
