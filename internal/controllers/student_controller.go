package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/facetrack_backend/internal/attendance"
	"github.com/zaqqye/facetrack_backend/internal/models"
	"github.com/zaqqye/facetrack_backend/internal/ws"
)

type StudentController struct {
	Svc *attendance.Service
	Hub *ws.FeedHub
}

type registerStudentRequest struct {
	ID       StudentID `json:"id"`
	Name     string    `json:"name" binding:"required"`
	Grade    string    `json:"grade"`
	PhotoURL string    `json:"photoUrl" binding:"required"`
	CheckIn  bool      `json:"check_in"`
}

// List serves the student directory. masked=true hides names and photos.
func (sc *StudentController) List(c *gin.Context) {
	students, err := sc.Svc.GetStudents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	qText := strings.TrimSpace(c.Query("q"))
	masked := strings.EqualFold(c.Query("masked"), "true") || c.Query("masked") == "1"

	out := attendance.FilterStudents(students, qText)
	if masked {
		for i := range out {
			out[i] = attendance.MaskStudent(out[i])
		}
	}
	meta := gin.H{"total": len(out), "masked": masked}
	if qText != "" {
		meta["q"] = qText
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "meta": meta})
}

// Register adds a student. With check_in the new student is immediately
// marked present, the way the scanner's enrolment flow does.
func (sc *StudentController) Register(c *gin.Context) {
	var req registerStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	student, err := sc.Svc.RegisterStudent(ctx, attendance.NewStudent{
		ID:       req.ID.String(),
		Name:     req.Name,
		Grade:    req.Grade,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	publishRegistered(sc.Hub, student)

	resp := gin.H{"message": "registered", "student": student}
	if req.CheckIn {
		in, err := sc.Svc.RecordAttendance(ctx, student.ID, models.MethodFaceRecognition)
		if err != nil {
			log.Printf("register check-in %s: %v", student.ID, err)
		} else {
			publishCheckIn(sc.Hub, in, nil)
			resp["student"] = in.Student
			resp["log"] = in.Log
		}
	}
	c.JSON(http.StatusCreated, resp)
}

// AtRisk lists students below the attendance threshold.
func (sc *StudentController) AtRisk(c *gin.Context) {
	students, err := sc.Svc.GetStudents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := attendance.AtRisk(students, sc.Svc.Threshold())
	c.JSON(http.StatusOK, gin.H{
		"data": out,
		"meta": gin.H{"total": len(out), "threshold": sc.Svc.Threshold()},
	})
}
