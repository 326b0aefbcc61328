package controllers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/zaqqye/facetrack_backend/internal/attendance"
	"github.com/zaqqye/facetrack_backend/internal/metrics"
	"github.com/zaqqye/facetrack_backend/internal/models"
	"github.com/zaqqye/facetrack_backend/internal/recognition"
	"github.com/zaqqye/facetrack_backend/internal/ws"
)

const maxImageBytes = 10 << 20

const (
	ScanSuccess = "success"
	ScanSpoof   = "spoof"
	ScanUnknown = "unknown"
	ScanError   = "error"
)

type ScanController struct {
	Svc        *attendance.Service
	Recognizer recognition.Recognizer
	Hub        *ws.FeedHub
}

type scanRequest struct {
	Image string `json:"image" binding:"required"`
}

// ScanResult is what the scanner view renders after one probe.
type ScanResult struct {
	Status      string                     `json:"status"`
	Message     string                     `json:"message"`
	Recognition models.RecognitionResponse `json:"recognition"`
	Student     *models.Student            `json:"student,omitempty"`
	Log         *models.AttendanceLog      `json:"log,omitempty"`
}

// Scan runs one liveness + identification probe and records the check-in
// when the subject is live and matched. Rejected subjects are logged as
// spoof attempts; a failed recognition call is reported but not logged.
// Every verdict is a 200, only a missing or undecodable image is a 400.
func (sc *ScanController) Scan(c *gin.Context) {
	img, err := readImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	roster, err := sc.Svc.GetStudents(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	res, ok := sc.Recognizer.Recognize(ctx, img, roster)
	out := ScanResult{Recognition: res}

	switch {
	case !ok:
		out.Status, out.Message = ScanError, "Probe Failure"
	case !res.IsLive:
		out.Status, out.Message = ScanSpoof, "2D/SPOOF DETECTED"
		entry, err := sc.Svc.RecordSpoofAttempt(ctx, res)
		if err != nil {
			log.Printf("scan: record spoof attempt: %v", err)
			publishSpoof(sc.Hub, nil, res)
		} else {
			out.Log = &entry
			publishSpoof(sc.Hub, &entry, res)
		}
	case res.MatchedID() != "":
		in, err := sc.Svc.RecordAttendance(ctx, res.MatchedID(), models.MethodFaceRecognition)
		switch {
		case errors.Is(err, attendance.ErrStudentNotFound):
			out.Status, out.Message = ScanUnknown, "Unknown Human"
		case err != nil:
			log.Printf("scan: record attendance: %v", err)
			out.Status, out.Message = ScanError, "Probe Failure"
		default:
			name := strings.TrimSpace(res.Name)
			if name == "" {
				name = in.Student.Name
			}
			out.Status, out.Message = ScanSuccess, "Human Verified: "+name
			out.Student, out.Log = &in.Student, &in.Log
			publishCheckIn(sc.Hub, in, &res)
		}
	default:
		out.Status, out.Message = ScanUnknown, "Unknown Human"
	}

	metrics.ScanOutcomes.WithLabelValues(out.Status).Inc()
	c.JSON(http.StatusOK, out)
}

// readImage accepts a multipart "image" file or a JSON body carrying a data
// URL or bare base64 string.
func readImage(c *gin.Context) (recognition.Image, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("image")
		if err != nil {
			return recognition.Image{}, errors.New("image file is required")
		}
		if fh.Size > maxImageBytes {
			return recognition.Image{}, errors.New("image too large")
		}
		f, err := fh.Open()
		if err != nil {
			return recognition.Image{}, errors.Wrap(err, "open image")
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
		if err != nil {
			return recognition.Image{}, errors.Wrap(err, "read image")
		}
		if len(data) == 0 {
			return recognition.Image{}, recognition.ErrEmptyImage
		}
		mime := fh.Header.Get("Content-Type")
		if mime == "" || mime == "application/octet-stream" {
			mime = http.DetectContentType(data)
		}
		return recognition.Image{Data: data, MIMEType: mime}, nil
	}

	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return recognition.Image{}, err
	}
	return recognition.DecodeImage(req.Image)
}
