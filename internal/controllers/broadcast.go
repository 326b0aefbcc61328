package controllers

import (
	"github.com/zaqqye/facetrack_backend/internal/attendance"
	"github.com/zaqqye/facetrack_backend/internal/metrics"
	"github.com/zaqqye/facetrack_backend/internal/models"
	"github.com/zaqqye/facetrack_backend/internal/ws"
)

func publishCheckIn(hub *ws.FeedHub, in attendance.CheckIn, rec *models.RecognitionResponse) {
	metrics.CheckIns.WithLabelValues(in.Log.Method, in.Log.Status).Inc()
	student, entry := in.Student, in.Log
	hub.Publish(ws.Event{
		Type:        ws.EventAttendanceRecorded,
		Student:     &student,
		Log:         &entry,
		Recognition: rec,
	})
}

func publishSpoof(hub *ws.FeedHub, entry *models.AttendanceLog, rec models.RecognitionResponse) {
	if entry != nil {
		metrics.CheckIns.WithLabelValues(entry.Method, entry.Status).Inc()
	}
	hub.Publish(ws.Event{Type: ws.EventSpoofDetected, Log: entry, Recognition: &rec})
}

func publishRegistered(hub *ws.FeedHub, st models.Student) {
	hub.Publish(ws.Event{Type: ws.EventStudentRegistered, Student: &st})
}
