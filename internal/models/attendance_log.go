package models

import "time"

const (
	MethodFaceRecognition = "Face Recognition"
	MethodManual          = "Manual"
)

const (
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusSpoof   = "Spoof Attempt"
)

// AttendanceLog is an append-only check-in event. StudentName is a copy taken
// at check-in time and is not re-synced when the student changes.
type AttendanceLog struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Timestamp   string    `json:"timestamp"`
	RecordedAt  time.Time `json:"recordedAt"`
	Method      string    `json:"method"`
	Status      string    `json:"status"`
}

func IsValidMethod(method string) bool {
	return method == MethodFaceRecognition || method == MethodManual
}

// CountsAsPresence reports whether the log marks the student as attending.
func (l AttendanceLog) CountsAsPresence() bool {
	return l.Status == StatusPresent || l.Status == StatusLate
}
