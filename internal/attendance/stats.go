package attendance

import (
	"math"
	"strings"
	"time"

	"github.com/zaqqye/facetrack_backend/internal/models"
)

const recentActivityLimit = 5

// FilterStudents keeps students whose name or id contains q, ignoring case.
func FilterStudents(students []models.Student, q string) []models.Student {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if q == "" || strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.ID), q) {
			out = append(out, s)
		}
	}
	return out
}

// MaskStudent hides identifying fields for the privacy view of the directory.
func MaskStudent(s models.Student) models.Student {
	s.Name = "STUDENT_" + s.ID
	s.PhotoURL = ""
	return s
}

// AtRisk returns students strictly below the attendance threshold.
func AtRisk(students []models.Student, threshold int) []models.Student {
	out := make([]models.Student, 0)
	for _, s := range students {
		if s.AttendancePercentage < threshold {
			out = append(out, s)
		}
	}
	return out
}

// ComputeStats builds the overview for the calendar day of now, in now's location.
func ComputeStats(students []models.Student, logs []models.AttendanceLog, now time.Time, threshold int) models.DashboardStats {
	loc := now.Location()
	y, m, d := now.Date()

	seenToday := make(map[string]struct{})
	for _, l := range logs {
		if !l.CountsAsPresence() {
			continue
		}
		at, ok := logTime(l, loc)
		if !ok {
			continue
		}
		ly, lm, ld := at.Date()
		if ly == y && lm == m && ld == d {
			seenToday[l.StudentID] = struct{}{}
		}
	}

	present := 0
	sum := 0
	for _, s := range students {
		if _, ok := seenToday[s.ID]; ok {
			present++
		}
		sum += s.AttendancePercentage
	}

	overall := 0
	if len(students) > 0 {
		overall = int(math.Round(float64(sum) / float64(len(students))))
	}

	recent := logs
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	recent = append([]models.AttendanceLog{}, recent...)

	return models.DashboardStats{
		TotalStudents:      len(students),
		PresentToday:       present,
		AbsentToday:        len(students) - present,
		LowAttendanceCount: len(AtRisk(students, threshold)),
		OverallAttendance:  overall,
		Threshold:          threshold,
		RecentActivity:     recent,
	}
}

// logTime prefers the structured instant and falls back to parsing the
// locale timestamp for entries written without one.
func logTime(l models.AttendanceLog, loc *time.Location) (time.Time, bool) {
	if !l.RecordedAt.IsZero() {
		return l.RecordedAt.In(loc), true
	}
	t, err := time.ParseInLocation(TimestampLayout, l.Timestamp, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
