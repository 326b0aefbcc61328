package models

import (
	"encoding/json"
	"math"
)

type Student struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Grade                string `json:"grade"`
	PhotoURL             string `json:"photoUrl"`
	AttendancePercentage int    `json:"attendancePercentage"`
	TotalClasses         int    `json:"totalClasses"`
	ClassesAttended      int    `json:"classesAttended"`
	LastSeen             string `json:"lastSeen,omitempty"`
}

// UnmarshalJSON rounds fractional counters, which older browser-stored
// rosters carry (classesAttended 42.5).
func (s *Student) UnmarshalJSON(data []byte) error {
	type plain Student
	var aux struct {
		plain
		AttendancePercentage float64 `json:"attendancePercentage"`
		TotalClasses         float64 `json:"totalClasses"`
		ClassesAttended      float64 `json:"classesAttended"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*s = Student(aux.plain)
	s.AttendancePercentage = int(math.Round(aux.AttendancePercentage))
	s.TotalClasses = int(math.Round(aux.TotalClasses))
	s.ClassesAttended = int(math.Round(aux.ClassesAttended))
	return nil
}

// Percentage returns round(attended / total * 100), or 0 when no classes were held.
func Percentage(attended, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(attended) / float64(total) * 100))
}
