package attendance

import "github.com/zaqqye/facetrack_backend/internal/models"

// DefaultRoster returns a fresh copy of the demo roster written by ResetToDefaults.
func DefaultRoster() []models.Student {
	return []models.Student{
		{
			ID:                   "4311",
			Name:                 "Ajay",
			Grade:                "10th Grade",
			PhotoURL:             "https://picsum.photos/seed/ajay/200/200",
			AttendancePercentage: 92,
			TotalClasses:         50,
			ClassesAttended:      46,
			LastSeen:             "2023-10-24 08:30 AM",
		},
		{
			ID:                   "4315",
			Name:                 "Aashritha",
			Grade:                "10th Grade",
			PhotoURL:             "https://picsum.photos/seed/aashritha/200/200",
			AttendancePercentage: 68,
			TotalClasses:         50,
			ClassesAttended:      34,
			LastSeen:             "2023-10-23 09:15 AM",
		},
		{
			ID:                   "4349",
			Name:                 "Charan prabhu",
			Grade:                "11th Grade",
			PhotoURL:             "https://picsum.photos/seed/charan/200/200",
			AttendancePercentage: 84,
			TotalClasses:         50,
			ClassesAttended:      42,
			LastSeen:             "2023-10-24 08:45 AM",
		},
		{
			ID:                   "4351",
			Name:                 "Abhi",
			Grade:                "12th Grade",
			PhotoURL:             "https://picsum.photos/seed/diana/200/200",
			AttendancePercentage: 72,
			TotalClasses:         50,
			ClassesAttended:      36,
			LastSeen:             "2023-10-22 10:00 AM",
		},
	}
}
