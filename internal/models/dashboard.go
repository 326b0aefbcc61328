package models

type DashboardStats struct {
	TotalStudents      int             `json:"totalStudents"`
	PresentToday       int             `json:"presentToday"`
	AbsentToday        int             `json:"absentToday"`
	LowAttendanceCount int             `json:"lowAttendanceCount"`
	OverallAttendance  int             `json:"overallAttendance"`
	Threshold          int             `json:"threshold"`
	RecentActivity     []AttendanceLog `json:"recentActivity"`
}
