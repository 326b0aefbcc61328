package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentDecodesFractionalCounters(t *testing.T) {
	raw := `{"id":"4349","name":"Charan prabhu","grade":"11th Grade","photoUrl":"p.jpg",
		"attendancePercentage":85,"totalClasses":50,"classesAttended":42.5,"lastSeen":"2023-10-24 08:45 AM"}`

	var s Student
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, Student{
		ID:                   "4349",
		Name:                 "Charan prabhu",
		Grade:                "11th Grade",
		PhotoURL:             "p.jpg",
		AttendancePercentage: 85,
		TotalClasses:         50,
		ClassesAttended:      43,
		LastSeen:             "2023-10-24 08:45 AM",
	}, s)
}

func TestStudentRoundTrip(t *testing.T) {
	in := Student{ID: "4311", Name: "Ajay", TotalClasses: 50, ClassesAttended: 46, AttendancePercentage: 92}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out Student
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestStudentRejectsNonNumericCounters(t *testing.T) {
	var s Student
	assert.Error(t, json.Unmarshal([]byte(`{"id":"1","totalClasses":"many"}`), &s))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0, Percentage(0, 0))
	assert.Equal(t, 69, Percentage(35, 51))
	assert.Equal(t, 100, Percentage(1, 1))
}
