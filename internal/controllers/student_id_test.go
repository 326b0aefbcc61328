package controllers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentIDUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"id":"4311"}`, "4311"},
		{`{"id":" STU1234 "}`, "STU1234"},
		{`{"id":4349}`, "4349"},
		{`{"id":null}`, ""},
		{`{}`, ""},
	}
	for _, tc := range cases {
		var body struct {
			ID StudentID `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(tc.in), &body), tc.in)
		assert.Equal(t, tc.want, body.ID.String(), tc.in)
	}
}

func TestStudentIDRejectsNonIntegers(t *testing.T) {
	for _, in := range []string{`{"id":42.5}`, `{"id":true}`, `{"id":["4311"]}`} {
		var body struct {
			ID StudentID `json:"id"`
		}
		assert.Error(t, json.Unmarshal([]byte(in), &body), in)
	}
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole("admin"))
	assert.True(t, IsValidRole("operator"))
	assert.False(t, IsValidRole("student"))
}
