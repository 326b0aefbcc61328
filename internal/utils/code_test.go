package utils

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStudentIDRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		id, err := GenerateStudentID()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(id, "STU"), id)
		n, err := strconv.Atoi(strings.TrimPrefix(id, "STU"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestUniqueStudentIDSkipsTaken(t *testing.T) {
	seen := map[string]bool{}
	calls := 0
	id, err := UniqueStudentID(func(s string) bool {
		calls++
		// first two draws collide
		if calls <= 2 {
			seen[s] = true
			return true
		}
		return false
	}, 8)
	require.NoError(t, err)
	assert.False(t, seen[id])
	assert.Equal(t, 3, calls)
}

func TestUniqueStudentIDFallsBackWhenRangeExhausted(t *testing.T) {
	id, err := UniqueStudentID(func(s string) bool {
		n, _ := strconv.Atoi(strings.TrimPrefix(s, "STU"))
		return n >= 1000 && n <= 9999 && len(s) == 7
	}, 4)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "STU"))
}

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hashed, "admin123"))
	assert.False(t, CheckPassword(hashed, "nope"))
}
