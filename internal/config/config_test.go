package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "legacy-key", cfg.GeminiAPIKey)
	assert.Equal(t, time.Hour, cfg.AccessTTL())
	assert.Equal(t, 30*time.Second, cfg.RecognitionTimeout())
	assert.Equal(t, 75, cfg.Threshold())
	assert.False(t, cfg.LatencyEnabled())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestHelpersFallBackOnBadValues(t *testing.T) {
	cfg := &Config{
		AccessTokenTTLMinutes:     "soon",
		RecognitionTimeoutSeconds: "-1",
		AttendanceThreshold:       "120",
		Timezone:                  "Mars/Olympus",
		SimulateLatency:           "maybe",
		CORSOrigins:               " , ",
	}
	assert.Equal(t, time.Hour, cfg.AccessTTL())
	assert.Equal(t, 30*time.Second, cfg.RecognitionTimeout())
	assert.Equal(t, 75, cfg.Threshold())
	assert.Equal(t, time.Local, cfg.Location())
	assert.False(t, cfg.LatencyEnabled())
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
}

func TestHelpersParseValues(t *testing.T) {
	cfg := &Config{
		AccessTokenTTLMinutes:     "15",
		RecognitionTimeoutSeconds: "5",
		AttendanceThreshold:       "80",
		Timezone:                  "Asia/Kolkata",
		SimulateLatency:           "true",
		CORSOrigins:               "http://localhost:5173, https://dash.example.com",
	}
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL())
	assert.Equal(t, 5*time.Second, cfg.RecognitionTimeout())
	assert.Equal(t, 80, cfg.Threshold())
	assert.Equal(t, "Asia/Kolkata", cfg.Location().String())
	assert.True(t, cfg.LatencyEnabled())
	assert.Equal(t, []string{"http://localhost:5173", "https://dash.example.com"}, cfg.AllowedOrigins())
}

func TestThresholdRange(t *testing.T) {
	for in, want := range map[string]int{"0": 75, "-5": 75, "1": 1, "100": 100, "101": 75} {
		cfg := &Config{AttendanceThreshold: in}
		assert.Equal(t, want, cfg.Threshold(), in)
	}
}
