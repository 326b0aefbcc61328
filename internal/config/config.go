package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          string
	StorageDriver string // postgres | memory
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	// Token settings
	JWTSecret             string
	AccessTokenTTLMinutes string
	// Operator accounts
	AdminEmail       string
	AdminPassword    string
	AdminFullName    string
	OperatorEmail    string
	OperatorPassword string
	// Recognition
	GeminiAPIKey              string
	GeminiModel               string
	RecognitionTimeoutSeconds string
	// Attendance rules
	AttendanceThreshold string
	LateAfter           string // HH:MM local time, empty disables Late status
	Timezone            string
	SimulateLatency     string
	CORSOrigins         string
}

func Load() *Config {
	return &Config{
		Port:                      getenv("PORT", "8080"),
		StorageDriver:             getenv("STORAGE_DRIVER", "postgres"),
		DBHost:                    getenv("DB_HOST", "localhost"),
		DBPort:                    getenv("DB_PORT", "5432"),
		DBUser:                    getenv("DB_USER", "postgres"),
		DBPassword:                getenv("DB_PASSWORD", "postgres"),
		DBName:                    getenv("DB_NAME", "facetrack_db"),
		DBSSLMode:                 getenv("DB_SSLMODE", "disable"),
		JWTSecret:                 getenv("JWT_SECRET", "supersecret_change_me"),
		AccessTokenTTLMinutes:     getenv("ACCESS_TOKEN_TTL_MINUTES", "60"),
		AdminEmail:                getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword:             getenv("ADMIN_PASSWORD", "admin123"),
		AdminFullName:             getenv("ADMIN_FULL_NAME", "Administrator"),
		OperatorEmail:             getenv("OPERATOR_EMAIL", ""),
		OperatorPassword:          getenv("OPERATOR_PASSWORD", ""),
		GeminiAPIKey:              getenv("GEMINI_API_KEY", getenv("API_KEY", "")),
		GeminiModel:               getenv("GEMINI_MODEL", "gemini-3-flash-preview"),
		RecognitionTimeoutSeconds: getenv("RECOGNITION_TIMEOUT_SECONDS", "30"),
		AttendanceThreshold:       getenv("ATTENDANCE_THRESHOLD", "75"),
		LateAfter:                 getenv("LATE_AFTER", ""),
		Timezone:                  getenv("TIMEZONE", "Local"),
		SimulateLatency:           getenv("SIMULATE_LATENCY", "false"),
		CORSOrigins:               getenv("CORS_ORIGINS", "*"),
	}
}

// AccessTTL falls back to one hour when the configured value is unusable.
func (c *Config) AccessTTL() time.Duration {
	d, err := time.ParseDuration(c.AccessTokenTTLMinutes + "m")
	if err != nil || d <= 0 {
		return 60 * time.Minute
	}
	return d
}

func (c *Config) RecognitionTimeout() time.Duration {
	n, err := strconv.Atoi(c.RecognitionTimeoutSeconds)
	if err != nil || n <= 0 {
		return 30 * time.Second
	}
	return time.Duration(n) * time.Second
}

// Threshold is a percentage in 1..100, anything else falls back to 75.
func (c *Config) Threshold() int {
	n, err := strconv.Atoi(c.AttendanceThreshold)
	if err != nil || n <= 0 || n > 100 {
		return 75
	}
	return n
}

func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) LatencyEnabled() bool {
	v, err := strconv.ParseBool(c.SimulateLatency)
	return err == nil && v
}

func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
