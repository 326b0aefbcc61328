package recognition

import (
	"fmt"
	"strings"

	"github.com/zaqqye/facetrack_backend/internal/models"
)

const promptTemplate = `You are a high-security Biometric Liveness Engine.
TASK 1: LIVENESS CHECK.
Determine if the image is a LIVE human or a reproduction (photo, screen, mask).
Look for: Screen moire patterns, glare on glass, paper borders, or 2D flatness.

TASK 2: IDENTIFICATION.
Compare the live human against this roster:
%s

STRICT RULES:
- If it's a photo of a photo/screen, set isLive: false.
- Only if isLive: true, attempt identification.
- studentId must be one of the roster IDs above, or null.

Return strict JSON.`

// RosterContext lists one "ID: .., Name: .., Grade: .." line per student.
func RosterContext(roster []models.Student) string {
	lines := make([]string, 0, len(roster))
	for _, s := range roster {
		lines = append(lines, fmt.Sprintf("ID: %s, Name: %s, Grade: %s", s.ID, s.Name, s.Grade))
	}
	return strings.Join(lines, "\n")
}

func BuildPrompt(roster []models.Student) string {
	return fmt.Sprintf(promptTemplate, RosterContext(roster))
}
