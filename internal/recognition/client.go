package recognition

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/zaqqye/facetrack_backend/internal/metrics"
	"github.com/zaqqye/facetrack_backend/internal/models"
)

const fallbackReasoning = "Security Protocol Error"

var ErrNotConfigured = errors.New("recognition api key not configured")

// Generator sends one prompt plus an inline image and returns the raw JSON text.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// Recognizer is what the scan endpoint depends on. ok is false when the
// verdict is the safe default standing in for a failed call.
type Recognizer interface {
	Recognize(ctx context.Context, img Image, roster []models.Student) (res models.RecognitionResponse, ok bool)
}

type Client struct {
	gen     Generator
	timeout time.Duration
}

func NewClient(gen Generator, timeout time.Duration) *Client {
	if gen == nil {
		gen = disabledGenerator{}
	}
	return &Client{gen: gen, timeout: timeout}
}

// Fallback is returned whenever the call or its decoding fails.
func Fallback() models.RecognitionResponse {
	return models.RecognitionResponse{
		StudentID:  nil,
		Confidence: 0,
		IsLive:     false,
		Reasoning:  fallbackReasoning,
	}
}

// Recognize never fails: errors degrade to Fallback with ok=false and are logged.
func (c *Client) Recognize(ctx context.Context, img Image, roster []models.Student) (models.RecognitionResponse, bool) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	mime := img.MIMEType
	if mime == "" {
		mime = DefaultMIMEType
	}

	start := time.Now()
	text, err := c.gen.GenerateJSON(ctx, BuildPrompt(roster), img.Data, mime)
	metrics.RecognitionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		log.Printf("recognition: request failed: %v", err)
		metrics.RecognitionFailures.WithLabelValues("request").Inc()
		return Fallback(), false
	}
	res, err := ParseResponse(text)
	if err != nil {
		log.Printf("recognition: %v", err)
		metrics.RecognitionFailures.WithLabelValues("parse").Inc()
		return Fallback(), false
	}
	return res, true
}

type wireResponse struct {
	StudentID  *string  `json:"studentId"`
	Confidence *float64 `json:"confidence"`
	IsLive     *bool    `json:"isLive"`
	Name       string   `json:"name"`
	Reasoning  string   `json:"reasoning"`
}

// ParseResponse decodes the model output. confidence and isLive are required.
func ParseResponse(text string) (models.RecognitionResponse, error) {
	text = stripFence(strings.TrimSpace(text))
	if text == "" {
		return models.RecognitionResponse{}, errors.New("empty response")
	}
	var w wireResponse
	dec := json.NewDecoder(strings.NewReader(text))
	if err := dec.Decode(&w); err != nil {
		return models.RecognitionResponse{}, errors.Wrap(err, "decode response")
	}
	if w.IsLive == nil || w.Confidence == nil {
		return models.RecognitionResponse{}, errors.New("response missing isLive or confidence")
	}
	res := models.RecognitionResponse{
		Confidence: *w.Confidence,
		IsLive:     *w.IsLive,
		Name:       w.Name,
		Reasoning:  w.Reasoning,
	}
	if w.StudentID != nil {
		if id := strings.TrimSpace(*w.StudentID); id != "" && !strings.EqualFold(id, "null") {
			res.StudentID = &id
		}
	}
	return res, nil
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

type disabledGenerator struct{}

func (disabledGenerator) GenerateJSON(context.Context, string, []byte, string) (string, error) {
	return "", ErrNotConfigured
}
