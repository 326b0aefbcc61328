package recognition

import (
	"context"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-3-flash-preview"

var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"studentId":  {Type: genai.TypeString, Nullable: genai.Ptr(true)},
		"confidence": {Type: genai.TypeNumber},
		"isLive": {
			Type:        genai.TypeBoolean,
			Description: "True only if subject is a physical live person",
		},
		"name":      {Type: genai.TypeString},
		"reasoning": {Type: genai.TypeString},
	},
	Required: []string{"studentId", "confidence", "isLive"},
}

// GeminiGenerator calls the Gemini generateContent API with a JSON response schema.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "gemini client")
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateJSON(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	})
	if err != nil {
		return "", errors.Wrap(err, "generate content")
	}
	return resp.Text(), nil
}
