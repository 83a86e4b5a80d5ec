// Package translate provides the Gemini-backed translation fallback.
package translate

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiTranslator struct {
	model *genai.GenerativeModel
}

func NewGeminiTranslator(apiKey string) (*GeminiTranslator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-flash")
	return &GeminiTranslator{model: model}, nil
}

// Translate renders the given text in English. Only the translated text is
// requested from the model; anything else it says is still returned verbatim,
// so callers should treat the output as best-effort.
func (g *GeminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	prompt := "Translate the following text to English. Reply with the translation only, no commentary:\n\n" + text
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini translate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini translate: empty response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
