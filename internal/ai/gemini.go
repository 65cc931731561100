package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

type geminiProvider struct {
	client *genai.Client
	model  string
	lang   string
}

func newGeminiProvider(ctx context.Context, apiKey, model, lang string) (*geminiProvider, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiProvider{client: client, model: model, lang: lang}, nil
}

func (g *geminiProvider) Summarize(ctx context.Context, title, content string) (Digest, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(buildPrompt(g.lang, title, content)),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return Digest{}, fmt.Errorf("gemini API error: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return Digest{}, fmt.Errorf("empty gemini response")
	}
	return parseDigest(text)
}
