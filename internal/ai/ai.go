// Package ai rewrites feed items with a translated title and a short
// bullet summary produced by an LLM provider.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/muu0726/Tech-Information/internal/config"
)

// Digest is what a provider returns for one item.
type Digest struct {
	TranslatedTitle string
	Summary         string
}

// Summarizer produces a Digest for an item's title and text.
type Summarizer interface {
	Summarize(ctx context.Context, title, content string) (Digest, error)
}

const defaultLanguage = "Japanese"

// New creates a Summarizer from the given AI config.
func New(ctx context.Context, cfg *config.AIConfig, apiKey string) (Summarizer, error) {
	if cfg == nil || apiKey == "" {
		return nil, fmt.Errorf("AI not configured")
	}

	lang := cfg.Language
	if lang == "" {
		lang = defaultLanguage
	}
	client := &http.Client{Timeout: 30 * time.Second}

	switch cfg.Provider {
	case "gemini", "":
		g, err := newGeminiProvider(ctx, apiKey, cfg.Model, lang)
		if err != nil {
			return nil, err
		}
		return g, nil
	case "claude":
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		return &claudeProvider{apiKey: apiKey, model: model, lang: lang, client: client, endpoint: claudeEndpoint}, nil
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		return &openaiProvider{apiKey: apiKey, model: model, lang: lang, client: client, endpoint: openaiEndpoint}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: gemini, claude, openai)", cfg.Provider)
	}
}

const digestPrompt = `Using the news article below, respond with JSON in exactly this shape:
{"translated_title": "...", "summary": "..."}

1. translated_title: the article title translated into %[1]s.
2. summary: a three-line bullet summary of the article in %[1]s, one bullet per line, each line starting with "・".

Title: %[2]s
Description: %[3]s`

func buildPrompt(lang, title, content string) string {
	if content == "" {
		content = title
	}
	return fmt.Sprintf(digestPrompt, lang, title, content)
}

type digestJSON struct {
	TranslatedTitle string          `json:"translated_title"`
	Summary         json.RawMessage `json:"summary"`
}

// parseDigest accepts the JSON object bare or inside a markdown code
// fence. A summary given as an array becomes one "・" line per element.
func parseDigest(text string) (Digest, error) {
	text = stripFence(text)
	var raw digestJSON
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return Digest{}, fmt.Errorf("parsing digest: %w", err)
	}

	d := Digest{TranslatedTitle: strings.TrimSpace(raw.TranslatedTitle)}
	if len(raw.Summary) == 0 || string(raw.Summary) == "null" {
		return d, nil
	}

	var s string
	if err := json.Unmarshal(raw.Summary, &s); err == nil {
		d.Summary = strings.TrimSpace(s)
		return d, nil
	}
	var lines []string
	if err := json.Unmarshal(raw.Summary, &lines); err != nil {
		return Digest{}, fmt.Errorf("parsing digest summary: %w", err)
	}
	var b strings.Builder
	for _, l := range lines {
		l = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(l), "・-•"))
		if l == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("・")
		b.WriteString(l)
	}
	d.Summary = b.String()
	return d, nil
}

func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// drop the info string, e.g. ```json
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[i+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
