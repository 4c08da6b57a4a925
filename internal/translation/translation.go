// Package translation renders English text into Romanized and Gurmukhi
// Punjabi through an LLM provider. Translation is best-effort: on any
// provider failure the input text is returned unchanged, so callers
// always have something to show.
package translation

import (
	"context"
	"strings"

	"github.com/kiddanapp/kiddan/internal/llm"
)

const (
	maxTokens = 100

	// Low temperature keeps spellings stable across calls.
	temperature = 0.1
)

const romanPromptTemplate = `Translate this English text to Romanized Punjabi (using English letters to represent Punjabi sounds).
Keep the meaning and tone exactly the same. Use common Romanized Punjabi spellings.

English: %TEXT%

Romanized Punjabi:`

const gurmukhiPromptTemplate = `Translate this English text to Gurmukhi Punjabi script (ਪੰਜਾਬੀ ਗੁਰਮੁਖੀ ਲਿਪੀ).
Keep the meaning and tone exactly the same. Use proper Gurmukhi Unicode characters.

English: %TEXT%

Gurmukhi Punjabi:`

// Labels the model sometimes echoes back at the start of a translation.
var (
	romanLabels    = []string{"Romanized Punjabi:", "Roman:"}
	gurmukhiLabels = []string{"Gurmukhi Punjabi:", "ਗੁਰਮੁਖੀ:"}
)

// Translator converts English text to Punjabi renderings.
type Translator struct {
	provider llm.Provider
}

// NewTranslator creates a Translator. provider may be nil; translations
// then pass input through unchanged.
func NewTranslator(provider llm.Provider) *Translator {
	return &Translator{provider: provider}
}

// ToRoman translates English text to Romanized Punjabi. Returns the input
// unchanged on provider failure.
func (t *Translator) ToRoman(ctx context.Context, text string) string {
	ctx = llm.WithPurpose(ctx, "translate-roman")
	return t.translate(ctx, romanPromptTemplate, romanLabels, text)
}

// ToGurmukhi translates English text to Gurmukhi script. Returns the input
// unchanged on provider failure.
func (t *Translator) ToGurmukhi(ctx context.Context, text string) string {
	ctx = llm.WithPurpose(ctx, "translate-gurmukhi")
	return t.translate(ctx, gurmukhiPromptTemplate, gurmukhiLabels, text)
}

func (t *Translator) translate(ctx context.Context, tmpl string, labels []string, text string) string {
	if t.provider == nil || strings.TrimSpace(text) == "" {
		return text
	}

	prompt := strings.ReplaceAll(tmpl, "%TEXT%", text)

	resp, err := t.provider.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return text
	}

	out := strings.TrimSpace(resp.Text)
	if out == "" {
		return text
	}
	return stripLabels(out, labels)
}

// stripLabels removes a leading label the model echoed from the prompt.
func stripLabels(text string, labels []string) string {
	for _, label := range labels {
		if strings.HasPrefix(text, label) {
			return strings.TrimSpace(strings.TrimPrefix(text, label))
		}
	}
	return text
}
