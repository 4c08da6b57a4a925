package evaluation

import (
	"context"
	"strings"

	"github.com/kiddanapp/kiddan/internal/llm"
	"github.com/kiddanapp/kiddan/internal/personas"
)

// Config holds classifier settings for the AI arbitration call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for answer arbitration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   160,
		Temperature: 0.3,
	}
}

// Verdict is the classifier's decision plus the raw AI feedback, when the
// AI path ran and produced any.
type Verdict struct {
	State State

	// AIText is the feedback portion of the AI response, empty on the
	// fast paths and on provider failure.
	AIText string

	// Fallback marks that the AI path was needed but the provider failed
	// or was absent; the state is the lenient default.
	Fallback bool
}

// Classifier resolves an answer to one of the four states: threshold fast
// paths first, AI rubric arbitration for the ambiguous zone. If provider
// is nil, ambiguous answers take the lenient fallback.
type Classifier struct {
	provider llm.Provider
	cfg      Config
}

// NewClassifier creates a classifier. provider may be nil.
func NewClassifier(provider llm.Provider, cfg Config) *Classifier {
	return &Classifier{provider: provider, cfg: cfg}
}

// Classify resolves the state for a scored answer. It never returns an
// error: provider failures become a Fallback verdict.
func (c *Classifier) Classify(ctx context.Context, score float64, th Thresholds, in *Input, persona *personas.Persona) Verdict {
	if score >= th.AutoPass {
		return Verdict{State: StatePerfect}
	}
	if score < th.AIZoneLow {
		return Verdict{State: StateWrong}
	}
	return c.arbitrate(ctx, in, persona)
}

// arbitrate sends the rubric prompt and parses the verdict. Every failure
// mode — provider error, missing provider, malformed response — resolves
// to ACCEPTABLE so a flaky model never blocks learner progress.
func (c *Classifier) arbitrate(ctx context.Context, in *Input, persona *personas.Persona) Verdict {
	if c.provider == nil {
		return Verdict{State: StateAcceptable, Fallback: true}
	}

	ctx = llm.WithPurpose(ctx, "answer-eval")

	userMsg, err := buildRubricMessage(in, persona)
	if err != nil {
		return Verdict{State: StateAcceptable, Fallback: true}
	}

	resp, err := c.provider.Complete(ctx, llm.Request{
		System: rubricSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return Verdict{State: StateAcceptable, Fallback: true}
	}

	state, feedback, ok := parseVerdict(resp.Text)
	if !ok {
		// Malformed first line: lenient bias. Keep whatever text came back
		// as feedback rather than discarding it.
		return Verdict{State: StateAcceptable, AIText: strings.TrimSpace(resp.Text)}
	}
	return Verdict{State: state, AIText: feedback}
}

// parseVerdict splits an AI response into (state, feedback). The first
// non-empty line must be one of the four state names, case-insensitive,
// with surrounding punctuation tolerated.
func parseVerdict(text string) (State, string, bool) {
	lines := strings.Split(text, "\n")

	idx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			idx = i
			break
		}
	}
	if idx < 0 {
		return "", "", false
	}

	verdict := strings.ToUpper(strings.TrimSpace(lines[idx]))
	verdict = strings.Trim(verdict, ".,:;!*\"'")

	var state State
	switch verdict {
	case "PERFECT":
		state = StatePerfect
	case "ACCEPTABLE":
		state = StateAcceptable
	case "PARTIAL":
		state = StatePartial
	case "WRONG":
		state = StateWrong
	default:
		return "", "", false
	}

	feedback := strings.TrimSpace(strings.Join(lines[idx+1:], "\n"))
	return state, feedback, true
}
