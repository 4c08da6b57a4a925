package evaluation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiddanapp/kiddan/internal/llm"
	"github.com/kiddanapp/kiddan/internal/personas"
)

func testInput() *Input {
	return &Input{
		Answer:     "Sat Akal",
		Expected:   []string{"Sat Sri Akal"},
		Question:   "How do you greet someone in Punjabi?",
		LessonType: LessonText,
	}
}

func TestClassify_AutoPassBoundary(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClassifier(mock, DefaultConfig())
	th := ThresholdsFor(LessonText)

	// Exactly at the threshold is included.
	v := c.Classify(context.Background(), 0.90, th, testInput(), personas.Default())
	assert.Equal(t, StatePerfect, v.State)
	assert.False(t, v.Fallback)
	assert.Equal(t, 0, mock.CallCount(), "fast path must not hit the provider")
}

func TestClassify_WrongBelowAIZone(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClassifier(mock, DefaultConfig())
	th := ThresholdsFor(LessonText)

	v := c.Classify(context.Background(), 0.39, th, testInput(), personas.Default())
	assert.Equal(t, StateWrong, v.State)
	assert.Equal(t, 0, mock.CallCount(), "fast path must not hit the provider")
}

func TestClassify_AIZoneLowBoundaryArbitrates(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "ACCEPTABLE\nBahut vadiya koshish!"})
	c := NewClassifier(mock, DefaultConfig())
	th := ThresholdsFor(LessonText)

	// Exactly at AIZoneLow goes to arbitration, not the wrong fast path.
	v := c.Classify(context.Background(), 0.40, th, testInput(), personas.Default())
	assert.Equal(t, StateAcceptable, v.State)
	assert.Equal(t, "Bahut vadiya koshish!", v.AIText)
	assert.Equal(t, 1, mock.CallCount())
}

func TestClassify_ArbitrationVerdicts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want State
	}{
		{"perfect", "PERFECT\nShabash ji!", StatePerfect},
		{"partial", "PARTIAL\nThoda nere ho.", StatePartial},
		{"wrong", "WRONG\nEh galat hai ji.", StateWrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider()
			mock.AddResponse(llm.MockResponse{Text: tt.text})
			c := NewClassifier(mock, DefaultConfig())

			v := c.Classify(context.Background(), 0.60, ThresholdsFor(LessonText), testInput(), personas.Default())
			assert.Equal(t, tt.want, v.State)
			assert.NotEmpty(t, v.AIText)
			assert.False(t, v.Fallback)
		})
	}
}

func TestClassify_ProviderErrorFallsBackAcceptable(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	c := NewClassifier(mock, DefaultConfig())

	v := c.Classify(context.Background(), 0.60, ThresholdsFor(LessonText), testInput(), personas.Default())
	assert.Equal(t, StateAcceptable, v.State)
	assert.True(t, v.Fallback)
	assert.Empty(t, v.AIText)
}

func TestClassify_NilProviderFallsBackAcceptable(t *testing.T) {
	c := NewClassifier(nil, DefaultConfig())

	v := c.Classify(context.Background(), 0.60, ThresholdsFor(LessonText), testInput(), personas.Default())
	assert.Equal(t, StateAcceptable, v.State)
	assert.True(t, v.Fallback)
}

func TestClassify_UnparseableVerdictKeepsText(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "Bahut vadiya jawab si ji, shabash."})
	c := NewClassifier(mock, DefaultConfig())

	v := c.Classify(context.Background(), 0.60, ThresholdsFor(LessonText), testInput(), personas.Default())
	assert.Equal(t, StateAcceptable, v.State)
	assert.False(t, v.Fallback)
	assert.Equal(t, "Bahut vadiya jawab si ji, shabash.", v.AIText)
}

func TestClassify_PromptCarriesContext(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddResponse(llm.MockResponse{Text: "ACCEPTABLE\nTheek hai."})
	c := NewClassifier(mock, DefaultConfig())

	in := testInput()
	c.Classify(context.Background(), 0.60, ThresholdsFor(LessonText), in, personas.Default())

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, in.Answer)
	assert.Contains(t, req.Messages[0].Content, in.Expected[0])
	assert.Contains(t, req.Messages[0].Content, in.Question)
	assert.Contains(t, req.System, "PERFECT, ACCEPTABLE, PARTIAL, or WRONG")
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     State
		feedback string
		ok       bool
	}{
		{"plain", "PERFECT\nShabash!", StatePerfect, "Shabash!", true},
		{"lowercase", "acceptable\nVadiya.", StateAcceptable, "Vadiya.", true},
		{"punctuated", "**Partial.**\nNere ho.", StatePartial, "Nere ho.", true},
		{"leading blank lines", "\n\nWRONG\nGalat hai.", StateWrong, "Galat hai.", true},
		{"verdict only", "WRONG", StateWrong, "", true},
		{"multiline feedback", "PARTIAL\nline one\nline two", StatePartial, "line one\nline two", true},
		{"garbage", "I think this answer is fine.", "", "", false},
		{"empty", "", "", "", false},
		{"whitespace only", "  \n \t\n", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, feedback, ok := parseVerdict(tt.text)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if state != tt.want {
				t.Errorf("state = %q, want %q", state, tt.want)
			}
			if feedback != tt.feedback {
				t.Errorf("feedback = %q, want %q", feedback, tt.feedback)
			}
		})
	}
}
