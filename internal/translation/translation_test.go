package translation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiddanapp/kiddan/internal/llm"
)

func TestToRoman(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Sat Sri Akal, tusi kiven ho?"})
	tr := NewTranslator(mock)

	got := tr.ToRoman(context.Background(), "Hello, how are you?")
	assert.Equal(t, "Sat Sri Akal, tusi kiven ho?", got)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Contains(t, req.Messages[0].Content, "Hello, how are you?")
	assert.Contains(t, req.Messages[0].Content, "Romanized Punjabi")
	assert.Equal(t, maxTokens, req.MaxTokens)
	assert.InDelta(t, temperature, req.Temperature, 1e-9)
}

func TestToGurmukhi(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ਸਤ ਸ੍ਰੀ ਅਕਾਲ"})
	tr := NewTranslator(mock)

	got := tr.ToGurmukhi(context.Background(), "Hello")
	assert.Equal(t, "ਸਤ ਸ੍ਰੀ ਅਕਾਲ", got)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Gurmukhi")
}

func TestTranslate_StripsEchoedLabels(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"roman label", "Romanized Punjabi: Sat Sri Akal", "Sat Sri Akal"},
		{"short roman label", "Roman: Sat Sri Akal", "Sat Sri Akal"},
		{"no label", "Sat Sri Akal", "Sat Sri Akal"},
		{"label mid-text kept", "Kiddan! Roman: nahi", "Kiddan! Roman: nahi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Text: tt.text})
			tr := NewTranslator(mock)
			assert.Equal(t, tt.want, tr.ToRoman(context.Background(), "Hello"))
		})
	}
}

func TestTranslate_GurmukhiLabelStripped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Gurmukhi Punjabi: ਸਤ ਸ੍ਰੀ ਅਕਾਲ"})
	tr := NewTranslator(mock)
	assert.Equal(t, "ਸਤ ਸ੍ਰੀ ਅਕਾਲ", tr.ToGurmukhi(context.Background(), "Hello"))
}

func TestTranslate_ReturnsInputOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	tr := NewTranslator(mock)

	got := tr.ToRoman(context.Background(), "Hello there")
	assert.Equal(t, "Hello there", got)
}

func TestTranslate_ReturnsInputOnEmptyCompletion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "   "})
	tr := NewTranslator(mock)

	got := tr.ToGurmukhi(context.Background(), "Hello there")
	assert.Equal(t, "Hello there", got)
}

func TestTranslate_NilProviderPassesThrough(t *testing.T) {
	tr := NewTranslator(nil)
	assert.Equal(t, "Hello", tr.ToRoman(context.Background(), "Hello"))
	assert.Equal(t, "Hello", tr.ToGurmukhi(context.Background(), "Hello"))
}

func TestTranslate_BlankInputSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	tr := NewTranslator(mock)

	assert.Equal(t, "  ", tr.ToRoman(context.Background(), "  "))
	assert.Equal(t, 0, mock.CallCount())
}
