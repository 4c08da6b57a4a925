package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiddanapp/kiddan/internal/llm"
	"github.com/kiddanapp/kiddan/internal/personas"
	"github.com/kiddanapp/kiddan/internal/store"
	"github.com/kiddanapp/kiddan/internal/translation"
)

type fakeLoader struct {
	personas map[string]*personas.Persona
}

func (l *fakeLoader) Load(_ context.Context, id string) (*personas.Persona, error) {
	return l.personas[id], nil
}

type fakeMessageRepo struct {
	mu        sync.Mutex
	messages  []*store.Message
	appendErr error
}

func (r *fakeMessageRepo) Append(_ context.Context, msg *store.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	msg.ID = int64(len(r.messages) + 1)
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeMessageRepo) Recent(_ context.Context, conversationID string, limit int) ([]*store.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*store.Message
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func testLoader() *fakeLoader {
	return &fakeLoader{personas: map[string]*personas.Persona{
		"simran": {
			ID:           "simran",
			Name:         "Simran",
			NameGurmukhi: "ਸਿਮਰਨ",
			Role:         "a friendly Punjabi teacher",
			Personality:  "warm and patient",
		},
	}}
}

// passthroughService builds a Service whose translator has no provider, so
// both renditions equal the English reply and canned responses stay
// deterministic.
func passthroughService(mock *llm.MockProvider, repo *fakeMessageRepo) *Service {
	return NewService(mock, testLoader(), translation.NewTranslator(nil), repo)
}

func TestGenerateReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Sat Sri Akal! I am so happy to meet you."})
	repo := &fakeMessageRepo{}
	s := passthroughService(mock, repo)

	reply, err := s.GenerateReply(context.Background(), Request{
		PersonaID: "simran",
		LearnerID: "learner-1",
		Message:   "Hello!",
	})
	require.NoError(t, err)

	assert.Equal(t, "Sat Sri Akal! I am so happy to meet you.", reply.English)
	assert.Equal(t, reply.English, reply.Roman, "passthrough translator")
	assert.Equal(t, reply.English, reply.Gurmukhi, "passthrough translator")
	assert.Equal(t, ExpressionHappy, reply.Expression)
	assert.Equal(t, "simran", reply.PersonaID)
	assert.NotEmpty(t, reply.ConversationID, "a new conversation gets an ID")

	require.Len(t, repo.messages, 1)
	msg := repo.messages[0]
	assert.Equal(t, reply.ConversationID, msg.ConversationID)
	assert.Equal(t, "learner-1", msg.LearnerID)
	assert.Equal(t, "Hello!", msg.UserMessage)
	assert.Equal(t, reply.English, msg.ReplyEnglish)
	assert.Equal(t, "english", msg.Language)
}

func TestGenerateReply_PersonaInSystemPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Kiddan!"})
	s := passthroughService(mock, &fakeMessageRepo{})

	_, err := s.GenerateReply(context.Background(), Request{PersonaID: "simran", Message: "Hi"})
	require.NoError(t, err)

	require.Equal(t, 1, mock.CallCount())
	sys := mock.Calls[0].System
	assert.Contains(t, sys, "Simran")
	assert.Contains(t, sys, "ਸਿਮਰਨ")
	assert.Contains(t, sys, "warm and patient")
	assert.Contains(t, sys, "conversation in english")
}

func TestGenerateReply_HistoryWindow(t *testing.T) {
	repo := &fakeMessageRepo{}
	for i := 1; i <= 5; i++ {
		repo.messages = append(repo.messages, &store.Message{
			ConversationID: "conv-1",
			UserMessage:    fmt.Sprintf("question %d", i),
			ReplyEnglish:   fmt.Sprintf("answer %d", i),
		})
	}

	mock := llm.NewMockProvider(llm.MockResponse{Text: "Theek hai."})
	s := passthroughService(mock, repo)

	_, err := s.GenerateReply(context.Background(), Request{
		PersonaID:      "simran",
		ConversationID: "conv-1",
		Message:        "question 6",
	})
	require.NoError(t, err)

	prompt := mock.Calls[0].Messages[0].Content
	assert.Contains(t, prompt, "Conversation History:")
	assert.NotContains(t, prompt, "question 2", "only the last three exchanges go into the prompt")
	assert.Contains(t, prompt, "question 3")
	assert.Contains(t, prompt, "question 5")
	assert.Contains(t, prompt, "Current User Message: question 6")
}

func TestGenerateReply_KeepsConversationID(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Haan ji."})
	s := passthroughService(mock, &fakeMessageRepo{})

	reply, err := s.GenerateReply(context.Background(), Request{
		PersonaID:      "simran",
		ConversationID: "conv-7",
		Message:        "Hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "conv-7", reply.ConversationID)
}

func TestGenerateReply_TranslatesBothRenditions(t *testing.T) {
	// Reply first, then two translation calls in either order. Both canned
	// translations carry the same text so ordering doesn't matter.
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "Hello friend."},
		llm.MockResponse{Text: "Sat Sri Akal dost."},
		llm.MockResponse{Text: "Sat Sri Akal dost."},
	)
	s := NewService(mock, testLoader(), nil, &fakeMessageRepo{})

	reply, err := s.GenerateReply(context.Background(), Request{PersonaID: "simran", Message: "Hi"})
	require.NoError(t, err)

	assert.Equal(t, 3, mock.CallCount(), "one reply call plus two translation calls")
	assert.Equal(t, "Sat Sri Akal dost.", reply.Roman)
	assert.Equal(t, "Sat Sri Akal dost.", reply.Gurmukhi)
}

func TestGenerateReply_Errors(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		s := passthroughService(llm.NewMockProvider(), &fakeMessageRepo{})
		_, err := s.GenerateReply(context.Background(), Request{PersonaID: "simran", Message: "   "})
		assert.Error(t, err)
	})

	t.Run("unknown persona", func(t *testing.T) {
		s := passthroughService(llm.NewMockProvider(), &fakeMessageRepo{})
		_, err := s.GenerateReply(context.Background(), Request{PersonaID: "nobody", Message: "Hi"})
		assert.ErrorIs(t, err, ErrPersonaNotFound)
	})

	t.Run("nil provider", func(t *testing.T) {
		s := NewService(nil, testLoader(), nil, &fakeMessageRepo{})
		_, err := s.GenerateReply(context.Background(), Request{PersonaID: "simran", Message: "Hi"})
		var unavailable *llm.ErrProviderUnavailable
		assert.ErrorAs(t, err, &unavailable)
	})

	t.Run("provider failure", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
		s := passthroughService(mock, &fakeMessageRepo{})
		_, err := s.GenerateReply(context.Background(), Request{PersonaID: "simran", Message: "Hi"})
		assert.Error(t, err)
	})

	t.Run("append failure", func(t *testing.T) {
		mock := llm.NewMockProvider(llm.MockResponse{Text: "Kiddan!"})
		repo := &fakeMessageRepo{appendErr: errors.New("disk full")}
		s := passthroughService(mock, repo)
		_, err := s.GenerateReply(context.Background(), Request{PersonaID: "simran", Message: "Hi"})
		assert.ErrorContains(t, err, "persist message")
	})
}

func TestDetectExpression(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"I am so happy for you!", ExpressionHappy},
		{"What a wonderful answer.", ExpressionHappy},
		{"That is wrong, try again.", ExpressionAngry},
		{"I am sorry to hear that.", ExpressionAngry},
		{"That makes me sad.", ExpressionSad},
		{"How unfortunate.", ExpressionSad},
		{"Let's practice greetings.", ExpressionNormal},
		{"", ExpressionNormal},
		// Happy wins over sad when both appear.
		{"I love it, even if the ending is sad.", ExpressionHappy},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectExpression(tt.text))
		})
	}
}
