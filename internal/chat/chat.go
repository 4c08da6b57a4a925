// Package chat generates in-character conversational replies. Each turn
// produces an English reply plus Roman and Gurmukhi renditions, picks a
// facial expression for the client, and appends the exchange to the store.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kiddanapp/kiddan/internal/llm"
	"github.com/kiddanapp/kiddan/internal/personas"
	"github.com/kiddanapp/kiddan/internal/store"
	"github.com/kiddanapp/kiddan/internal/translation"
)

// ErrPersonaNotFound is returned when the requested persona does not exist.
// Unlike evaluation, a chat turn with the wrong character would be
// confusing, so there is no silent default here.
var ErrPersonaNotFound = errors.New("persona not found")

const (
	replyMaxTokens = 100

	// historyFetch is how many stored messages to load per turn;
	// historyWindow is how many of those go into the prompt.
	historyFetch  = 5
	historyWindow = 3
)

// Expressions the client can render for a persona.
const (
	ExpressionNormal = "normal"
	ExpressionHappy  = "happy"
	ExpressionAngry  = "angry"
	ExpressionSad    = "sad"
)

var (
	happyWords = []string{"happy", "great", "wonderful", "love", "excited"}
	angryWords = []string{"angry", "upset", "sorry", "wrong", "bad", "mad", "frustrated"}
	sadWords   = []string{"sad", "unhappy", "disappointed", "heartbroken", "depressed", "unfortunate"}
)

// Request is one conversational turn from a learner.
type Request struct {
	PersonaID string
	LearnerID string

	// ConversationID groups turns. Empty starts a new conversation.
	ConversationID string

	Message  string
	Language string
}

// Reply is the persona's answer in all three renditions.
type Reply struct {
	ConversationID string
	PersonaID      string
	Expression     string
	English        string
	Roman          string
	Gurmukhi       string
}

// Service generates chat replies. messages may be nil, in which case
// turns are not persisted and each turn is context-free.
type Service struct {
	provider   llm.Provider
	personas   personas.Loader
	translator *translation.Translator
	messages   store.MessageRepo
}

// NewService creates a chat Service.
func NewService(provider llm.Provider, loader personas.Loader, translator *translation.Translator, messages store.MessageRepo) *Service {
	if translator == nil {
		translator = translation.NewTranslator(provider)
	}
	return &Service{
		provider:   provider,
		personas:   loader,
		translator: translator,
		messages:   messages,
	}
}

// GenerateReply runs one conversational turn: builds the persona prompt
// with recent history, completes it, translates the reply into Roman and
// Gurmukhi concurrently, and appends the exchange to the store.
func (s *Service) GenerateReply(ctx context.Context, req Request) (*Reply, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, errors.New("empty message")
	}
	if s.provider == nil {
		return nil, &llm.ErrProviderUnavailable{}
	}

	persona, err := s.lookupPersona(ctx, req.PersonaID)
	if err != nil {
		return nil, err
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}
	language := req.Language
	if language == "" {
		language = "english"
	}

	recent, err := s.recentMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	resp, err := s.provider.Complete(llm.WithPurpose(ctx, "chat"), llm.Request{
		System: personaSystemPrompt(persona, language),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTurnMessage(persona, recent, req.Message)},
		},
		MaxTokens: replyMaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	english := strings.TrimSpace(resp.Text)
	if english == "" {
		return nil, &llm.ErrInvalidResponse{Err: errors.New("empty chat completion")}
	}

	// Both renditions derive from the same English text; run them
	// concurrently. Translation is best-effort and cannot fail.
	var roman, gurmukhi string
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		roman = s.translator.ToRoman(ctx, english)
	}()
	go func() {
		defer wg.Done()
		gurmukhi = s.translator.ToGurmukhi(ctx, english)
	}()
	wg.Wait()

	if s.messages != nil {
		msg := &store.Message{
			ConversationID: conversationID,
			LearnerID:      req.LearnerID,
			PersonaID:      persona.ID,
			UserMessage:    req.Message,
			ReplyEnglish:   english,
			ReplyRoman:     roman,
			ReplyGurmukhi:  gurmukhi,
			Language:       language,
		}
		if err := s.messages.Append(ctx, msg); err != nil {
			return nil, fmt.Errorf("persist message: %w", err)
		}
	}

	return &Reply{
		ConversationID: conversationID,
		PersonaID:      persona.ID,
		Expression:     DetectExpression(english),
		English:        english,
		Roman:          roman,
		Gurmukhi:       gurmukhi,
	}, nil
}

func (s *Service) lookupPersona(ctx context.Context, id string) (*personas.Persona, error) {
	if s.personas == nil {
		return nil, ErrPersonaNotFound
	}
	persona, err := s.personas.Load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load persona %q: %w", id, err)
	}
	if persona == nil {
		return nil, ErrPersonaNotFound
	}
	return persona, nil
}

func (s *Service) recentMessages(ctx context.Context, conversationID string) ([]*store.Message, error) {
	if s.messages == nil {
		return nil, nil
	}
	return s.messages.Recent(ctx, conversationID, historyFetch)
}

// DetectExpression picks a client expression from the reply text. First
// matching category wins, in happy, angry, sad order.
func DetectExpression(english string) string {
	lower := strings.ToLower(english)
	for _, w := range happyWords {
		if strings.Contains(lower, w) {
			return ExpressionHappy
		}
	}
	for _, w := range angryWords {
		if strings.Contains(lower, w) {
			return ExpressionAngry
		}
	}
	for _, w := range sadWords {
		if strings.Contains(lower, w) {
			return ExpressionSad
		}
	}
	return ExpressionNormal
}

func personaSystemPrompt(p *personas.Persona, language string) string {
	displayName := p.Name
	if p.NameGurmukhi != "" {
		displayName = fmt.Sprintf("%s (%s)", p.Name, p.NameGurmukhi)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, %s.\n\n", displayName, p.Role)
	fmt.Fprintf(&b, "Personality: %s\n", p.Personality)
	if p.Background != "" {
		fmt.Fprintf(&b, "Background: %s\n", p.Background)
	}
	if p.SpeakingStyle != "" {
		fmt.Fprintf(&b, "Speaking Style: %s\n", p.SpeakingStyle)
	}
	if p.Status != "" {
		fmt.Fprintf(&b, "Status: %s\n", p.Status)
	}
	fmt.Fprintf(&b, "\nYou are having a conversation in %s. Respond naturally in character, using appropriate Punjabi phrases and cultural references.\n", language)
	b.WriteString("Keep responses conversational and engaging. Remember previous messages in this conversation.")
	return b.String()
}

func buildTurnMessage(p *personas.Persona, recent []*store.Message, userMessage string) string {
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	var b strings.Builder
	if len(recent) > 0 {
		b.WriteString("Conversation History:\n")
		for _, msg := range recent {
			fmt.Fprintf(&b, "User: %s\n%s: %s\n\n", msg.UserMessage, p.Name, msg.ReplyEnglish)
		}
	}
	fmt.Fprintf(&b, "Current User Message: %s\n\nYour Response:", userMessage)
	return b.String()
}
