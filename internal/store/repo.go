package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a persisted LLM request event.
type LLMEvent struct {
	ID        int64
	CreatedAt time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMEvents returns up to limit events, newest first.
	RecentLLMEvents(ctx context.Context, limit int) ([]*LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if absent.
	GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]*LLMUsageStat, error)
}

// Message is one persisted conversation exchange: the learner's message
// and the persona's reply in all three renditions.
type Message struct {
	ID             int64
	ConversationID string
	LearnerID      string
	PersonaID      string
	UserMessage    string
	ReplyEnglish   string
	ReplyRoman     string
	ReplyGurmukhi  string
	Language       string
	CreatedAt      time.Time
}

// MessageRepo persists conversation exchanges.
type MessageRepo interface {
	// Append stores a new message. The message ID is assigned on insert.
	Append(ctx context.Context, msg *Message) error

	// Recent returns up to limit messages for a conversation in
	// chronological order.
	Recent(ctx context.Context, conversationID string, limit int) ([]*Message, error)
}
