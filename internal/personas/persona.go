// Package personas resolves the conversational characters whose tone
// governs lesson feedback and chat replies.
package personas

import "context"

// Persona is a simulated conversational character.
type Persona struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name"`
	NameGurmukhi       string `json:"nameGurmukhi,omitempty"`
	Role               string `json:"role"`
	Personality        string `json:"personality,omitempty"`
	Background         string `json:"background,omitempty"`
	SpeakingStyle      string `json:"speaking_style,omitempty"`
	ConversationTopics string `json:"conversation_topics,omitempty"`
	Status             string `json:"status,omitempty"`
}

// Loader resolves a persona by ID. A missing persona is not an error:
// implementations return (nil, nil) and callers substitute Default().
type Loader interface {
	Load(ctx context.Context, id string) (*Persona, error)
}

// Default returns the fallback persona used when a lookup misses or fails.
func Default() *Persona {
	return &Persona{
		Name:          "Teacher",
		Personality:   "helpful",
		Role:          "teacher",
		SpeakingStyle: "friendly and encouraging",
	}
}

// Resolve looks up a persona and substitutes the default on a miss or a
// lookup failure. It never returns nil.
func Resolve(ctx context.Context, loader Loader, id string) *Persona {
	if loader == nil || id == "" {
		return Default()
	}
	p, err := loader.Load(ctx, id)
	if err != nil || p == nil {
		return Default()
	}
	return p
}
