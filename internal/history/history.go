// Package history keeps a short rolling window of prior answer/feedback
// exchanges per learner and persona, used as prompt context.
package history

import "sync"

// PromptWindow is how many recent exchanges are included in AI prompts.
const PromptWindow = 3

// Exchange is one prior answer/feedback pair.
type Exchange struct {
	Answer   string
	Feedback string
}

type key struct {
	learnerID string
	personaID string
}

// Log stores exchange windows keyed by (learner, persona). Keys are
// independent: appends for one learner never block reads for another
// beyond the brief map access. Entries are bounded per key so the log
// cannot grow with conversation length.
type Log struct {
	maxPerKey int

	mu      sync.RWMutex
	entries map[key][]Exchange
}

// NewLog creates a Log keeping at most maxPerKey exchanges per
// learner/persona pair. maxPerKey values below PromptWindow are raised to
// PromptWindow so the prompt context never loses entries to trimming.
func NewLog(maxPerKey int) *Log {
	if maxPerKey < PromptWindow {
		maxPerKey = PromptWindow
	}
	return &Log{
		maxPerKey: maxPerKey,
		entries:   make(map[key][]Exchange),
	}
}

// Append records an exchange for the learner/persona pair, trimming the
// oldest entries beyond the per-key bound.
func (l *Log) Append(learnerID, personaID string, ex Exchange) {
	k := key{learnerID: learnerID, personaID: personaID}

	l.mu.Lock()
	defer l.mu.Unlock()

	window := append(l.entries[k], ex)
	if len(window) > l.maxPerKey {
		window = window[len(window)-l.maxPerKey:]
	}
	l.entries[k] = window
}

// Recent returns up to n of the most recent exchanges for the pair, in
// chronological order. The returned slice is a copy.
func (l *Log) Recent(learnerID, personaID string, n int) []Exchange {
	k := key{learnerID: learnerID, personaID: personaID}

	l.mu.RLock()
	defer l.mu.RUnlock()

	window := l.entries[k]
	if n > len(window) {
		n = len(window)
	}
	if n <= 0 {
		return nil
	}

	out := make([]Exchange, n)
	copy(out, window[len(window)-n:])
	return out
}
