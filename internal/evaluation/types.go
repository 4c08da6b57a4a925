// Package evaluation decides whether a learner's free-text answer is
// correct enough to advance and produces persona-flavored feedback.
//
// Classification takes a fast path on the blended similarity score when the
// answer is clearly right or clearly wrong; the ambiguous zone in between
// is arbitrated by a single LLM rubric call. Provider failures never
// escape: evaluation always returns a result.
package evaluation

import "github.com/kiddanapp/kiddan/internal/history"

// State is the classification outcome for a learner answer, ordered here
// from best to worst for display. Only membership in a policy's accept set
// matters for the advance decision.
type State string

const (
	StatePerfect    State = "PERFECT"
	StateAcceptable State = "ACCEPTABLE"
	StatePartial    State = "PARTIAL"
	StateWrong      State = "WRONG"
)

// Input carries one answer evaluation request.
type Input struct {
	// Answer is the learner's raw submitted text.
	Answer string

	// Expected is the set of acceptable phrasings. The learner only needs
	// to match one. An empty set marks an open-ended question.
	Expected []string

	// Question is the prompt the learner answered, used for AI context.
	Question string

	// LessonType selects the threshold policy.
	LessonType LessonType

	// PersonaID selects the character whose voice flavors feedback.
	// Empty or unknown IDs fall back to the default persona.
	PersonaID string

	// History holds recent exchanges for this learner and persona; the
	// most recent few are included as AI prompt context.
	History []history.Exchange
}

// Result is the outcome of one evaluation. It is created fresh per call.
type Result struct {
	// State is the classification outcome.
	State State

	// Advance reports whether the learner may move to the next step.
	// True exactly when State is in the lesson type's accept set.
	Advance bool

	// Feedback is the user-facing message, already persona-flavored.
	Feedback string

	// Confidence is the raw heuristic score, kept even when the AI path
	// decided the state so callers can audit how close the heuristic was.
	Confidence float64
}
