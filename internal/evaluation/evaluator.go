package evaluation

import (
	"context"
	"strings"

	"github.com/kiddanapp/kiddan/internal/llm"
	"github.com/kiddanapp/kiddan/internal/personas"
	"github.com/kiddanapp/kiddan/internal/textmatch"
)

// Evaluator is the single entry point for answer evaluation. It wires the
// similarity scorer, threshold policy, classifier, and feedback composer
// into one request/response cycle.
//
// Evaluate never fails: collaborator errors are converted into lenient
// results internally. It performs at most one provider call and one
// persona lookup per invocation and keeps no mutable state, so a single
// Evaluator is safe for concurrent use.
type Evaluator struct {
	personaLoader personas.Loader
	classifier    *Classifier
}

// NewEvaluator creates an Evaluator. provider and personaLoader may be
// nil; evaluation then runs heuristic-only with the default persona.
func NewEvaluator(provider llm.Provider, personaLoader personas.Loader, cfg Config) *Evaluator {
	return &Evaluator{
		personaLoader: personaLoader,
		classifier:    NewClassifier(provider, cfg),
	}
}

// Evaluate classifies one answer and produces feedback. The caller owns
// the exchange history and is responsible for appending this result to it.
func (e *Evaluator) Evaluate(ctx context.Context, in Input) *Result {
	// Empty submissions short-circuit before any scoring or lookups.
	if strings.TrimSpace(in.Answer) == "" {
		return &Result{
			State:    StateWrong,
			Advance:  false,
			Feedback: EmptyAnswerFeedback,
		}
	}

	th := ThresholdsFor(in.LessonType)
	persona := personas.Resolve(ctx, e.personaLoader, in.PersonaID)

	// Open-ended question: nothing to score against, accept any real
	// attempt rather than failing the learner.
	if len(in.Expected) == 0 {
		state := StateAcceptable
		advance := th.Accepts(state)
		return &Result{
			State:    state,
			Advance:  advance,
			Feedback: ComposeFeedback(state, advance, "", persona),
		}
	}

	score := textmatch.HeuristicScore(in.Answer, in.Expected)

	verdict := e.classifier.Classify(ctx, score, th, &in, persona)

	// The advance decision lives here, not in the classifier, so the
	// acceptance policy stays centralized in the threshold table.
	advance := th.Accepts(verdict.State)

	feedback := ComposeFeedback(verdict.State, advance, verdict.AIText, persona)
	if verdict.Fallback {
		feedback = fallbackFeedback(persona)
	}

	return &Result{
		State:      verdict.State,
		Advance:    advance,
		Feedback:   feedback,
		Confidence: score,
	}
}
