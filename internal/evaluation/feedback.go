package evaluation

import (
	"fmt"

	"github.com/kiddanapp/kiddan/internal/personas"
)

// EmptyAnswerFeedback is the fixed message for empty submissions.
const EmptyAnswerFeedback = "Jawab deo ji."

// ComposeFeedback builds the user-facing message for an outcome. AI text,
// when present, is already in Roman Punjabi from the rubric call's own
// instructions and is inserted verbatim.
func ComposeFeedback(state State, advance bool, aiText string, persona *personas.Persona) string {
	if persona == nil {
		persona = personas.Default()
	}

	switch {
	case advance && state == StatePerfect:
		return fmt.Sprintf("Bilkul sahi jawab! %s bahut khush hai.", persona.Name)

	case advance && state == StateAcceptable:
		if aiText != "" {
			return "Bahut vadiya! " + aiText
		}
		return fmt.Sprintf("Bahut vadiya! %s nu tuhada jawab pasand aaya.", persona.Name)

	case !advance && state == StatePartial:
		if aiText != "" {
			return "Nere ho tusi! " + aiText
		}
		return "Nere ho tusi! Thoda hor dhyan naal koshish karo ji."

	default:
		if aiText != "" {
			return "Ye sahi nahi hai. " + aiText
		}
		return fmt.Sprintf("Ye sahi nahi hai. %s kehnda: dobara koshish karo ji.", persona.Name)
	}
}

// fallbackFeedback is the apology used when the AI path was needed but the
// provider failed. The learner is let through; the message asks for another
// try anyway so the miss doesn't read as a silent pass.
func fallbackFeedback(persona *personas.Persona) string {
	return fmt.Sprintf("Maaf karo ji, %s thoda ruk gaya. Sahi jawab check karo te agge vadho.", persona.Name)
}
