package evaluation

// LessonType tags a lesson step and selects the threshold policy.
type LessonType string

const (
	LessonMCQ         LessonType = "mcq"
	LessonText        LessonType = "text"
	LessonTranslation LessonType = "translation"
)

// Thresholds bound the fast paths for a lesson type. Scores at or above
// AutoPass classify PERFECT without an AI call; scores below AIZoneLow
// classify WRONG without an AI call; the zone between goes to arbitration.
type Thresholds struct {
	AutoPass     float64
	AIZoneLow    float64
	acceptStates map[State]bool
}

// Accepts reports whether a state allows the learner to advance under
// this policy.
func (t Thresholds) Accepts(s State) bool {
	return t.acceptStates[s]
}

// ThresholdsFor returns the threshold policy for a lesson type.
//
// Multiple-choice answers must match almost exactly to auto-pass (wrong
// options share little text with the right one, so the AI-zone floor sits
// lower too, and only PERFECT advances). Free-text and translation answers
// get wider tolerance bands because phrasing varies.
func ThresholdsFor(lt LessonType) Thresholds {
	switch canonicalLessonType(lt) {
	case LessonMCQ:
		return Thresholds{
			AutoPass:     0.95,
			AIZoneLow:    0.50,
			acceptStates: map[State]bool{StatePerfect: true},
		}
	case LessonText:
		return Thresholds{
			AutoPass:     0.90,
			AIZoneLow:    0.40,
			acceptStates: map[State]bool{StatePerfect: true, StateAcceptable: true},
		}
	case LessonTranslation:
		return Thresholds{
			AutoPass:     0.88,
			AIZoneLow:    0.35,
			acceptStates: map[State]bool{StatePerfect: true, StateAcceptable: true},
		}
	default:
		return Thresholds{
			AutoPass:     0.85,
			AIZoneLow:    0.45,
			acceptStates: map[State]bool{StatePerfect: true, StateAcceptable: true},
		}
	}
}

// canonicalLessonType folds the legacy step-type aliases used by lesson
// content ("multiple-choice", "text-input") onto the canonical tags.
func canonicalLessonType(lt LessonType) LessonType {
	switch lt {
	case "multiple-choice":
		return LessonMCQ
	case "text-input":
		return LessonText
	default:
		return lt
	}
}
