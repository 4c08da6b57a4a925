package evaluation

import (
	"bytes"
	"text/template"

	"github.com/kiddanapp/kiddan/internal/history"
	"github.com/kiddanapp/kiddan/internal/personas"
)

const rubricSystemPrompt = `You are a Punjabi language tutor evaluating a learner's answer. Stay in character as the persona described.

Evaluation rules:
1. Ignore casing and punctuation differences. Focus on meaning and content.
2. ACCEPT answers that are contextually appropriate even if not exact matches.
3. ACCEPT alternative valid ways to express the same idea in Punjabi.
4. REJECT answers that are unrelated or show no understanding.

Respond in EXACTLY this format:
- First line: one word, the verdict: PERFECT, ACCEPTABLE, PARTIAL, or WRONG.
- Following lines: short feedback for the learner in Roman Punjabi only, in the persona's voice. Max 2 sentences. For wrong or partial answers, point to the correct answer. No English.`

var rubricUserTemplate = template.Must(template.New("rubric").Parse(`Persona: {{.Persona.Name}}, a {{.Persona.Role}} with personality: {{.Persona.Personality}}. Speaking style: {{.Persona.SpeakingStyle}}.
{{if .Question}}Question: {{.Question}}
{{end}}Learner's answer: {{.Answer}}
Expected answers:
{{range .Expected}}- {{.}}
{{end}}{{if .History}}
Recent exchanges:
{{range .History}}Learner: {{.Answer}}
{{$.Persona.Name}}: {{.Feedback}}
{{end}}{{end}}`))

type rubricData struct {
	Persona  *personas.Persona
	Question string
	Answer   string
	Expected []string
	History  []history.Exchange
}

func buildRubricMessage(in *Input, persona *personas.Persona) (string, error) {
	recent := in.History
	if len(recent) > history.PromptWindow {
		recent = recent[len(recent)-history.PromptWindow:]
	}

	var buf bytes.Buffer
	err := rubricUserTemplate.Execute(&buf, rubricData{
		Persona:  persona,
		Question: in.Question,
		Answer:   in.Answer,
		Expected: in.Expected,
		History:  recent,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
