package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kiddanapp/kiddan/internal/evaluation"
	"github.com/kiddanapp/kiddan/internal/llm"
	"github.com/kiddanapp/kiddan/internal/personas"
	"github.com/kiddanapp/kiddan/internal/store"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <answer>",
	Short: "Evaluate a learner's answer against expected answers",
	Long: `Evaluate scores an answer against one or more expected answers and prints
the outcome. Without a configured LLM provider the ambiguous zone falls
back to lenient acceptance instead of AI arbitration.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		expected, _ := cmd.Flags().GetStringArray("expected")
		question, _ := cmd.Flags().GetString("question")
		lessonType, _ := cmd.Flags().GetString("type")
		personaID, _ := cmd.Flags().GetString("persona")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Ambiguous answers will be accepted without AI arbitration.")
			provider = nil
		}

		loader := personas.NewFileStore(resolvePersonasPath(cmd))
		evaluator := evaluation.NewEvaluator(provider, loader, evaluation.DefaultConfig())

		result := evaluator.Evaluate(ctx, evaluation.Input{
			Answer:     args[0],
			Expected:   expected,
			Question:   question,
			LessonType: evaluation.LessonType(lessonType),
			PersonaID:  personaID,
		})

		fmt.Printf("State:      %s\n", result.State)
		fmt.Printf("Advance:    %v\n", result.Advance)
		fmt.Printf("Confidence: %.2f\n", result.Confidence)
		fmt.Printf("Feedback:   %s\n", result.Feedback)
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringArrayP("expected", "e", nil, "Expected answer (repeatable)")
	evaluateCmd.Flags().StringP("question", "q", "", "The question being answered")
	evaluateCmd.Flags().StringP("type", "t", "", "Lesson type: mcq, text, or translation")
	evaluateCmd.Flags().StringP("persona", "p", "", "Persona ID for feedback voice")
}
