package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kiddanapp/kiddan/internal/llm"
	"github.com/kiddanapp/kiddan/internal/store"
	"github.com/kiddanapp/kiddan/internal/translation"
)

var translateCmd = &cobra.Command{
	Use:   "translate <text>",
	Short: "Translate English text to Roman and Gurmukhi Punjabi",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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
			return fmt.Errorf("translate requires an LLM provider: %w", err)
		}

		tr := translation.NewTranslator(provider)
		fmt.Printf("Roman:    %s\n", tr.ToRoman(ctx, args[0]))
		fmt.Printf("Gurmukhi: %s\n", tr.ToGurmukhi(ctx, args[0]))
		return nil
	},
}
