package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kiddanapp/kiddan/internal/chat"
	"github.com/kiddanapp/kiddan/internal/llm"
	"github.com/kiddanapp/kiddan/internal/personas"
	"github.com/kiddanapp/kiddan/internal/store"
	"github.com/kiddanapp/kiddan/internal/translation"
)

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send one conversational turn to a persona",
	Long: `Chat generates an in-character reply with Roman and Gurmukhi renditions
and stores the exchange. Pass --conversation to continue an earlier one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		personaID, _ := cmd.Flags().GetString("persona")
		conversationID, _ := cmd.Flags().GetString("conversation")
		learnerID, _ := cmd.Flags().GetString("learner")
		language, _ := cmd.Flags().GetString("language")

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
			return fmt.Errorf("chat requires an LLM provider: %w", err)
		}

		loader := personas.NewCache(personas.NewFileStore(resolvePersonasPath(cmd)), 5*time.Minute)
		service := chat.NewService(provider, loader, translation.NewTranslator(provider), st.MessageRepo())

		reply, err := service.GenerateReply(ctx, chat.Request{
			PersonaID:      personaID,
			LearnerID:      learnerID,
			ConversationID: conversationID,
			Message:        args[0],
			Language:       language,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Conversation: %s\n", reply.ConversationID)
		fmt.Printf("Expression:   %s\n", reply.Expression)
		fmt.Println()
		fmt.Printf("English:  %s\n", reply.English)
		fmt.Printf("Roman:    %s\n", reply.Roman)
		fmt.Printf("Gurmukhi: %s\n", reply.Gurmukhi)
		return nil
	},
}

func init() {
	chatCmd.Flags().StringP("persona", "p", "simran", "Persona ID to chat with")
	chatCmd.Flags().StringP("conversation", "c", "", "Conversation ID to continue")
	chatCmd.Flags().StringP("learner", "l", "", "Learner ID")
	chatCmd.Flags().String("language", "english", "Conversation language")
}
