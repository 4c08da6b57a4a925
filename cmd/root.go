package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kiddanapp/kiddan/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kiddan",
	Short: "Punjabi language tutor backend",
	Long:  "Kiddan — AI-assisted Punjabi tutor: answer evaluation, persona chat, and translation.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KIDDAN_DB env var)")
	rootCmd.PersistentFlags().String("personas", "", "Path to persona seed file (overrides KIDDAN_PERSONAS env var)")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KIDDAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolvePersonasPath returns the persona seed path using --personas, then
// KIDDAN_PERSONAS, then seed/characters.json next to the working directory.
func resolvePersonasPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("personas"); p != "" {
		return p
	}
	if p := os.Getenv("KIDDAN_PERSONAS"); p != "" {
		return p
	}
	return filepath.Join("seed", "characters.json")
}
