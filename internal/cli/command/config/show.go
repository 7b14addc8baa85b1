package config

import (
	"context"
	"fmt"
	"strings"

	cfg "github.com/Tomas-vilte/MateTicket/internal/config"
	"github.com/Tomas-vilte/MateTicket/internal/i18n"
	"github.com/urfave/cli/v3"
)

func newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Show the current configuration",
		Action: func(ctx context.Context, command *cli.Command) error {
			fmt.Printf("%s:\n", t.GetMessage("current_config", 0, nil))
			fmt.Printf("  Language:          %s\n", config.Language)
			fmt.Printf("  Model:             %s\n", config.Model)
			fmt.Printf("  Embedding model:   %s\n", config.EmbeddingModel)
			fmt.Printf("  Semantic ranking:  %t\n", config.UseSemanticRanking)
			fmt.Printf("  Top K:             %d\n", config.TopK)
			fmt.Printf("  Gemini API key:    %s\n", maskSecret(config.GeminiAPIKey))
			fmt.Printf("  GitHub token:      %s\n", maskSecret(config.GitHubToken))
			fmt.Printf("  Config file:       %s\n", config.PathFile)
			return nil
		},
	}
}

func maskSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
